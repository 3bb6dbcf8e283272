//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/rast"
)

// Texture-related errors.
var (
	// ErrTextureReleased is returned when operating on a released texture.
	ErrTextureReleased = errors.New("gpu: texture has been released")

	// ErrTextureSizeMismatch is returned when pixmap size doesn't match the texture.
	ErrTextureSizeMismatch = errors.New("gpu: pixmap size does not match texture")

	// ErrNilPixmap is returned when pixmap is nil.
	ErrNilPixmap = errors.New("gpu: pixmap is nil")

	// ErrInvalidDimensions is returned when texture dimensions are invalid.
	ErrInvalidDimensions = errors.New("gpu: invalid texture dimensions")
)

// frameTextureUsage is the usage for presentation textures: written from
// the CPU, sampled by the presentation pipeline.
const frameTextureUsage = gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding

// FrameTexture is the GPU-side destination for rasterized frames. Each
// Upload quantizes the float pixel buffer to RGBA8 staging bytes in the
// layout queue writes expect (tightly packed rows, 4 bytes per pixel).
//
// FrameTexture is safe for concurrent read access. Write operations
// (Upload, Close) should be synchronized externally.
type FrameTexture struct {
	mu sync.RWMutex

	textureID core.TextureID
	viewID    core.TextureViewID

	width  int
	height int

	staged []byte

	released atomic.Bool
	label    string
}

// NewFrameTexture creates a frame texture with the given dimensions.
//
// A nil backend creates a logical texture without GPU resources; staging
// and validation still work, which is what tests and the CPU-only path
// use. With a live backend the texture is bound to its device.
func NewFrameTexture(backend *Backend, width, height int, label string) (*FrameTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	if backend != nil && !backend.IsInitialized() {
		return nil, ErrNotInitialized
	}

	// TODO: create the device texture via core.CreateTexture once the wgpu
	// core API exposes it; until then the texture is tracked logically and
	// staged bytes are the upload payload.
	//
	// desc := &gputypes.TextureDescriptor{
	//     Label: label,
	//     Size: gputypes.Extent3D{
	//         Width:              uint32(width),
	//         Height:             uint32(height),
	//         DepthOrArrayLayers: 1,
	//     },
	//     MipLevelCount: 1,
	//     SampleCount:   1,
	//     Dimension:     gputypes.TextureDimension2D,
	//     Format:        gputypes.TextureFormatRGBA8Unorm,
	//     Usage:         frameTextureUsage,
	// }
	// textureID, err := core.CreateTexture(backend.Device(), desc)

	return &FrameTexture{
		width:  width,
		height: height,
		label:  label,
		// textureID and viewID stay zero until device textures are wired
	}, nil
}

// Width returns the texture width in pixels.
func (t *FrameTexture) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
func (t *FrameTexture) Height() int {
	return t.height
}

// Label returns the debug label.
func (t *FrameTexture) Label() string {
	return t.label
}

// IsReleased returns true if the texture has been released.
func (t *FrameTexture) IsReleased() bool {
	return t.released.Load()
}

// TextureID returns the underlying wgpu texture ID.
// Returns a zero ID for logical textures.
func (t *FrameTexture) TextureID() core.TextureID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.textureID
}

// ViewID returns the texture view ID.
// Returns a zero ID for logical textures.
func (t *FrameTexture) ViewID() core.TextureViewID {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.viewID
}

// Staged returns the most recently uploaded RGBA8 bytes, or nil if
// nothing has been uploaded yet. The slice is owned by the texture.
func (t *FrameTexture) Staged() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.staged
}

// Upload quantizes a rendered pixmap and stages it for the GPU queue.
// The pixmap dimensions must match the texture dimensions.
func (t *FrameTexture) Upload(pm *rast.Pixmap) error {
	if t.released.Load() {
		return ErrTextureReleased
	}

	if pm == nil {
		return ErrNilPixmap
	}

	if pm.Width() != t.width || pm.Height() != t.height {
		return fmt.Errorf("%w: expected %dx%d, got %dx%d",
			ErrTextureSizeMismatch, t.width, t.height, pm.Width(), pm.Height())
	}

	data := pm.RGBABytes()

	t.mu.Lock()
	t.staged = data
	t.mu.Unlock()

	rast.Logger().Debug("gpu: frame staged",
		"label", t.label, "bytes", len(data))

	// TODO: queue the write via core.QueueWriteTexture once available:
	//
	// core.QueueWriteTexture(queue, &gputypes.ImageCopyTexture{
	//     Texture:  uintptr(t.textureID.Raw()),
	//     MipLevel: 0,
	//     Origin:   gputypes.Origin3D{X: 0, Y: 0, Z: 0},
	//     Aspect:   gputypes.TextureAspectAll,
	// }, data, &gputypes.TextureDataLayout{
	//     Offset:       0,
	//     BytesPerRow:  uint32(t.width * 4),
	//     RowsPerImage: uint32(t.height),
	// }, &gputypes.Extent3D{
	//     Width:              uint32(t.width),
	//     Height:             uint32(t.height),
	//     DepthOrArrayLayers: 1,
	// })

	return nil
}

// Close releases the texture. Close is idempotent.
func (t *FrameTexture) Close() {
	if t.released.Swap(true) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.staged = nil
	t.textureID = core.TextureID{}
	t.viewID = core.TextureViewID{}
}
