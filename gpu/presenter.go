// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu owns the presentation boundary of rast: the device, queue,
// and texture handles needed to put a rasterized frame on screen.
//
// The rasterizer itself stays CPU-only; this package consumes its pixel
// buffers. Presenter drives the per-frame loop against a host-provided
// gpucontext.DeviceProvider, and Backend/FrameTexture cover the standalone
// case where the application owns no GPU context of its own.
//
// All GPU handles have a single explicit owner and are passed by reference
// downward for the duration of a call; nothing in this package captures
// ambient global state or extends a borrowed handle's lifetime.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rast"
)

// Presenter errors.
var (
	// ErrPresenterClosed is returned when operations are attempted on a closed presenter.
	ErrPresenterClosed = errors.New("gpu: presenter is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpu: nil DeviceProvider")

	// ErrNilRasterizer is returned when a nil Rasterizer is passed.
	ErrNilRasterizer = errors.New("gpu: nil Rasterizer")
)

// textureDestroyer is the interface for destroying host textures.
type textureDestroyer interface {
	Destroy()
}

// Presenter couples a rast.Rasterizer with a host GPU context and manages
// the CPU-to-GPU frame pipeline: render, quantize, upload, present.
//
// Presenter is NOT safe for concurrent use. Create one per render loop,
// on the goroutine that owns the rasterizer.
type Presenter struct {
	ras         *rast.Rasterizer
	provider    gpucontext.DeviceProvider
	texture     any  // lazily created host texture
	oldTexture  any  // previous texture awaiting deferred destruction
	dirty       bool // frame needs re-render and upload
	sizeChanged bool // resize pending, texture must be recreated
	width       int
	height      int
	closed      bool
}

// NewPresenter creates a presenter for the given rasterizer. The provider
// should come from the host application's GPU context.
func NewPresenter(provider gpucontext.DeviceProvider, ras *rast.Rasterizer) (*Presenter, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if ras == nil {
		return nil, ErrNilRasterizer
	}

	return &Presenter{
		ras:      ras,
		provider: provider,
		width:    ras.Width(),
		height:   ras.Height(),
		dirty:    true, // first Flush renders and creates the texture
	}, nil
}

// Rasterizer returns the wrapped rasterizer.
// Returns nil if the presenter is closed.
func (p *Presenter) Rasterizer() *rast.Rasterizer {
	if p.closed {
		return nil
	}
	return p.ras
}

// Size returns the current frame dimensions.
func (p *Presenter) Size() (width, height int) {
	return p.width, p.height
}

// MarkDirty flags the frame for re-render and upload on the next Flush.
// Call after mutating the rasterizer's triangle.
func (p *Presenter) MarkDirty() {
	p.dirty = true
}

// IsDirty returns true if the frame has pending changes.
func (p *Presenter) IsDirty() bool {
	return p.dirty
}

// Resize changes the frame dimensions, resizing the rasterizer and
// scheduling texture recreation.
func (p *Presenter) Resize(width, height int) error {
	if p.closed {
		return ErrPresenterClosed
	}

	if width == p.width && height == p.height {
		return nil
	}

	if err := p.ras.Resize(width, height); err != nil {
		return fmt.Errorf("gpu: presenter resize: %w", err)
	}

	p.width = width
	p.height = height
	p.sizeChanged = true
	p.dirty = true

	return nil
}

// Flush renders the current frame and uploads it to the host texture if
// dirty. Returns the texture for the host to draw.
//
// The texture is created lazily on first Flush; subsequent calls upload
// only when the dirty flag is set.
func (p *Presenter) Flush() (any, error) {
	if p.closed {
		return nil, ErrPresenterClosed
	}

	// After a resize the old texture may still be referenced by in-flight
	// GPU work. Keep it alive until the next cycle instead of destroying
	// it while the GPU could still be sampling from it.
	if p.sizeChanged {
		if p.texture != nil {
			if p.oldTexture != nil {
				if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			p.oldTexture = p.texture
			p.texture = nil
		}
		p.sizeChanged = false
	}

	if !p.dirty && p.texture != nil {
		return p.texture, nil
	}

	p.ras.Update()
	pm := p.ras.Render()
	data := pm.RGBABytes()

	if p.texture == nil {
		p.texture = &pendingTexture{
			width:  p.width,
			height: p.height,
			data:   data,
		}
		p.dirty = false
		return p.texture, nil
	}

	if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("gpu: texture update failed: %w", err)
		}
	}

	p.dirty = false
	return p.texture, nil
}

// Texture returns the current host texture without flushing.
// Returns nil if no texture has been created yet.
func (p *Presenter) Texture() any {
	return p.texture
}

// Provider returns the DeviceProvider associated with this presenter.
// Returns nil if the presenter is closed.
func (p *Presenter) Provider() gpucontext.DeviceProvider {
	if p.closed {
		return nil
	}
	return p.provider
}

// Close releases all resources associated with the presenter.
// Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	if p.oldTexture != nil {
		if destroyer, ok := p.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.oldTexture = nil
	}
	if p.texture != nil {
		if destroyer, ok := p.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		p.texture = nil
	}

	p.ras = nil
	p.provider = nil
	return nil
}

// pendingTexture is a placeholder created before the host renderer is
// available. It carries the data needed to create the real texture during
// the host's draw pass.
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Width returns the pending texture width in pixels.
func (t *pendingTexture) Width() int { return t.width }

// Height returns the pending texture height in pixels.
func (t *pendingTexture) Height() int { return t.height }

// Data returns the staged RGBA8 bytes.
func (t *pendingTexture) Data() []byte { return t.data }
