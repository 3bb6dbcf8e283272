//go:build !nogpu

package gpu

import (
	"errors"
	"testing"

	"github.com/gogpu/rast"
)

func TestNewFrameTexture_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative", -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrameTexture(nil, tt.width, tt.height, "test")
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestNewFrameTexture_Logical(t *testing.T) {
	tex, err := NewFrameTexture(nil, 8, 6, "frame")
	if err != nil {
		t.Fatalf("NewFrameTexture: %v", err)
	}
	if tex.Width() != 8 || tex.Height() != 6 {
		t.Errorf("dimensions = %dx%d, want 8x6", tex.Width(), tex.Height())
	}
	if tex.Label() != "frame" {
		t.Errorf("label = %q, want %q", tex.Label(), "frame")
	}
	if tex.IsReleased() {
		t.Error("new texture reports released")
	}
	if !tex.TextureID().IsZero() {
		t.Error("logical texture has a non-zero texture ID")
	}
	if tex.Staged() != nil {
		t.Error("new texture has staged data")
	}
}

func TestNewFrameTexture_UninitializedBackend(t *testing.T) {
	_, err := NewFrameTexture(&Backend{}, 4, 4, "test")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("error = %v, want ErrNotInitialized", err)
	}
}

func TestFrameTexture_Upload(t *testing.T) {
	tex, err := NewFrameTexture(nil, 1, 1, "test")
	if err != nil {
		t.Fatalf("NewFrameTexture: %v", err)
	}

	pm := rast.NewPixmap(1, 1)
	pm.SetPixel(0, 0, rast.White)

	if err := tex.Upload(pm); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	got := tex.Staged()
	want := []byte{255, 255, 255, 255}
	if len(got) != len(want) {
		t.Fatalf("staged %d bytes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("staged[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFrameTexture_UploadErrors(t *testing.T) {
	tex, err := NewFrameTexture(nil, 4, 4, "test")
	if err != nil {
		t.Fatalf("NewFrameTexture: %v", err)
	}

	if err := tex.Upload(nil); !errors.Is(err, ErrNilPixmap) {
		t.Errorf("nil pixmap error = %v, want ErrNilPixmap", err)
	}
	if err := tex.Upload(rast.NewPixmap(2, 4)); !errors.Is(err, ErrTextureSizeMismatch) {
		t.Errorf("size mismatch error = %v, want ErrTextureSizeMismatch", err)
	}
}

func TestFrameTexture_Close(t *testing.T) {
	tex, err := NewFrameTexture(nil, 4, 4, "test")
	if err != nil {
		t.Fatalf("NewFrameTexture: %v", err)
	}
	if err := tex.Upload(rast.NewPixmap(4, 4)); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	tex.Close()
	if !tex.IsReleased() {
		t.Error("texture not released after Close")
	}
	if tex.Staged() != nil {
		t.Error("staged data survives Close")
	}
	if err := tex.Upload(rast.NewPixmap(4, 4)); !errors.Is(err, ErrTextureReleased) {
		t.Errorf("Upload after Close error = %v, want ErrTextureReleased", err)
	}

	// Idempotent.
	tex.Close()
}
