package rast

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(3, 2)
	if pm.Width() != 3 || pm.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 3x2", pm.Width(), pm.Height())
	}
	if got := len(pm.Data()); got != 3*2*4 {
		t.Errorf("len(Data()) = %d, want %d", got, 3*2*4)
	}
	for j := 0; j < 2; j++ {
		for i := 0; i < 3; i++ {
			if c := pm.GetPixel(i, j); c != Transparent {
				t.Errorf("pixel (%d,%d) = %v, want transparent", i, j, c)
			}
		}
	}
}

func TestPixmap_SetGetPixel(t *testing.T) {
	pm := NewPixmap(4, 4)
	c := RGB(0.1, 0.2, 0.3)
	pm.SetPixel(2, 3, c)

	if got := pm.GetPixel(2, 3); got != c {
		t.Errorf("GetPixel(2,3) = %v, want %v", got, c)
	}
	if got := pm.GetPixel(3, 2); got != Transparent {
		t.Errorf("GetPixel(3,2) = %v, want transparent", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	before := make([]float32, len(pm.Data()))
	copy(before, pm.Data())

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		pm.SetPixel(pt[0], pt[1], White)
		if got := pm.GetPixel(pt[0], pt[1]); got != Transparent {
			t.Errorf("GetPixel%v = %v, want transparent", pt, got)
		}
	}

	after := pm.Data()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("out-of-bounds SetPixel modified data at %d", i)
		}
	}
}

func TestPixmap_Clear(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Clear(Blue)

	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			if c := pm.GetPixel(i, j); c != Blue {
				t.Errorf("pixel (%d,%d) = %v, want blue", i, j, c)
			}
		}
	}
}

func TestPixmap_RGBABytes(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, White)
	pm.SetPixel(1, 0, RGBA{R: 0.5, A: 1})

	got := pm.RGBABytes()
	want := []byte{255, 255, 255, 255, 128, 0, 0, 255}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestPixmap_ToImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(1, 0, Red)

	img := pm.ToImage()
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(2,2)", img.Bounds())
	}
	r, g, b, a := img.NRGBAAt(1, 0).R, img.NRGBAAt(1, 0).G, img.NRGBAAt(1, 0).B, img.NRGBAAt(1, 0).A
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("pixel (1,0) = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestPixmap_ImageInterface(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.SetPixel(0, 1, Green)

	var img image.Image = pm
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", img.Bounds())
	}
	r, g, b, a := img.At(0, 1).RGBA()
	if r != 0 || g != 0xffff || b != 0 || a != 0xffff {
		t.Errorf("At(0,1).RGBA() = (%d,%d,%d,%d), want (0,65535,0,65535)", r, g, b, a)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(White)
	pm.SetPixel(1, 2, Blue)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("decoded bounds = %v, want 4x4", img.Bounds())
	}
	r, g, b, _ := img.At(1, 2).RGBA()
	if r != 0 || g != 0 || b != 0xffff {
		t.Errorf("decoded pixel (1,2) = (%d,%d,%d), want blue", r, g, b)
	}
}
