package canvas

import "image"
import "image/color"
import "errors"
import "testing"

var red = color.RGBA{255, 0, 0, 255}

func TestNewInvalid(t *testing.T) {
	sizes := [][2]int{ {0, 10}, {10, 0}, {-1, 5}, {MaxPixels, 2} }
	for _, size := range sizes {
		_, err := New(size[0], size[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("size %v: expected ErrInvalidSize, got %v", size, err)
		}
	}
	cnv, err := New(3, 2)
	if err != nil { t.Fatal(err) }
	if cnv.Width() != 3 || cnv.Height() != 2 {
		t.Fatalf("unexpected size %dx%d", cnv.Width(), cnv.Height())
	}
	if cnv.Image().RGBAAt(0, 0) != (color.RGBA{}) {
		t.Fatalf("new canvas must be transparent")
	}
}

func TestFillRectYUp(t *testing.T) {
	cnv, err := New(10, 10)
	if err != nil { t.Fatal(err) }
	// bottom-left 2x3 block in canvas space
	cnv.FillRect(Rect{ X: 0, Y: 0, Width: 2, Height: 3 }, red)
	img := cnv.Image()
	if img.RGBAAt(0, 9) != red || img.RGBAAt(1, 7) != red {
		t.Fatalf("expected paint at the bottom of the image")
	}
	if img.RGBAAt(0, 6) != (color.RGBA{}) || img.RGBAAt(2, 9) != (color.RGBA{}) {
		t.Fatalf("paint leaked outside the rect")
	}
}

func TestFillRectAntialiased(t *testing.T) {
	cnv, err := New(4, 1)
	if err != nil { t.Fatal(err) }
	cnv.FillRect(Rect{ X: 0.5, Y: 0, Width: 1, Height: 1 }, red)
	img := cnv.Image()
	for x := 0; x < 2; x++ {
		got := img.RGBAAt(x, 0)
		if got.A != 128 || got.R != 128 {
			t.Fatalf("expected half coverage at x = %d, got %v", x, got)
		}
	}
}

func TestClip(t *testing.T) {
	cnv, err := New(10, 10)
	if err != nil { t.Fatal(err) }
	cnv.SetClip(Rect{ X: 2, Y: 2, Width: 4, Height: 4 })
	cnv.FillRect(cnv.Bounds(), red)
	img := cnv.Image()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 6 && y >= 4 && y < 8
			painted := img.RGBAAt(x, y).A != 0
			if inside != painted {
				t.Fatalf("pixel (%d, %d): inside = %t, painted = %t", x, y, inside, painted)
			}
		}
	}

	// masks are clipped too
	alpha := image.NewAlpha(image.Rect(0, 0, 10, 10))
	for i := range alpha.Pix { alpha.Pix[i] = 255 }
	blue := color.RGBA{0, 0, 255, 255}
	cnv.SetClip(Rect{ X: 0, Y: 0, Width: 1, Height: 1 })
	cnv.DrawMask(alpha, blue)
	if img.RGBAAt(0, 9) != blue { t.Fatalf("expected masked paint inside the clip") }
	if img.RGBAAt(1, 9).B != 0 { t.Fatalf("masked paint leaked outside the clip") }

	cnv.SetClip(Rect{ X: 50, Y: 50, Width: 1, Height: 1 })
	cnv.DrawMask(alpha, blue)
	cnv.ResetClip()
	cnv.DrawMask(nil, blue)
	if img.RGBAAt(3, 5) != red { t.Fatalf("out of canvas clip must prevent drawing") }
}

func TestTransfer(t *testing.T) {
	cnv, err := New(2, 2)
	if err != nil { t.Fatal(err) }
	cnv.FillRect(cnv.Bounds(), red)

	err = cnv.TransferTo(nil)
	if !errors.Is(err, ErrTransfer) { t.Fatalf("expected ErrTransfer, got %v", err) }
	err = cnv.TransferTo(image.NewRGBA(image.Rectangle{}))
	if !errors.Is(err, ErrTransfer) { t.Fatalf("expected ErrTransfer, got %v", err) }

	// larger, offset, non-premultiplied destination with stale contents
	dst := image.NewNRGBA(image.Rect(5, 5, 8, 8))
	for i := range dst.Pix { dst.Pix[i] = 77 }
	err = cnv.TransferTo(dst)
	if err != nil { t.Fatal(err) }
	if dst.NRGBAAt(5, 5) != (color.NRGBA{255, 0, 0, 255}) || dst.NRGBAAt(6, 6).R != 255 {
		t.Fatalf("canvas not copied at destination origin")
	}
	if dst.NRGBAAt(7, 7) != (color.NRGBA{}) || dst.NRGBAAt(7, 5) != (color.NRGBA{}) {
		t.Fatalf("uncovered destination area must be cleared")
	}
}
