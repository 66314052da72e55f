package voxtitle

import "bytes"
import "image"
import "image/color"
import "errors"
import "sync"
import "testing"

import "github.com/fortytw2/leaktest"
import "github.com/tinne26/voxtitle/canvas"
import "github.com/tinne26/voxtitle/font"
import "github.com/tinne26/voxtitle/shaper"

// A line that paints its whole bounding box, which keeps pixel
// expectations exact.
type rectLine struct{ width, height float64 }

func (self rectLine) Size() (float64, float64) { return self.width, self.height }

func (self rectLine) Draw(target *canvas.Canvas, x, y float64, clr color.Color) error {
	target.FillRect(canvas.Rect{ X: x, Y: y, Width: self.width, Height: self.height }, clr)
	return nil
}

type rectShaper struct{ width, height float64 }

func (self rectShaper) Shape(string, string, float64) (ShapedLine, error) {
	return rectLine{ width: self.width, height: self.height }, nil
}

type failingShaper struct{}

func (failingShaper) Shape(string, string, float64) (ShapedLine, error) {
	return nil, errors.New("no glyphs today")
}

var (
	black       = color.RGBA{ 0, 0, 0, 255 }
	yellow      = color.RGBA{ 255, 255, 0, 255 }
	transparent = color.RGBA{}
)

// 200x100 tile with a 40x20 line and a 10px margin: the line rests at
// (80, 40) and the background at (70, 30) with size 60x40.
func rectRequest(time float64) Request {
	return Request{
		Time: time,
		Bounds: image.Rect(0, 0, 200, 100),
		Shaper: rectShaper{ width: 40, height: 20 },
	}
}

func rectParams() Parameters {
	params := DefaultParameters()
	params.BackgroundMargin = 10
	return params
}

func expectPixels(t *testing.T, img *image.RGBA, expectations map[image.Point]color.RGBA) {
	t.Helper()
	for pt, expected := range expectations {
		got := img.RGBAAt(pt.X, pt.Y)
		if got != expected { t.Fatalf("pixel %v: expected %v, got %v", pt, expected, got) }
	}
}

func TestRenderNoAnimation(t *testing.T) {
	params := rectParams()
	params.Text = "Hi"
	params.BuildInDuration = 0
	var reference *image.RGBA
	for _, curvature := range []float64{ 0, 0.5, 0.99 } {
		params.BuildInCurvature = curvature
		for _, time := range []float64{ 0, 0.3, 5 } {
			img, err := Render(params, rectRequest(time))
			if err != nil { t.Fatal(err) }
			expectPixels(t, img, map[image.Point]color.RGBA{
				{71, 31}: yellow, {129, 69}: yellow, {100, 50}: black,
				{80, 40}: black, {119, 59}: black, {69, 50}: transparent,
				{100, 29}: transparent, {130, 50}: transparent,
			})
			if reference == nil { reference = img }
			if !bytes.Equal(reference.Pix, img.Pix) {
				t.Fatalf("time %v, curvature %v: output differs from rest frame", time, curvature)
			}
		}
	}
}

func TestRenderHalfwayLinear(t *testing.T) {
	params := rectParams()
	params.BuildInDuration = 1
	params.BuildInCurvature = 0
	img, err := Render(params, rectRequest(0.5))
	if err != nil { t.Fatal(err) }
	// offset 0.5: background slides 30px left, text slides 20px down
	expectPixels(t, img, map[image.Point]color.RGBA{
		{90, 65}: black, {110, 65}: black,
		{75, 40}: yellow, {99, 31}: yellow,
		{115, 40}: transparent, {100, 50}: transparent,
		{90, 75}: transparent, {110, 59}: transparent,
		{60, 50}: transparent,
	})
}

func TestRenderHiddenAtStart(t *testing.T) {
	params := rectParams()
	for _, curvature := range []float64{ 0, 0.5 } {
		params.BuildInCurvature = curvature
		img, err := Render(params, rectRequest(0))
		if err != nil { t.Fatal(err) }
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 { t.Fatalf("curvature %v: expected empty frame at time 0", curvature) }
		}
		negative, err := Render(params, rectRequest(-3))
		if err != nil { t.Fatal(err) }
		if !bytes.Equal(negative.Pix, img.Pix) { t.Fatal("negative times must behave like time 0") }
	}
}

func TestRenderPastDuration(t *testing.T) {
	params := rectParams()
	params.BuildInDuration = 0
	rest, err := Render(params, rectRequest(0))
	if err != nil { t.Fatal(err) }

	params.BuildInDuration = 1
	for _, curvature := range []float64{ 0, 0.2, 0.99 } {
		params.BuildInCurvature = curvature
		img, err := Render(params, rectRequest(1.5))
		if err != nil { t.Fatal(err) }
		if !bytes.Equal(rest.Pix, img.Pix) {
			t.Fatalf("curvature %v: frame past the duration differs from rest", curvature)
		}
	}
}

func TestRenderBackgroundDisabled(t *testing.T) {
	params := DefaultParameters()
	params.Text = "Hi"
	params.BackgroundEnabled = false
	params.BuildInDuration = 0
	img, err := Render(params, Request{ Bounds: image.Rect(0, 0, 320, 180) })
	if err != nil { t.Fatal(err) }

	inked := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i + 3] == 0 { continue }
		inked += 1
		if img.Pix[i] != 0 || img.Pix[i + 1] != 0 || img.Pix[i + 2] != 0 {
			t.Fatalf("found non text color pixel %v", img.Pix[i : i + 4])
		}
	}
	if inked == 0 { t.Fatal("expected text pixels") }

	// clip still applies: the text can't leave the background rect
	params.BuildInDuration = 1
	params.BuildInCurvature = 0
	req := rectRequest(0.5)
	params.BackgroundMargin = 10
	img, err = Render(params, req)
	if err != nil { t.Fatal(err) }
	expectPixels(t, img, map[image.Point]color.RGBA{
		{90, 65}: black, {75, 40}: transparent, {90, 75}: transparent,
	})
}

func TestRenderFontFallback(t *testing.T) {
	_, fallbackName := font.Fallback()
	params := DefaultParameters()
	params.BuildInDuration = 0
	req := Request{ Bounds: image.Rect(0, 0, 640, 160) }

	params.Font = "Surely Missing Font"
	missing, err := Render(params, req)
	if err != nil { t.Fatal(err) }
	params.Font = fallbackName
	direct, err := Render(params, req)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(missing.Pix, direct.Pix) { t.Fatal("fallback font must render like the fallback face") }
}

func TestRenderDeterministicConcurrent(t *testing.T) {
	defer leaktest.Check(t)()

	params := DefaultParameters()
	params.Text = "Vox Title 123"
	req := Request{ Time: 0.4, Bounds: image.Rect(0, 0, 480, 160) }
	reference, err := Render(params, req)
	if err != nil { t.Fatal(err) }

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			img, err := Render(params, req)
			if err != nil { errs <- err; return }
			if !bytes.Equal(img.Pix, reference.Pix) { errs <- errors.New("pixel mismatch") }
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs { t.Fatal(err) }
}

func TestRenderTarget(t *testing.T) {
	params := rectParams()
	params.BuildInDuration = 0
	req := rectRequest(0)
	req.Target = image.NewNRGBA(image.Rect(10, 10, 210, 110))
	img, err := Render(params, req)
	if err != nil { t.Fatal(err) }
	target := req.Target.(*image.NRGBA)
	if target.NRGBAAt(110, 60) != (color.NRGBA{ 0, 0, 0, 255 }) {
		t.Fatalf("expected text at target center, got %v", target.NRGBAAt(110, 60))
	}
	if target.NRGBAAt(81, 41) != (color.NRGBA{ 255, 255, 0, 255 }) {
		t.Fatalf("expected background in target, got %v", target.NRGBAAt(81, 41))
	}
	if img.RGBAAt(100, 50) != black { t.Fatal("the canvas image must be returned too") }
}

func TestRenderErrors(t *testing.T) {
	params := DefaultParameters()
	var renderErr *RenderError

	for _, bounds := range []image.Rectangle{ {}, image.Rect(0, 0, 0, 10), image.Rect(0, 0, 1 << 20, 1 << 20) } {
		img, err := Render(params, Request{ Bounds: bounds })
		if img != nil || !errors.As(err, &renderErr) || renderErr.Op != "allocate" {
			t.Fatalf("bounds %v: expected allocate error, got %v", bounds, err)
		}
		if !errors.Is(err, ErrInvalidCanvas) { t.Fatalf("expected ErrInvalidCanvas in %v", err) }
	}

	req := rectRequest(1)
	req.Target = image.NewRGBA(image.Rectangle{})
	img, err := Render(params, req)
	if img != nil || !errors.Is(err, ErrTransfer) || !errors.As(err, &renderErr) || renderErr.Op != "transfer" {
		t.Fatalf("expected transfer error, got %v", err)
	}

	req = rectRequest(1)
	req.Shaper = failingShaper{}
	_, err = Render(params, req)
	if !errors.As(err, &renderErr) || renderErr.Op != "shape" { t.Fatalf("expected shape error, got %v", err) }
}

func TestRenderState(t *testing.T) {
	params := rectParams()
	params.BackgroundColor = Color{ R: 0, G: 0, B: 1 }
	params.BuildInDuration = 0
	state, err := params.Encode()
	if err != nil { t.Fatal(err) }

	fromState, err := RenderState(state, rectRequest(0))
	if err != nil { t.Fatal(err) }
	direct, err := Render(params, rectRequest(0))
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(fromState.Pix, direct.Pix) { t.Fatal("state render differs") }

	broken, err := RenderState([]byte("- not\n- parameters"), rectRequest(3))
	if err != nil { t.Fatalf("malformed state must not fail the render: %v", err) }
	defaults, err := Render(DefaultParameters(), rectRequest(3))
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(broken.Pix, defaults.Pix) { t.Fatal("malformed state must render defaults") }
}

func TestRenderLeavesNoSharedState(t *testing.T) {
	params := DefaultParameters()
	params.Text = "Shared state"
	req := Request{ Time: 0.37, Bounds: image.Rect(0, 0, 480, 160) }

	first, err := Render(params, req)
	if err != nil { t.Fatal(err) }
	if shaper.Default().Cache() != nil {
		t.Fatal("the default shaper must not keep glyph masks between calls")
	}
	second, err := Render(params, req)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(first.Pix, second.Pix) { t.Fatal("repeated renders differ") }
	if shaper.Default().Cache() != nil {
		t.Fatal("the default shaper must not keep glyph masks between calls")
	}
}
