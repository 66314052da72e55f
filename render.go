package voxtitle

import "image"
import "image/draw"
import "errors"

import "github.com/tinne26/voxtitle/anim"
import "github.com/tinne26/voxtitle/canvas"

// Returned (wrapped in a [RenderError]) when the requested tile
// can't be allocated.
var ErrInvalidCanvas = canvas.ErrInvalidSize

// Returned (wrapped in a [RenderError]) when the finished tile
// can't be transferred to the target.
var ErrTransfer = canvas.ErrTransfer

// A frame that couldn't be rendered. Op is one of "allocate",
// "shape", "draw" or "transfer".
type RenderError struct {
	Op  string
	Err error
}

func (self *RenderError) Error() string {
	return "voxtitle: " + self.Op + ": " + self.Err.Error()
}

func (self *RenderError) Unwrap() error { return self.Err }

// The per frame inputs of [Render]().
type Request struct {
	// Render time in seconds, relative to the start of the title.
	Time float64

	// Tile geometry. The canvas has the size of the bounds.
	Bounds image.Rectangle

	// Optional destination. When set, the whole target is
	// overwritten with the rendered tile.
	Target draw.Image

	// Optional shaper. Defaults to [StdShaper]().
	Shaper TextShaper
}

// Renders one frame of the title. The result only depends on the
// parameters, the render time and the tile size, so concurrent calls
// are safe and repeated calls produce identical pixels.
//
// On failure, a *[RenderError] is returned and no image.
func Render(params Parameters, req Request) (*image.RGBA, error) {
	params = params.Sanitized()
	cnv, err := canvas.New(req.Bounds.Dx(), req.Bounds.Dy())
	if err != nil { return nil, &RenderError{ Op: "allocate", Err: err } }

	textShaper := req.Shaper
	if textShaper == nil { textShaper = StdShaper() }
	line, err := textShaper.Shape(params.Text, params.Font, params.Size)
	if err != nil { return nil, &RenderError{ Op: "shape", Err: err } }

	width, height := float64(cnv.Width()), float64(cnv.Height())
	layout := LayoutFor(params, line, width, height)
	offset := anim.Offset(req.Time, params.BuildInDuration, params.BuildInCurvature)
	err = Compose(cnv, params, line, layout, offset)
	if err != nil { return nil, &RenderError{ Op: "draw", Err: err } }

	if req.Target != nil {
		err = cnv.TransferTo(req.Target)
		if err != nil { return nil, &RenderError{ Op: "transfer", Err: err } }
	}
	return cnv.Image(), nil
}

// Like [Render](), but decoding the parameters from a persisted
// record first. Malformed records render with the default parameters.
func RenderState(state []byte, req Request) (*image.RGBA, error) {
	params, err := DecodeParameters(state)
	var decodeErr *DecodeError
	if err != nil && !errors.As(err, &decodeErr) { return nil, err }
	return Render(params, req)
}

// Paints the title on the canvas for the given build-in offset
// (1 hidden, 0 at rest):
//  - Everything is clipped to the background rect.
//  - The background slides by −offset × its width along X.
//  - The text slides by −offset × the background height along Y.
// The canvas clip is reset afterwards.
func Compose(target *canvas.Canvas, params Parameters, line ShapedLine, layout Layout, offset float64) error {
	target.SetClip(layout.Background)
	defer target.ResetClip()

	background := layout.Background.Offset(-offset*layout.Background.Width, 0)
	if params.BackgroundEnabled {
		target.FillRect(background, params.BackgroundColor)
	}

	textY := layout.Line.Y - offset*layout.Background.Height
	return line.Draw(target, layout.Line.X, textY, params.TextColor)
}
