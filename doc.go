// voxtitle renders animated, background-boxed single line titles
// into RGBA tiles, one video frame at a time.
//
// A title is fully described by its [Parameters] and the render time.
// Each frame, the text is shaped and centered on the tile, a padded
// background box is computed around it, and both slide into place
// during the build-in: the box horizontally, the text vertically.
//
// The main entry point is [Render]():
//   params := voxtitle.DefaultParameters()
//   params.Text = "Hello world!"
//   img, err := voxtitle.Render(params, voxtitle.Request{
//       Time: 0.25,
//       Bounds: image.Rect(0, 0, 1920, 1080),
//   })
//   if err != nil { ... }
//
// Parameters can be persisted between edit and render time with
// [Parameters.Encode]() and [DecodeParameters]() or [RenderState]().
// The [Specs] table describes every parameter for hosts that need
// to register them with an editor (see the host subpackage).
package voxtitle
