package main

import "errors"
import "flag"
import "fmt"
import "image"
import "image/png"
import "log"
import "os"
import "path/filepath"
import "runtime"

import "golang.org/x/sync/errgroup"
import "github.com/tinne26/voxtitle"

type frameFlags struct {
	time   float64
	width  int
	height int
}

func (self *frameFlags) register(flags *flag.FlagSet, env *environment) {
	flags.Float64Var(&self.time, "t", 0, "render time in `seconds`")
	flags.IntVar(&self.width, "w", env.config.Width, "tile `width` in pixels")
	flags.IntVar(&self.height, "h", env.config.Height, "tile `height` in pixels")
}

func (self *frameFlags) bounds() image.Rectangle {
	return image.Rect(0, 0, self.width, self.height)
}

func runRender(env *environment, args []string) error {
	flags := flag.NewFlagSet("render", flag.ContinueOnError)
	var source paramSource
	var frame frameFlags
	source.register(flags)
	frame.register(flags, env)
	output := flags.String("o", "title.png", "output `path` (a directory for sequences)")
	frames := flags.Int("frames", 0, "render a sequence of `n` frames instead of a single one")
	fps := flags.Float64("fps", env.config.FPS, "sequence frame rate")
	err := flags.Parse(args)
	if err != nil { return err }

	params, err := source.load(env)
	if err != nil { return err }

	if *frames <= 0 {
		textShaper, err := env.textShaper()
		if err != nil { return err }
		req := voxtitle.Request{ Time: frame.time, Bounds: frame.bounds(), Shaper: textShaper }
		img, err := voxtitle.Render(params, req)
		if err != nil { return err }
		err = writePNG(*output, img)
		if err != nil { return err }
		log.Printf("[voxtitle] frame at %.3fs written to %s", frame.time, *output)
		return nil
	}

	if !(*fps > 0) { return errors.New("fps must be positive") }
	textShaper, err := env.framesShaper()
	if err != nil { return err }
	err = os.MkdirAll(*output, 0o755)
	if err != nil { return err }
	err = renderSequence(params, textShaper, frame, *frames, *fps, *output)
	if err != nil { return err }
	log.Printf("[voxtitle] %d frames written to %s", *frames, *output)
	return nil
}

// Frames are independent, so they are rendered in parallel.
func renderSequence(params voxtitle.Parameters, textShaper voxtitle.TextShaper, frame frameFlags, count int, fps float64, dir string) error {
	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())
	for i := 0; i < count; i++ {
		i := i
		group.Go(func() error {
			req := voxtitle.Request{
				Time: sequenceTime(frame.time, i, fps),
				Bounds: frame.bounds(),
				Shaper: textShaper,
			}
			img, err := voxtitle.Render(params, req)
			if err != nil { return fmt.Errorf("frame %d: %w", i, err) }
			return writePNG(filepath.Join(dir, fmt.Sprintf("frame_%05d.png", i)), img)
		})
	}
	return group.Wait()
}

// Render time of the given frame of a sequence starting at start.
func sequenceTime(start float64, index int, fps float64) float64 {
	return start + float64(index)/fps
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil { return err }
	err = png.Encode(file, img)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
