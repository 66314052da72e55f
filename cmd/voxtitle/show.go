package main

import "errors"
import "flag"
import "os"

import "github.com/tinne26/voxtitle"
import "github.com/tinne26/voxtitle/internal/iterm2"

func runShow(env *environment, args []string) error {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	var source paramSource
	var frame frameFlags
	source.register(flags)
	frame.register(flags, env)
	force := flags.Bool("force", false, "write the image even if the terminal is not iTerm2")
	err := flags.Parse(args)
	if err != nil { return err }

	if !*force && !iterm2.IsCompatible() {
		return errors.New("terminal does not support inline images (use -force to write anyway)")
	}

	params, err := source.load(env)
	if err != nil { return err }
	textShaper, err := env.textShaper()
	if err != nil { return err }
	img, err := voxtitle.Render(params, voxtitle.Request{
		Time: frame.time,
		Bounds: frame.bounds(),
		Shaper: textShaper,
	})
	if err != nil { return err }

	widthCells := 0
	if iterm2.IsTerminal(os.Stdout) {
		columns, _, err := iterm2.CellSize(os.Stdout)
		if err == nil { widthCells = columns }
	}
	return iterm2.Image(os.Stdout, img, widthCells)
}
