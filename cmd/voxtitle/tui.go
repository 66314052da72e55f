package main

import "flag"
import "image"
import "image/color"
import "math"
import "time"

import "github.com/gdamore/tcell/v2"
import "github.com/tinne26/voxtitle"

// Backdrop for transparent title pixels.
var backdrop = voxtitle.Color{ R: 0.094, G: 0.094, B: 0.11 }.ToRGBA8()

type player struct {
	screen   tcell.Screen
	params   voxtitle.Parameters
	shaper   voxtitle.TextShaper
	hold     float64
	start    time.Time
	paused   bool
	pausedAt float64
}

func runTUI(env *environment, args []string) error {
	flags := flag.NewFlagSet("tui", flag.ContinueOnError)
	var source paramSource
	source.register(flags)
	hold := flags.Float64("hold", 2, "`seconds` the title stays at rest before looping")
	fps := flags.Float64("fps", env.config.FPS, "refresh rate")
	err := flags.Parse(args)
	if err != nil { return err }

	params, err := source.load(env)
	if err != nil { return err }
	textShaper, err := env.framesShaper()
	if err != nil { return err }

	screen, err := tcell.NewScreen()
	if err != nil { return err }
	err = screen.Init()
	if err != nil { return err }
	defer screen.Fini()

	game := &player{
		screen: screen,
		params: params.Sanitized(),
		shaper: textShaper,
		hold: math.Max(*hold, 0),
		start: time.Now(),
	}
	return game.run(*fps)
}

func (self *player) run(fps float64) error {
	if !(fps > 0) { fps = 30 }
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go self.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Duration(float64(time.Second)/fps))
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-events:
			if !ok { return nil }
			if !self.handleInput(ev) { return nil }
		case <-ticker.C:
			err := self.draw()
			if err != nil { return err }
		}
	}
}

func (self *player) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC { return false }
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q': return false
			case 'r':
				self.start = time.Now()
				self.paused = false
			case ' ':
				if self.paused {
					self.start = time.Now().Add(-time.Duration(self.pausedAt*float64(time.Second)))
				} else {
					self.pausedAt = self.loopTime()
				}
				self.paused = !self.paused
			}
		}
	case *tcell.EventResize:
		self.screen.Sync()
	}
	return true
}

// Returns the render time, looping over the build-in plus the hold.
func (self *player) loopTime() float64 {
	if self.paused { return self.pausedAt }
	elapsed := time.Since(self.start).Seconds()
	period := self.params.BuildInDuration + self.hold
	if period <= 0 { return elapsed }
	return math.Mod(elapsed, period)
}

// Each cell shows two vertically stacked pixels with a half block,
// using the foreground for the top one and the background for the
// bottom one.
func (self *player) draw() error {
	columns, rows := self.screen.Size()
	if columns <= 0 || rows <= 0 { return nil }

	// sizes are authored for 1080 lines, scale them to the grid
	params := self.params
	params.Size = params.Size*float64(rows*2)/1080
	params.BackgroundMargin = params.BackgroundMargin*float64(rows*2)/1080
	img, err := voxtitle.Render(params, voxtitle.Request{
		Time: self.loopTime(),
		Bounds: image.Rect(0, 0, columns, rows*2),
		Shaper: self.shaper,
	})
	if err != nil { return err }

	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			top := overBackdrop(img.RGBAAt(x, y*2))
			bottom := overBackdrop(img.RGBAAt(x, y*2 + 1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			self.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	self.screen.Show()
	return nil
}

// ---- helpers ----

func overBackdrop(clr color.RGBA) tcell.Color {
	inv := 255 - int32(clr.A)
	r := int32(clr.R) + (int32(backdrop.R)*inv)/255
	g := int32(clr.G) + (int32(backdrop.G)*inv)/255
	b := int32(clr.B) + (int32(backdrop.B)*inv)/255
	return tcell.NewRGBColor(r, g, b)
}
