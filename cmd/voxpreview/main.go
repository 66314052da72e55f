// Command voxpreview plays a title in a window, looping the build-in.
//
// Usage:
//   voxpreview [-config voxtitle.yaml] [-state file | -project name]
//
// Press R or Space to restart the build-in and Esc to quit. A state
// file is reloaded when it changes on disk.
package main

import "errors"
import "flag"
import "image"
import "log"
import "math"
import "os"
import "time"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/inpututil"

import "github.com/tinne26/voxtitle"
import "github.com/tinne26/voxtitle/cache"
import "github.com/tinne26/voxtitle/config"
import "github.com/tinne26/voxtitle/shaper"
import "github.com/tinne26/voxtitle/store"

// Window color around and behind the title tile.
var backdrop = voxtitle.Color{ R: 0.094, G: 0.094, B: 0.11 }.ToRGBA8()

type Game struct {
	params    voxtitle.Parameters
	shaper    voxtitle.TextShaper
	statePath string
	stateMod  time.Time
	lastCheck time.Time
	hold      float64
	start     time.Time
	frame     *image.RGBA
	tile      *ebiten.Image
}

func (self *Game) Layout(w int, h int) (int, int) {
	scale := ebiten.DeviceScaleFactor()
	return int(math.Ceil(float64(w)*scale)), int(math.Ceil(float64(h)*scale))
}

func (self *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) { return ebiten.Termination }
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		self.start = time.Now()
	}
	if self.statePath != "" && time.Since(self.lastCheck) > time.Second {
		self.lastCheck = time.Now()
		self.reloadState()
	}
	return nil
}

func (self *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)

	bounds := screen.Bounds()
	if self.tile == nil || self.tile.Bounds() != bounds {
		if self.tile != nil { self.tile.Deallocate() }
		self.tile = ebiten.NewImage(bounds.Dx(), bounds.Dy())
		self.frame = image.NewRGBA(bounds)
	}

	_, err := voxtitle.Render(self.params, voxtitle.Request{
		Time: self.renderTime(),
		Bounds: bounds,
		Target: self.frame,
		Shaper: self.shaper,
	})
	if err != nil {
		log.Printf("[voxpreview] %v", err)
		return
	}
	self.tile.WritePixels(self.frame.Pix)
	screen.DrawImage(self.tile, nil)
}

func (self *Game) renderTime() float64 {
	elapsed := time.Since(self.start).Seconds()
	period := self.params.Sanitized().BuildInDuration + self.hold
	if period <= 0 { return elapsed }
	return math.Mod(elapsed, period)
}

func (self *Game) reloadState() {
	info, err := os.Stat(self.statePath)
	if err != nil || !info.ModTime().After(self.stateMod) { return }
	self.stateMod = info.ModTime()
	data, err := os.ReadFile(self.statePath)
	if err != nil {
		log.Printf("[voxpreview] %v", err)
		return
	}
	params, err := voxtitle.DecodeParameters(data)
	if err != nil { log.Printf("[voxpreview] %s: %v (using defaults)", self.statePath, err) }
	self.params = params
	self.start = time.Now()
}

func main() {
	log.SetFlags(0)
	configPath := flag.String("config", config.DefaultFileName, "configuration `file`")
	statePath := flag.String("state", "", "parameter record `file`, reloaded on changes")
	project := flag.String("project", "", "stored project `name`")
	hold := flag.Float64("hold", 2, "`seconds` the title stays at rest before looping")
	flag.Parse()
	if *statePath != "" && *project != "" {
		log.Fatal(errors.New("[voxpreview] -state and -project are mutually exclusive"))
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil { log.Fatalf("[voxpreview] %v", err) }

	game := &Game{
		params: voxtitle.DefaultParameters(),
		statePath: *statePath,
		hold: math.Max(*hold, 0),
		start: time.Now(),
	}
	// frames share one mask cache
	lib := shaper.Default().Library()
	if len(cfg.FontDirs) > 0 {
		lib, err = cfg.FontLibrary()
		if err != nil { log.Fatalf("[voxpreview] %v", err) }
	}
	masks := cache.NewMaskCache(cache.DefaultByteSize)
	game.shaper = voxtitle.NewStdShaper(shaper.NewCached(lib, masks))
	switch {
	case *statePath != "":
		game.reloadState()
	case *project != "":
		st, err := store.Open(cfg.AppName)
		if err != nil { log.Fatalf("[voxpreview] %v", err) }
		game.params, err = st.LoadParameters(*project)
		if err != nil { log.Fatalf("[voxpreview] %v", err) }
	}

	// the window opens at half the configured tile size
	ebiten.SetWindowTitle("voxpreview")
	ebiten.SetWindowSize(max(cfg.Width/2, 160), max(cfg.Height/2, 90))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err = ebiten.RunGame(game)
	if err != nil { log.Fatal(err) }
}
