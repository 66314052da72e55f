package main

import "errors"
import "flag"
import "fmt"
import "log"
import "os"
import "strings"

import "github.com/tinne26/voxtitle"
import "github.com/tinne26/voxtitle/cache"
import "github.com/tinne26/voxtitle/config"
import "github.com/tinne26/voxtitle/font"
import "github.com/tinne26/voxtitle/host"
import "github.com/tinne26/voxtitle/shaper"
import "github.com/tinne26/voxtitle/store"

type environment struct {
	config config.Config
	store  *store.Store
	shaper voxtitle.TextShaper
}

func (self *environment) openStore() (*store.Store, error) {
	if self.store != nil { return self.store, nil }
	st, err := store.Open(self.config.AppName)
	if err != nil { return nil, err }
	self.store = st
	return st, nil
}

// Returns the embedded fonts plus the configured font directories.
func (self *environment) fontLibrary() (*font.Library, error) {
	if len(self.config.FontDirs) == 0 {
		lib := shaper.Default().Library()
		if lib == nil { return font.NewDefaultLibrary() }
		return lib, nil
	}
	return self.config.FontLibrary()
}

// Returns the shaper for single renders. Masks are only memoized
// within each call.
func (self *environment) textShaper() (voxtitle.TextShaper, error) {
	if self.shaper != nil { return self.shaper, nil }
	if len(self.config.FontDirs) == 0 {
		self.shaper = voxtitle.StdShaper()
		return self.shaper, nil
	}
	lib, err := self.fontLibrary()
	if err != nil { return nil, err }
	self.shaper = voxtitle.NewStdShaper(shaper.New(lib))
	return self.shaper, nil
}

// Returns a shaper owning a glyph mask cache, for commands drawing
// the same title over many frames.
func (self *environment) framesShaper() (voxtitle.TextShaper, error) {
	lib, err := self.fontLibrary()
	if err != nil { return nil, err }
	masks := cache.NewMaskCache(cache.DefaultByteSize)
	return voxtitle.NewStdShaper(shaper.NewCached(lib, masks)), nil
}

// Flags selecting where the parameters of a command come from:
// a state file, a stored project or the defaults, with optional
// key=value overrides applied on top.
type paramSource struct {
	statePath string
	project   string
	overrides assignments
}

func (self *paramSource) register(flags *flag.FlagSet) {
	flags.StringVar(&self.statePath, "state", "", "parameter record `file`")
	flags.StringVar(&self.project, "project", "", "stored project `name`")
	flags.Var(&self.overrides, "set", "parameter override as `key=value` (repeatable)")
}

func (self *paramSource) load(env *environment) (voxtitle.Parameters, error) {
	if self.statePath != "" && self.project != "" {
		return voxtitle.Parameters{}, errors.New("-state and -project are mutually exclusive")
	}

	params := voxtitle.DefaultParameters()
	switch {
	case self.statePath != "":
		data, err := os.ReadFile(self.statePath)
		if err != nil { return params, err }
		params, err = voxtitle.DecodeParameters(data)
		if err != nil { log.Printf("[voxtitle] warning: %s: %v (using defaults)", self.statePath, err) }
	case self.project != "":
		st, err := env.openStore()
		if err != nil { return params, err }
		params, err = st.LoadParameters(self.project)
		if err != nil { return params, err }
	}
	return self.overrides.apply(params, 0)
}

// Repeatable key=value flag.
type assignments []string

func (self *assignments) String() string { return strings.Join(*self, " ") }

func (self *assignments) Set(value string) error {
	if !strings.Contains(value, "=") { return fmt.Errorf("expected key=value, got %q", value) }
	*self = append(*self, value)
	return nil
}

// Applies the assignments through a host retriever, so values are
// parsed exactly like host supplied ones.
func (self assignments) apply(params voxtitle.Parameters, time float64) (voxtitle.Parameters, error) {
	if len(self) == 0 { return params, nil }
	retriever := host.MapRetrieverFrom(params)
	for _, assignment := range self {
		key, value, _ := strings.Cut(assignment, "=")
		err := retriever.SetString(strings.TrimSpace(key), value)
		if err != nil { return params, err }
	}
	return host.Parameters(retriever, time), nil
}
