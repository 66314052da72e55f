package font

import "sync"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gobold"
import "golang.org/x/image/font/gofont/goitalic"
import "golang.org/x/image/font/gofont/gobolditalic"
import "golang.org/x/image/font/gofont/gomedium"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/gomonobold"
import "golang.org/x/image/font/gofont/gosmallcaps"

// The embedded font faces loaded by [NewDefaultLibrary]().
var defaultFaces = [][]byte{
	goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF,
	gomedium.TTF, gomono.TTF, gomonobold.TTF, gosmallcaps.TTF,
}

var fallbackOnce sync.Once
var fallbackFont *sfnt.Font
var fallbackName string

// Creates a library containing the embedded Go font faces. These
// are always available, even on machines without any system fonts.
func NewDefaultLibrary() (*Library, error) {
	lib := NewLibrary()
	for _, fontBytes := range defaultFaces {
		_, err := lib.Add(fontBytes)
		if err != nil && err != ErrAlreadyPresent { return nil, err }
	}
	return lib, nil
}

// Returns the font used when a requested font can't be resolved,
// along with its name. The font is parsed on first use and shared
// afterwards.
func Fallback() (*sfnt.Font, string) {
	fallbackOnce.Do(func() {
		fnt, names, err := Parse(goregular.TTF)
		if err != nil { panic("embedded fallback font: " + err.Error()) }
		fallbackFont, fallbackName = fnt, names.Full
	})
	return fallbackFont, fallbackName
}
