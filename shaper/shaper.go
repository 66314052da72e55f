package shaper

import "fmt"
import "sync"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/voxtitle/cache"
import "github.com/tinne26/voxtitle/font"
import "github.com/tinne26/voxtitle/fract"

// Resolves font names and shapes lines of text. Create with
// [New]() or use the shared [Default]() instance.
type Shaper struct {
	lib   *font.Library
	masks *cache.MaskCache
}

var defaultOnce sync.Once
var defaultShaper *Shaper

// Creates a shaper reading fonts from the given library. A nil
// library is valid and makes every lookup fall back.
//
// The library must not be modified while the shaper is in use.
func New(lib *font.Library) *Shaper {
	return &Shaper{ lib: lib }
}

// Like [New](), but glyph masks are kept in the given cache and
// reused by every line the shaper creates. A nil cache is valid and
// disables caching.
func NewCached(lib *font.Library, masks *cache.MaskCache) *Shaper {
	return &Shaper{ lib: lib, masks: masks }
}

// Returns a shared shaper backed by [font.NewDefaultLibrary](). The
// library is created on first use and read-only afterwards. The shaper
// has no mask cache, so drawing its lines leaves no state behind.
func Default() *Shaper {
	defaultOnce.Do(func() {
		lib, err := font.NewDefaultLibrary()
		if err != nil { lib = nil } // still usable through the fallback
		defaultShaper = New(lib)
	})
	return defaultShaper
}

// Returns the library the shaper reads fonts from. It may be nil.
func (self *Shaper) Library() *font.Library { return self.lib }

// Returns the glyph mask cache of the shaper. It may be nil.
func (self *Shaper) Cache() *cache.MaskCache { return self.masks }

// Resolves the given font name. If the name can't be found, the
// fallback font is returned instead and the last value is false.
func (self *Shaper) Resolve(name string) (*sfnt.Font, string, bool) {
	if self.lib != nil {
		fnt, fullName, found := self.lib.Resolve(name)
		if found { return fnt, fullName, true }
	}
	fnt, fullName := font.Fallback()
	return fnt, fullName, false
}

// Shapes the given text with the named font at the given size (in
// pixels per em). Negative or NaN sizes are treated as zero.
//
// Unknown fonts fall back silently (see [Line.Fallback]()). If the
// resolved font has broken tables, shaping is retried once with the
// fallback font before an error is returned.
func (self *Shaper) Shape(text string, fontName string, size float64) (*Line, error) {
	if !(size > 0) { size = 0 }
	fnt, fullName, found := self.Resolve(fontName)
	line, err := shapeLine(text, fnt, fullName, fract.FromFloat64(size))
	if err == nil {
		line.masks = self.masks
		line.fallback = !found
		return line, nil
	}

	fallback, fallbackName := font.Fallback()
	if fallback == fnt { return nil, err }
	line, fallbackErr := shapeLine(text, fallback, fallbackName, fract.FromFloat64(size))
	if fallbackErr != nil { return nil, fmt.Errorf("shaping with %q: %w", fullName, err) }
	line.fallback = true
	line.masks = self.masks
	return line, nil
}

func shapeLine(text string, fnt *sfnt.Font, fontName string, size fract.Unit) (*Line, error) {
	var buffer sfnt.Buffer
	glyphMetrics := newMetrics(fnt, &buffer, size)

	line := &Line{ font: fnt, fontName: fontName, size: size }
	var penX fract.Unit
	var prev sfnt.GlyphIndex
	for i, codePoint := range text {
		index, err := fnt.GlyphIndex(&buffer, codePoint)
		if err != nil { return nil, err }
		// index 0 is the notdef glyph, which we draw like any other
		if i > 0 { penX += glyphMetrics.kern(prev, index) }

		line.ink = line.ink.Union(glyphMetrics.bounds(index).Add(penX, 0))
		line.glyphs = append(line.glyphs, glyph{ index: index, x: penX })
		penX += glyphMetrics.advance(index)
		prev = index
	}
	if glyphMetrics.err != nil { return nil, glyphMetrics.err }
	line.advance = penX
	return line, nil
}
