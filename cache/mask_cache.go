package cache

import "image"
import "sync"
import "time"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/voxtitle/fract"

// Default capacity for tools rendering many frames, 8MiB.
const DefaultByteSize = 8*1024*1024

// Identifies a glyph mask. The fractional coordinates only keep the
// 6 bits of the subpixel position (see [fract.Point.Subpixel]()).
type Key struct {
	Font   *sfnt.Font
	Size   fract.Unit
	Index  sfnt.GlyphIndex
	FractX fract.Unit
	FractY fract.Unit
}

// A glyph mask cache bounded in bytes, safe for concurrent use. When
// full, a few entries are sampled and the coldest one is evicted if
// it's colder than the incoming mask.
type MaskCache struct {
	mutex   sync.Mutex
	entries map[Key]*entry
	limit   int
	used    int
	peak    int
	clock   func() time.Duration
}

// Creates a cache holding up to the given number of bytes. Negative
// sizes panic.
func NewMaskCache(byteSize int) *MaskCache {
	if byteSize < 0 { panic("byteSize < 0") }
	start := time.Now()
	return &MaskCache{
		entries: make(map[Key]*entry, 128),
		limit: byteSize,
		clock: func() time.Duration { return time.Since(start) },
	}
}

// Returns the mask stored for the key. The mask may be nil even when
// found, for glyphs without ink. Masks are shared and must not be
// modified.
func (self *MaskCache) Get(key Key) (*image.Alpha, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	cached, found := self.entries[key]
	if !found { return nil, false }
	cached.hits += 1
	return cached.mask, true
}

// Stores the mask for the key. Keys already present are left alone,
// and masks that can't make room for themselves are dropped.
func (self *MaskCache) Pass(key Key, mask *image.Alpha) {
	const evictionRounds = 2

	self.mutex.Lock()
	defer self.mutex.Unlock()
	if _, found := self.entries[key]; found { return }

	now := self.clock()
	incoming := &entry{ mask: mask, bytes: MaskByteSize(mask), added: now, hits: 1 }
	if incoming.bytes > self.limit { return }
	for round := 0; self.used + incoming.bytes > self.limit; round++ {
		if round == evictionRounds || !self.evictColderThan(incoming.score(now), now) { return }
	}

	self.entries[key] = incoming
	self.used += incoming.bytes
	self.peak = max(self.peak, self.used)
}

// Returns the number of cached masks.
func (self *MaskCache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return len(self.entries)
}

// Returns the approximate number of bytes currently cached.
func (self *MaskCache) ApproxByteSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.used
}

// Returns the highest [MaskCache.ApproxByteSize]() reached so far.
func (self *MaskCache) PeakSize() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.peak
}

// ---- helpers ----

// Samples a few entries (map order is random) and evicts the coldest
// one if its score is below the given one. Must be called with the
// mutex held.
func (self *MaskCache) evictColderThan(score float64, now time.Duration) bool {
	const sampleSize = 8

	var coldestKey Key
	var coldest *entry
	sampled := 0
	for key, cached := range self.entries {
		if coldest == nil || cached.score(now) < coldest.score(now) {
			coldestKey, coldest = key, cached
		}
		sampled += 1
		if sampled == sampleSize { break }
	}
	if coldest == nil || coldest.score(now) >= score { return false }
	delete(self.entries, coldestKey)
	self.used -= coldest.bytes
	return true
}
