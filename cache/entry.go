package cache

import "image"
import "time"

// Approximate bookkeeping cost of an entry, in bytes.
const entryOverhead = 56

// Returns the approximate memory taken by a cached mask. Nil masks
// only take the entry overhead.
func MaskByteSize(mask *image.Alpha) int {
	if mask == nil { return entryOverhead }
	return mask.Rect.Dx()*mask.Rect.Dy() + entryOverhead
}

type entry struct {
	mask  *image.Alpha // shared, read-only
	bytes int
	added time.Duration // on the cache clock
	hits  int
}

// Eviction score: bytes served per tenth of a second alive, padded so
// brand new entries don't look cold. Lower is colder.
func (self *entry) score(now time.Duration) float64 {
	const pad = 1000
	tenths := (now - self.added)/(100*time.Millisecond) + 1
	return float64(self.bytes*self.hits + pad)/float64(tenths)
}
