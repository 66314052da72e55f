package font

import "errors"
import "fmt"
import "io/fs"
import "os"
import "path"

import "golang.org/x/image/font/sfnt"

// Returned by [Library.Add]() when a font with the same full name
// is already in the library.
var ErrAlreadyPresent = errors.New("font already present in the library")

// Fonts indexed by full name, with loose aliases on top.
//
// Besides the full name, a font can be found through its PostScript
// name and its family name. A family resolves to the first font added
// with that family, unless a later member has a regular subfamily
// ("Regular", "Book", ...), which takes the family over. Lookups
// through [Library.Resolve]() ignore case, spaces, dashes and
// underscores.
//
// Libraries are populated first and only read afterwards; reads are
// safe from multiple goroutines, writes are not.
type Library struct {
	fonts   map[string]*sfnt.Font
	order   []string
	aliases map[string]string // normalized alias => full name
}

func NewLibrary() *Library {
	return &Library{
		fonts:   make(map[string]*sfnt.Font),
		aliases: make(map[string]string),
	}
}

// Returns the number of fonts in the library.
func (self *Library) Len() int { return len(self.fonts) }

// Returns the full names of all fonts in the order they were added.
func (self *Library) Names() []string {
	return append([]string(nil), self.order...)
}

// Looks up a font by full name, family name or PostScript name.
// Returns the font, its full name and whether the lookup succeeded.
// An exact full name always wins over aliases.
func (self *Library) Resolve(name string) (*sfnt.Font, string, bool) {
	fnt, found := self.fonts[name]
	if found { return fnt, name, true }
	key := normalizeName(name)
	if key == "" { return nil, "", false }
	fullName, found := self.aliases[key]
	if !found { return nil, "", false }
	return self.fonts[fullName], fullName, true
}

// Parses the font data and adds the font, returning its full name.
// The data must not be modified afterwards.
func (self *Library) Add(data []byte) (string, error) {
	fnt, names, err := Parse(data)
	if err != nil { return names.Full, err }
	if _, found := self.fonts[names.Full]; found {
		return names.Full, ErrAlreadyPresent
	}

	self.fonts[names.Full] = fnt
	self.order = append(self.order, names.Full)
	self.claim(names.Full, names.Full, false)
	self.claim(names.PostScript, names.Full, false)
	self.claim(names.Family, names.Full, names.IsRegular())
	return names.Full, nil
}

// Adds every .ttf and .otf file directly inside the given directory.
// Returns how many fonts were added and how many were skipped because
// their names were already present.
func (self *Library) AddDir(dir string) (added, skipped int, err error) {
	return self.AddFS(os.DirFS(dir), ".")
}

// Like [Library.AddDir](), for any [fs.FS]. Subdirectories are not
// visited. Files are added in lexical order.
func (self *Library) AddFS(fsys fs.FS, dir string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil { return 0, 0, err }
	for _, entry := range entries {
		if entry.IsDir() || !IsFontFile(entry.Name()) { continue }
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil { return added, skipped, err }
		_, err = self.Add(data)
		switch {
		case errors.Is(err, ErrAlreadyPresent):
			skipped += 1
		case err != nil:
			return added, skipped, fmt.Errorf("%s: %w", entry.Name(), err)
		default:
			added += 1
		}
	}
	return added, skipped, nil
}

// ---- helpers ----

// Aliases are first come, first served unless override is set. An
// alias that matches some font's full name is never taken over.
func (self *Library) claim(alias string, fullName string, override bool) {
	key := normalizeName(alias)
	if key == "" { return }
	current, taken := self.aliases[key]
	if taken && (!override || normalizeName(current) == key) { return }
	self.aliases[key] = fullName
}
