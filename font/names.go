package font

import "errors"
import "path"
import "strings"

import "golang.org/x/image/font/sfnt"

// Naming table entries used to find a font. Only Full is required.
type Names struct {
	Full       string
	Family     string
	Subfamily  string
	PostScript string
}

// Returned when a font has no full name, which libraries key
// fonts by.
var ErrUnnamed = errors.New("font has no full name")

// Parses font data and reads its names. The data must not be
// modified while the font is in use.
func Parse(data []byte) (*sfnt.Font, Names, error) {
	fnt, err := sfnt.Parse(data)
	if err != nil { return nil, Names{}, err }
	names, err := ReadNames(fnt)
	if err != nil { return nil, names, err }
	return fnt, names, nil
}

// Reads the names of the given font. Missing optional entries are
// left empty.
func ReadNames(fnt *sfnt.Font) (Names, error) {
	var buffer sfnt.Buffer
	var names Names
	entries := []struct {
		id  sfnt.NameID
		out *string
	}{
		{ sfnt.NameIDFull, &names.Full },
		{ sfnt.NameIDFamily, &names.Family },
		{ sfnt.NameIDSubfamily, &names.Subfamily },
		{ sfnt.NameIDPostScript, &names.PostScript },
	}
	for _, entry := range entries {
		value, err := fnt.Name(&buffer, entry.id)
		if errors.Is(err, sfnt.ErrNotFound) { continue }
		if err != nil { return names, err }
		*entry.out = value
	}
	if names.Full == "" { return names, ErrUnnamed }
	return names, nil
}

// Reports whether the subfamily is the upright, normal weight
// member of its family.
func (self Names) IsRegular() bool {
	switch normalizeName(self.Subfamily) {
	case "regular", "normal", "book", "roman": return true
	}
	return false
}

// Reports whether the file name has a .ttf or .otf extension,
// ignoring case.
func IsFontFile(name string) bool {
	ext := path.Ext(name)
	return strings.EqualFold(ext, ".ttf") || strings.EqualFold(ext, ".otf")
}

// ---- helpers ----

// Lowercases and drops spaces, dashes and underscores, so "Go Mono",
// "GoMono" and "go-mono" all become "gomono".
func normalizeName(name string) string {
	var builder strings.Builder
	builder.Grow(len(name))
	for _, codePoint := range strings.ToLower(name) {
		switch codePoint {
		case ' ', '-', '_', '\t': continue
		}
		builder.WriteRune(codePoint)
	}
	return builder.String()
}
