package font

import "testing"

import "golang.org/x/image/font/gofont/goregular"
import "golang.org/x/image/font/gofont/gobold"

func TestReadNames(t *testing.T) {
	_, regular, err := Parse(goregular.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	if regular.Full == "" || regular.Family == "" || regular.PostScript == "" {
		t.Fatalf("expected full, family and PostScript names, got %+v", regular)
	}
	if !regular.IsRegular() { t.Fatalf("expected %q to be regular", regular.Subfamily) }

	_, bold, err := Parse(gobold.TTF)
	if err != nil { t.Fatalf("parse error: %s", err) }
	if bold.IsRegular() { t.Fatalf("expected %q not to be regular", bold.Subfamily) }
	if bold.Full == regular.Full { t.Fatal("regular and bold share a full name") }

	_, _, err = Parse([]byte("definitely not a font"))
	if err == nil { t.Fatal("expected an error for garbage data") }
}

func TestIsFontFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"title.ttf", true}, {"TITLE.OTF", true}, {"dir/Title.Ttf", true},
		{"title.woff", false}, {"ttf", false}, {"notes.txt", false}, {"", false},
	}
	for _, test := range tests {
		if IsFontFile(test.name) != test.want {
			t.Fatalf("IsFontFile(%q) expected %t", test.name, test.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	for _, name := range []string{ "Go Mono", "GoMono", "go-mono", "GO_MONO", " go\tmono " } {
		if normalizeName(name) != "gomono" {
			t.Fatalf("normalizeName(%q) = %q", name, normalizeName(name))
		}
	}
}
