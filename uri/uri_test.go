package uri

import (
	"errors"
	"testing"
)

func TestParseNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full default", "ink://ink/texture:test-texture", "/texture:test-texture"},
		{"short", "/texture:test-texture", "/texture:test-texture"},
		{"empty authority", "ink:///texture:foo", "/texture:foo"},
		{"scheme case", "INK://ink/texture:foo", "/texture:foo"},
		{"default revision", "/texture:foo:1", "/texture:foo"},
		{"revision", "/texture:foo:3", "/texture:foo:3"},
		{"authority", "ink://Example.com/texture:foo", "ink://example.com/texture:foo"},
		{"brush family", "/brush-family:marker", "/brush-family:marker"},
		{"asset type case", "/Texture:foo", "/texture:foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got := u.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no slash", "texture:foo"},
		{"bad scheme", "http://ink/texture:foo"},
		{"missing path", "ink://ink"},
		{"unknown type", "/image:foo"},
		{"missing name", "/texture:"},
		{"bad name", "/texture:foo bar"},
		{"bad revision", "/texture:foo:x"},
		{"zero revision", "/texture:foo:0"},
		{"too many parts", "/texture:foo:1:2"},
		{"bad authority", "ink://a b/texture:foo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.in)
			}
			if !errors.Is(err, ErrInvalidURI) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidURI", tt.in, err)
			}
		})
	}
}

func TestEquivalentSpellingsCompareEqual(t *testing.T) {
	a := MustParse("ink://ink/texture:foo:1")
	b := MustParse("/texture:foo")
	if a != b {
		t.Errorf("%v != %v, want equal", a, b)
	}

	// "é" as a single code point and as "e" + combining acute accent.
	composed := MustParse("/texture:caf\u00e9")
	decomposed := MustParse("/texture:cafe\u0301")
	if composed != decomposed {
		t.Errorf("NFC-equivalent names compare unequal: %q vs %q", composed.Name(), decomposed.Name())
	}

	if MustParse("/texture:foo") == MustParse("/texture:bar") {
		t.Error("different names compare equal")
	}
}

func TestZeroURI(t *testing.T) {
	var u URI
	if !u.IsZero() {
		t.Error("zero URI IsZero() = false")
	}
	if got := u.String(); got != "" {
		t.Errorf("zero URI String() = %q, want empty", got)
	}
	if MustParse("/texture:foo").IsZero() {
		t.Error("parsed URI IsZero() = true")
	}
}

func TestAccessors(t *testing.T) {
	u := MustParse("ink://studio/brush-family:pen:4")
	if u.Authority() != "studio" {
		t.Errorf("Authority() = %q, want studio", u.Authority())
	}
	if u.AssetType() != AssetTypeBrushFamily {
		t.Errorf("AssetType() = %v, want brush-family", u.AssetType())
	}
	if u.Name() != "pen" {
		t.Errorf("Name() = %q, want pen", u.Name())
	}
	if u.Revision() != 4 {
		t.Errorf("Revision() = %d, want 4", u.Revision())
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("not a uri")
}
