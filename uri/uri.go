// Package uri names the assets a brush paint refers to, such as textures.
//
// A URI has the form
//
//	[ink://[authority]]/<asset-type>:<name>[:<revision>]
//
// Parse accepts any spelling of that grammar and URI.String returns the
// normalized one: the default authority and the default revision are
// omitted, so "ink://ink/texture:grain:1" prints as "/texture:grain".
// Names are NFC-normalized, which makes canonically equivalent spellings
// compare equal.
//
// URI values are comparable with == and are safe to use as map keys.
package uri

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidURI is returned (wrapped) for every malformed input to Parse.
var ErrInvalidURI = errors.New("uri: invalid URI")

const (
	scheme           = "ink"
	defaultAuthority = "ink"
	defaultRevision  = 1
)

// AssetType identifies the kind of asset a URI names.
type AssetType int

const (
	// AssetTypeUnspecified is the asset type of the zero URI.
	AssetTypeUnspecified AssetType = iota
	// AssetTypeTexture names a texture image.
	AssetTypeTexture
	// AssetTypeBrushFamily names a brush family definition.
	AssetTypeBrushFamily
)

// String returns the asset type as it appears in a URI.
func (t AssetType) String() string {
	switch t {
	case AssetTypeTexture:
		return "texture"
	case AssetTypeBrushFamily:
		return "brush-family"
	case AssetTypeUnspecified:
		return ""
	default:
		return "AssetType(" + strconv.Itoa(int(t)) + ")"
	}
}

func parseAssetType(s string) (AssetType, bool) {
	switch s {
	case "texture":
		return AssetTypeTexture, true
	case "brush-family":
		return AssetTypeBrushFamily, true
	default:
		return AssetTypeUnspecified, false
	}
}

// URI is a parsed, normalized asset reference.
// The zero URI is the "unset" reference and prints as the empty string.
type URI struct {
	authority string
	assetType AssetType
	name      string
	revision  int
}

// Parse parses and normalizes s.
func Parse(s string) (URI, error) {
	rest := s
	authority := defaultAuthority

	if i := strings.Index(rest, "://"); i >= 0 {
		if !strings.EqualFold(rest[:i], scheme) {
			return URI{}, fmt.Errorf("%w: unsupported scheme %q in %q", ErrInvalidURI, rest[:i], s)
		}
		rest = rest[i+len("://"):]
		slash := strings.IndexByte(rest, '/')
		if slash < 0 {
			return URI{}, fmt.Errorf("%w: missing path in %q", ErrInvalidURI, s)
		}
		if slash > 0 {
			authority = strings.ToLower(rest[:slash])
			if !validToken(authority) {
				return URI{}, fmt.Errorf("%w: bad authority %q in %q", ErrInvalidURI, authority, s)
			}
		}
		rest = rest[slash:]
	}

	if !strings.HasPrefix(rest, "/") {
		return URI{}, fmt.Errorf("%w: path must start with '/' in %q", ErrInvalidURI, s)
	}
	parts := strings.Split(rest[1:], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return URI{}, fmt.Errorf("%w: want /<asset-type>:<name>[:<revision>], got %q", ErrInvalidURI, s)
	}

	assetType, ok := parseAssetType(strings.ToLower(parts[0]))
	if !ok {
		return URI{}, fmt.Errorf("%w: unknown asset type %q in %q", ErrInvalidURI, parts[0], s)
	}

	name := norm.NFC.String(parts[1])
	if name == "" || !validToken(name) {
		return URI{}, fmt.Errorf("%w: bad asset name %q in %q", ErrInvalidURI, parts[1], s)
	}

	revision := defaultRevision
	if len(parts) == 3 {
		r, err := strconv.Atoi(parts[2])
		if err != nil || r < 1 {
			return URI{}, fmt.Errorf("%w: revision must be a positive integer, got %q", ErrInvalidURI, parts[2])
		}
		revision = r
	}

	return URI{
		authority: authority,
		assetType: assetType,
		name:      name,
		revision:  revision,
	}, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and package-level variables.
func MustParse(s string) URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// validToken reports whether s consists of letters, digits, '-', '_' and '.'.
func validToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return false
	}
	return true
}

// IsZero reports whether u is the unset reference.
func (u URI) IsZero() bool {
	return u == URI{}
}

// Authority returns the authority, "ink" unless one was given.
func (u URI) Authority() string { return u.authority }

// AssetType returns the kind of asset named.
func (u URI) AssetType() AssetType { return u.assetType }

// Name returns the NFC-normalized asset name.
func (u URI) Name() string { return u.name }

// Revision returns the asset revision, 1 unless one was given.
func (u URI) Revision() int { return u.revision }

// String returns the normalized form of u, or "" for the zero URI.
func (u URI) String() string {
	if u.IsZero() {
		return ""
	}
	var b strings.Builder
	if u.authority != defaultAuthority {
		b.WriteString(scheme)
		b.WriteString("://")
		b.WriteString(u.authority)
	}
	b.WriteByte('/')
	b.WriteString(u.assetType.String())
	b.WriteByte(':')
	b.WriteString(u.name)
	if u.revision != defaultRevision {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.revision))
	}
	return b.String()
}
