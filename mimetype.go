package mimekit

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// MimeType is a single registered media type entry: its canonical name,
// quality weighting, known file extensions, and the evidence used to
// recognize content of that type (magic signatures and XML root-element
// associations).
//
// Entries are assembled through the unexported mutators by a
// RegistryBuilder during registry construction and are read-only
// afterwards. All exported methods are pure reads and safe for concurrent
// use once the entry is published.
type MimeType struct {
	// mediaType is the normalized name and the sole identity of the entry.
	// The zero value represents the wildcard major type.
	mediaType MediaType

	// subtype is set only by Parse; hasSubtype false means "any subtype".
	subtype    string
	hasSubtype bool

	// quality is the parsed q parameter. Parse defaults it to 1.0;
	// registry-constructed entries leave it 0 until a parse sets it.
	quality float64

	acronym     string
	uti         string
	description string
	links       []*url.URL

	// extensions in order of preference, best first.
	extensions []string

	magics  []Magic
	rootXML []RootXMLAssociation

	// minLength is the minimum number of bytes the magics need to see.
	minLength int
}

// newMimeType creates an entry for the given media type. The name is
// expected to be valid and normalized to lower case. Only the registry
// builder should call this, to keep the registry indexes up to date.
func newMimeType(mediaType MediaType) (*MimeType, error) {
	if mediaType.IsZero() {
		return nil, fmt.Errorf("%w: media type name is missing", ErrInvalidArgument)
	}
	return &MimeType{mediaType: mediaType}, nil
}

// Parse parses a MIME type string of the form type/subtype[;params] and
// returns the resulting entry. Parameters other than q are ignored; an
// unparsable or out-of-range q falls back to 1.0.
//
// Wildcards: "*/*" produces an entry whose major type and subtype are both
// "any"; "type/*" leaves only the subtype open. A wildcard major type with
// a concrete subtype ("*/plain") is malformed.
//
// A missing slash or an invalid wildcard combination yields a *ParseError
// wrapping ErrMalformedType.
func Parse(mimeType string) (*MimeType, error) {
	q := 1.0
	segment := mimeType
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		segment = mimeType[:i]
		for _, param := range strings.Split(mimeType[i+1:], ";") {
			key, value, ok := strings.Cut(param, "=")
			if !ok {
				continue
			}
			if strings.ToLower(strings.TrimSpace(key)) != "q" {
				continue
			}
			parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				continue
			}
			if parsed <= 0.0 || parsed >= 1.0 {
				parsed = 1.0
			}
			q = parsed
		}
	}

	major, sub, ok := strings.Cut(segment, "/")
	if !ok {
		return nil, &ParseError{Input: mimeType, Err: ErrMalformedType}
	}
	major = strings.ToLower(strings.TrimSpace(major))
	sub = strings.ToLower(strings.TrimSpace(sub))

	if major == "*" {
		if sub != "*" {
			return nil, &ParseError{Input: mimeType, Err: ErrMalformedType}
		}
		return &MimeType{quality: q}, nil
	}
	if sub == "*" {
		return &MimeType{mediaType: MediaType{name: major}, quality: q}, nil
	}
	return &MimeType{
		mediaType:  MediaType{name: major},
		subtype:    sub,
		hasSubtype: true,
		quality:    q,
	}, nil
}

// MustParse is like Parse but panics on a malformed input. It simplifies
// variable initialization and tests.
func MustParse(mimeType string) *MimeType {
	t, err := Parse(mimeType)
	if err != nil {
		panic(err)
	}
	return t
}

// Type returns the normalized media type name. It is the zero MediaType
// for the wildcard entry produced by Parse("*/*").
func (t *MimeType) Type() MediaType {
	return t.mediaType
}

// Name returns the normalized name of this media type, or the empty
// string for the wildcard entry.
func (t *MimeType) Name() string {
	return t.mediaType.String()
}

// MajorType returns the major type component, or "*" for the wildcard
// entry.
func (t *MimeType) MajorType() string {
	if t.mediaType.IsZero() {
		return "*"
	}
	return t.mediaType.String()
}

// Subtype returns the subtype component, or "*" when any subtype matches.
func (t *MimeType) Subtype() string {
	if !t.hasSubtype {
		return "*"
	}
	return t.subtype
}

// FullType returns "major/subtype" using "*" for open components.
func (t *MimeType) FullType() string {
	return t.MajorType() + "/" + t.Subtype()
}

// Quality returns the q weighting of this entry.
func (t *MimeType) Quality() float64 {
	return t.quality
}

// IsAnyMajorType reports whether this entry matches any major type.
func (t *MimeType) IsAnyMajorType() bool {
	return t.mediaType.IsZero()
}

// IsAnySubtype reports whether this entry matches any subtype.
func (t *MimeType) IsAnySubtype() bool {
	return !t.hasSubtype
}

// Description returns the human-readable description of this media type.
func (t *MimeType) Description() string {
	return t.description
}

// Acronym returns the acronym for this media type, or an empty string.
func (t *MimeType) Acronym() string {
	return t.acronym
}

// UniformTypeIdentifier returns the Apple UTI for this media type, or an
// empty string.
func (t *MimeType) UniformTypeIdentifier() string {
	return t.uti
}

// Links returns the documentation links of this media type. The returned
// slice is a copy; mutating it does not affect the entry.
func (t *MimeType) Links() []*url.URL {
	if len(t.links) == 0 {
		return nil
	}
	out := make([]*url.URL, len(t.links))
	copy(out, t.links)
	return out
}

// Extension returns the preferred file extension of this type, or an
// empty string if no extensions are known.
func (t *MimeType) Extension() string {
	if len(t.extensions) == 0 {
		return ""
	}
	return t.extensions[0]
}

// Extensions returns all known file extensions of this media type in
// order of preference, best first. The returned slice is a copy.
func (t *MimeType) Extensions() []string {
	if len(t.extensions) == 0 {
		return nil
	}
	out := make([]string, len(t.extensions))
	copy(out, t.extensions)
	return out
}

// MinLength returns the minimum number of bytes the magic signatures of
// this entry need to see.
func (t *MimeType) MinLength() int {
	return t.minLength
}

// HasMagic reports whether any magic signatures are configured.
func (t *MimeType) HasMagic() bool {
	return len(t.magics) > 0
}

// HasRootXML reports whether any root-XML associations are configured.
func (t *MimeType) HasRootXML() bool {
	return len(t.rootXML) > 0
}

// MatchesMagic reports whether at least one configured magic evaluates
// true against data. It returns false, not an error, when no magics are
// configured or the buffer is too short for any of them.
func (t *MimeType) MatchesMagic(data []byte) bool {
	for _, m := range t.magics {
		if m.Eval(data) {
			return true
		}
	}
	return false
}

// Matches reports whether the given content bytes match this media type.
func (t *MimeType) Matches(data []byte) bool {
	return t.MatchesMagic(data)
}

// MatchesXML reports whether any configured root-XML association matches
// the given root element; false if none are configured.
func (t *MimeType) MatchesXML(namespaceURI, localName string) bool {
	for _, a := range t.rootXML {
		if a.Matches(namespaceURI, localName) {
			return true
		}
	}
	return false
}

// Equal reports whether two entries denote the same media type. Only the
// media type name participates: subtype and quality variants produced by
// Parse compare equal when their major names agree. Registry indexes rely
// on this narrow identity to key purely on the primary name.
func (t *MimeType) Equal(other *MimeType) bool {
	return other != nil && t.mediaType == other.mediaType
}

// Compare orders entries by media type name only. Entries with equal
// names are order-equivalent regardless of subtype or quality.
func (t *MimeType) Compare(other *MimeType) int {
	return t.mediaType.Compare(other.mediaType)
}

// Hash returns a hash of the media type name, consistent with Equal.
func (t *MimeType) Hash() uint64 {
	return t.mediaType.Hash()
}

// String returns the normalized name of this media type.
func (t *MimeType) String() string {
	return t.mediaType.String()
}

// addExtension adds a known file extension to this type. Adding a
// duplicate is a no-op; the first extension added stays preferred.
func (t *MimeType) addExtension(extension string) {
	for _, e := range t.extensions {
		if e == extension {
			return
		}
	}
	t.extensions = append(t.extensions, extension)
}

// addMagic appends a magic signature; nil magics are ignored.
func (t *MimeType) addMagic(m Magic) {
	if m == nil {
		return
	}
	t.magics = append(t.magics, m)
}

// addRootXML associates a root element with this type.
func (t *MimeType) addRootXML(namespaceURI, localName string) error {
	a, err := NewRootXMLAssociation(namespaceURI, localName)
	if err != nil {
		return err
	}
	t.rootXML = append(t.rootXML, a)
	return nil
}

// addLink appends a documentation link.
func (t *MimeType) addLink(link *url.URL) error {
	if link == nil {
		return fmt.Errorf("%w: missing link", ErrInvalidArgument)
	}
	t.links = append(t.links, link)
	return nil
}

func (t *MimeType) setAcronym(acronym string) {
	t.acronym = acronym
}

func (t *MimeType) setDescription(description string) {
	t.description = description
}

func (t *MimeType) setUniformTypeIdentifier(uti string) {
	t.uti = uti
}

// setMinLength raises the minimum magic buffer length; it never shrinks.
func (t *MimeType) setMinLength(n int) {
	if n > t.minLength {
		t.minLength = n
	}
}
