package mimekit

import (
	"sort"
	"strings"
)

// Registry is a frozen index of MimeType entries by canonical name,
// alias, and file extension, with detection dispatch over magic
// signatures and XML root elements.
//
// A Registry is immutable once built: all methods are pure reads with no
// internal locking, so it is safe for concurrent use. Entries are only
// assembled through a RegistryBuilder.
type Registry struct {
	types      []*MimeType
	byName     map[string]*MimeType
	byExt      map[string][]*MimeType
	magicTypes []*MimeType
	xmlTypes   []*MimeType
	minLength  int
}

// Lookup returns the entry registered under the given canonical name or
// alias. The name is trimmed and lower-cased before the lookup.
func (r *Registry) Lookup(name string) (*MimeType, bool) {
	t, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ForExtension returns the entries claiming the given file extension, in
// registration order. A leading dot is ignored, so ".png" and "png" are
// equivalent.
func (r *Registry) ForExtension(ext string) []*MimeType {
	found := r.byExt[normalizeExtension(ext)]
	if len(found) == 0 {
		return nil
	}
	out := make([]*MimeType, len(found))
	copy(out, found)
	return out
}

// Types returns all registered entries in registration order.
func (r *Registry) Types() []*MimeType {
	out := make([]*MimeType, len(r.types))
	copy(out, r.types)
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.types)
}

// MinLength returns the number of leading bytes detection needs to see
// for every registered magic signature to be evaluable.
func (r *Registry) MinLength() int {
	return r.minLength
}

// DetectBytes returns all entries whose magics match the given content,
// most specific first: entries are ordered by the size of their largest
// matched signature, descending, with registration order breaking ties.
// Choosing a single winner is left to the caller.
func (r *Registry) DetectBytes(data []byte) []*MimeType {
	type hit struct {
		t     *MimeType
		score int
	}
	var hits []hit
	for _, t := range r.magicTypes {
		score := -1
		for _, m := range t.magics {
			if !m.Eval(data) {
				continue
			}
			size := 0
			if sized, ok := m.(interface{ Size() int }); ok {
				size = sized.Size()
			}
			if size > score {
				score = size
			}
		}
		if score >= 0 {
			hits = append(hits, hit{t: t, score: score})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	out := make([]*MimeType, len(hits))
	for i, h := range hits {
		out[i] = h.t
	}
	return out
}

// DetectXML returns all entries with a root-XML association matching the
// given root element, in registration order.
func (r *Registry) DetectXML(namespaceURI, localName string) []*MimeType {
	var out []*MimeType
	for _, t := range r.xmlTypes {
		if t.MatchesXML(namespaceURI, localName) {
			out = append(out, t)
		}
	}
	return out
}

// normalizeExtension lower-cases an extension and strips a leading dot.
func normalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}
