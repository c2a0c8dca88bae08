package mimekit

import "fmt"

// RootXMLAssociation identifies a media type by the root element of an
// XML document: a namespace URI and/or a local element name. At least one
// of the two must be non-empty.
type RootXMLAssociation struct {
	namespaceURI string
	localName    string
}

// NewRootXMLAssociation creates an association from a namespace URI and a
// local element name. Constructing with both empty is an invalid-argument
// error.
func NewRootXMLAssociation(namespaceURI, localName string) (RootXMLAssociation, error) {
	if namespaceURI == "" && localName == "" {
		return RootXMLAssociation{}, fmt.Errorf("%w: %w", ErrInvalidArgument, ErrEmptyAssociation)
	}
	return RootXMLAssociation{namespaceURI: namespaceURI, localName: localName}, nil
}

// NamespaceURI returns the namespace URI, or an empty string when the
// association matches only on the local name.
func (a RootXMLAssociation) NamespaceURI() string {
	return a.namespaceURI
}

// LocalName returns the local element name, or an empty string when the
// association matches only on the namespace.
func (a RootXMLAssociation) LocalName() string {
	return a.localName
}

// Matches reports whether the given root element matches this
// association. A non-empty field must be equalled exactly; an empty field
// requires the candidate value to be empty as well. Both fields must pass.
func (a RootXMLAssociation) Matches(namespaceURI, localName string) bool {
	if a.namespaceURI != "" {
		if a.namespaceURI != namespaceURI {
			return false
		}
	} else if namespaceURI != "" {
		return false
	}

	if a.localName != "" {
		if a.localName != localName {
			return false
		}
	} else if localName != "" {
		return false
	}
	return true
}

// String returns "namespaceURI, localName" for diagnostics.
func (a RootXMLAssociation) String() string {
	return a.namespaceURI + ", " + a.localName
}
