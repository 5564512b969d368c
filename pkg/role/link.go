package role

// AtomNamespace is the namespace of Atom link elements
const AtomNamespace = "http://www.w3.org/2005/Atom"

// Link is a navigation record attached to a collection. Collections never
// inspect links; they only ask a link for its element and for its field map,
// which must hold the link's fields under the "links" key.
type Link interface {
	Element() *Element
	Fields() map[string]any
}

// AtomLink is an Atom link relation such as "next" or "previous"
type AtomLink struct {
	Rel  string
	Href string
	Type string
}

// Element builds an atom:link element
func (l AtomLink) Element() *Element {
	e := NewElement(AtomNamespace, "link")
	if l.Rel != "" {
		e.Set("rel", l.Rel)
	}
	if l.Href != "" {
		e.Set("href", l.Href)
	}
	if l.Type != "" {
		e.Set("type", l.Type)
	}
	return e
}

// Fields returns the link's field map under the "links" key
func (l AtomLink) Fields() map[string]any {
	m := map[string]any{}
	if l.Rel != "" {
		m["rel"] = l.Rel
	}
	if l.Href != "" {
		m["href"] = l.Href
	}
	if l.Type != "" {
		m["type"] = l.Type
	}
	return map[string]any{linksKey: m}
}
