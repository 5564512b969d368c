package role

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Element is a minimal XML tree: a qualified name, unqualified attributes
// and child elements. Character data is not kept.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Children []*Element
}

// NewElement creates an element in the given namespace
func NewElement(space, local string) *Element {
	return &Element{Name: xml.Name{Space: space, Local: local}}
}

// Set sets an unqualified attribute, replacing any previous value
func (e *Element) Set(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Get returns an unqualified attribute and whether it was present
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds child elements in order
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// MarshalXML writes the element under its own name, ignoring start.
func (e *Element) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: e.Name}
	for _, a := range e.Attrs {
		// the encoder emits xmlns from Name.Space
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		start.Attr = append(start.Attr, a)
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := enc.EncodeElement(child, xml.StartElement{Name: child.Name}); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// Bytes serializes the element tree
func (e *Element) Bytes() ([]byte, error) {
	return xml.Marshal(e)
}

// decodeDocument parses buf as a single well-formed XML document and returns
// its root element. Content after the root element other than whitespace,
// comments and processing instructions is rejected.
func decodeDocument(buf []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(buf))

	var root *Element
	var stack []*Element
	var scopes []map[string]bool
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				line, _ := dec.InputPos()
				return nil, fmt.Errorf("extra content at the end of the document, line %d", line)
			}
			var parent map[string]bool
			if len(scopes) > 0 {
				parent = scopes[len(scopes)-1]
			}
			scope, err := checkStart(t, parent)
			if err != nil {
				line, _ := dec.InputPos()
				return nil, fmt.Errorf("%w, line %d", err, line)
			}
			scopes = append(scopes, scope)
			el := &Element{Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				root = el
			} else {
				stack[len(stack)-1].Append(el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				line, _ := dec.InputPos()
				if root == nil {
					return nil, fmt.Errorf("start tag expected, line %d", line)
				}
				return nil, fmt.Errorf("extra content at the end of the document, line %d", line)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return root, nil
}

// xmlURL is the namespace bound to the predefined "xml" prefix
const xmlURL = "http://www.w3.org/XML/1998/namespace"

// checkStart rejects repeated attributes and names whose prefix is not
// declared in scope. The decoder leaves an undeclared prefix in Name.Space
// instead of failing. It returns the namespaces in scope for the element's
// children.
func checkStart(t xml.StartElement, parent map[string]bool) (map[string]bool, error) {
	scope := parent
	copied := false
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			if !copied {
				scope = make(map[string]bool, len(parent)+1)
				for uri := range parent {
					scope[uri] = true
				}
				copied = true
			}
			scope[a.Value] = true
		}
	}

	declared := func(space string) bool {
		return space == "" || space == xmlURL || space == "xml" || scope[space]
	}
	if !declared(t.Name.Space) {
		return nil, fmt.Errorf("namespace prefix %s on %s is not defined", t.Name.Space, t.Name.Local)
	}

	seen := make(map[xml.Name]bool, len(t.Attr))
	for _, a := range t.Attr {
		if seen[a.Name] {
			return nil, fmt.Errorf("attribute %s redefined", qualified(a.Name))
		}
		seen[a.Name] = true
		if a.Name.Space != "xmlns" && !declared(a.Name.Space) {
			return nil, fmt.Errorf("namespace prefix %s for %s on %s is not defined", a.Name.Space, a.Name.Local, t.Name.Local)
		}
	}
	return scope, nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
