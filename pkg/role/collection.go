package role

import (
	"github.com/goccy/go-json"
	"github.com/tendant/simple-idm-types/pkg/errors"
)

// Roles is a page of roles plus its navigation links
type Roles struct {
	Values []Role
	Links  []Link
}

// Element builds the roles element: every role, then every link
func (c Roles) Element() *Element {
	e := NewElement(Namespace, rolesKey)
	for _, r := range c.Values {
		e.Append(r.Element())
	}
	appendLinks(e, c.Links)
	return e
}

// XML renders the collection as markup
func (c Roles) XML() ([]byte, error) {
	b, err := c.Element().Bytes()
	if err != nil {
		return nil, errors.InternalWrap(err, "failed to encode roles")
	}
	return b, nil
}

// JSON renders {"roles": {"values": [...], "links": [...]}}
func (c Roles) JSON() ([]byte, error) {
	values := make([]any, 0, len(c.Values))
	for _, r := range c.Values {
		values = append(values, r.fields())
	}
	return marshalCollection(rolesKey, values, c.Links)
}

// RoleRefs is a page of role refs plus its navigation links
type RoleRefs struct {
	Values []RoleRef
	Links  []Link
}

// Element builds the roleRefs element: every role ref, then every link
func (c RoleRefs) Element() *Element {
	e := NewElement(Namespace, roleRefsKey)
	for _, r := range c.Values {
		e.Append(r.Element())
	}
	appendLinks(e, c.Links)
	return e
}

// XML renders the collection as markup
func (c RoleRefs) XML() ([]byte, error) {
	b, err := c.Element().Bytes()
	if err != nil {
		return nil, errors.InternalWrap(err, "failed to encode role refs")
	}
	return b, nil
}

// JSON renders {"roleRefs": {"values": [...], "links": [...]}}
func (c RoleRefs) JSON() ([]byte, error) {
	return marshalCollection(roleRefsKey, c.JSONValues(), c.Links)
}

// JSONValues returns the bare role ref field maps without links or wrapper
func (c RoleRefs) JSONValues() []any {
	values := make([]any, 0, len(c.Values))
	for _, r := range c.Values {
		values = append(values, r.fields())
	}
	return values
}

// appendLinks adds each link's element. Nil links are skipped.
func appendLinks(e *Element, links []Link) {
	for _, l := range links {
		if l == nil {
			continue
		}
		e.Append(l.Element())
	}
}

func marshalCollection(key string, values []any, links []Link) ([]byte, error) {
	linkFields := make([]any, 0, len(links))
	for i, l := range links {
		if l == nil {
			continue
		}
		f, ok := l.Fields()[linksKey]
		if !ok {
			return nil, errors.Newf(errors.ErrCodeInternal, "link %d has no %q field", i, linksKey)
		}
		linkFields = append(linkFields, f)
	}

	b, err := json.MarshalNoEscape(map[string]any{
		key: map[string]any{
			valuesKey: values,
			linksKey:  linkFields,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCodeInternal, "failed to encode %s", key)
	}
	return b, nil
}
