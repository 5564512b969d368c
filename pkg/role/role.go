package role

import "strings"

// Role is a named permission grant definition
type Role struct {
	ID          string
	Description *string // nil when absent
}

// ParseRoleXML decodes a role element
func ParseRoleXML(buf []byte) (Role, error) {
	root, err := lookupXML(buf, roleKey, msgCannotParseRole, msgExpectingRole)
	if err != nil {
		return Role{}, err
	}

	id := attr(root, "id")
	if !present(id) {
		return Role{}, missingRequired(msgExpectingRole)
	}
	return Role{ID: *id, Description: attr(root, "description")}, nil
}

// ParseRoleJSON decodes a {"role": {...}} document. A missing or null
// description is treated as absent.
func ParseRoleJSON(buf []byte) (Role, error) {
	fields, err := lookupJSON(buf, roleKey, msgCannotParseRole, msgExpectingRole)
	if err != nil {
		return Role{}, err
	}

	id, err := stringField(fields, "id", msgCannotParseRole)
	if err != nil {
		return Role{}, err
	}
	if !present(id) {
		return Role{}, missingRequired(msgExpectingRole)
	}

	desc, err := stringField(fields, "description", msgCannotParseRole)
	if err != nil {
		return Role{}, err
	}
	return Role{ID: *id, Description: desc}, nil
}

// Element builds the role element. The description is lowercased.
func (r Role) Element() *Element {
	e := NewElement(Namespace, roleKey)
	if r.ID != "" {
		e.Set("id", r.ID)
	}
	if present(r.Description) {
		e.Set("description", strings.ToLower(*r.Description))
	}
	return e
}

// XML renders the role as markup
func (r Role) XML() []byte {
	return marshalXML(r.Element())
}

// Fields returns the role's field map under the "role" key. The description
// is passed through unmodified.
func (r Role) Fields() map[string]any {
	return map[string]any{roleKey: r.fields()}
}

func (r Role) fields() map[string]any {
	m := map[string]any{}
	if r.ID != "" {
		m["id"] = r.ID
	}
	if present(r.Description) {
		m["description"] = *r.Description
	}
	return m
}

// JSON renders the role as compact JSON
func (r Role) JSON() []byte {
	return marshalJSON(r.Fields())
}
