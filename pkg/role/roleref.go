package role

// RoleRef assigns a role to a tenant. ID is assigned by the storage layer and
// is never read from input.
type RoleRef struct {
	ID       *string
	RoleID   string
	TenantID string
}

// ParseRoleRefXML decodes a roleRef element. roleId is checked before
// tenantId.
func ParseRoleRefXML(buf []byte) (RoleRef, error) {
	root, err := lookupXML(buf, roleRefKey, msgCannotParseRef, msgExpectingRoleRef)
	if err != nil {
		return RoleRef{}, err
	}

	roleID := attr(root, "roleId")
	tenantID := attr(root, "tenantId")
	if !present(roleID) {
		return RoleRef{}, missingRequired(msgExpectingRole)
	}
	if !present(tenantID) {
		return RoleRef{}, missingRequired(msgExpectingTenant)
	}
	return RoleRef{RoleID: *roleID, TenantID: *tenantID}, nil
}

// ParseRoleRefJSON decodes a {"roleRef": {...}} document
func ParseRoleRefJSON(buf []byte) (RoleRef, error) {
	fields, err := lookupJSON(buf, roleRefKey, msgCannotParseRef, msgExpectingRoleRef)
	if err != nil {
		return RoleRef{}, err
	}

	roleID, err := stringField(fields, "roleId", msgCannotParseRef)
	if err != nil {
		return RoleRef{}, err
	}
	if !present(roleID) {
		return RoleRef{}, missingRequired(msgExpectingRole)
	}

	tenantID, err := stringField(fields, "tenantId", msgCannotParseRef)
	if err != nil {
		return RoleRef{}, err
	}
	if !present(tenantID) {
		return RoleRef{}, missingRequired(msgExpectingTenant)
	}
	return RoleRef{RoleID: *roleID, TenantID: *tenantID}, nil
}

// Element builds the roleRef element
func (r RoleRef) Element() *Element {
	e := NewElement(Namespace, roleRefKey)
	if present(r.ID) {
		e.Set("id", *r.ID)
	}
	if r.RoleID != "" {
		e.Set("roleId", r.RoleID)
	}
	if r.TenantID != "" {
		e.Set("tenantId", r.TenantID)
	}
	return e
}

// XML renders the role ref as markup
func (r RoleRef) XML() []byte {
	return marshalXML(r.Element())
}

// Fields returns the role ref's field map under the "roleRef" key
func (r RoleRef) Fields() map[string]any {
	return map[string]any{roleRefKey: r.fields()}
}

func (r RoleRef) fields() map[string]any {
	m := map[string]any{}
	if present(r.ID) {
		m["id"] = *r.ID
	}
	if r.RoleID != "" {
		m["roleId"] = r.RoleID
	}
	if r.TenantID != "" {
		m["tenantId"] = r.TenantID
	}
	return m
}

// JSON renders the role ref as compact JSON
func (r RoleRef) JSON() []byte {
	return marshalJSON(r.Fields())
}
