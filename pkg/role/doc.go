// Package role converts identity API Role and RoleRef resources between
// in-memory records and their XML and JSON wire forms.
//
// # Overview
//
// The role package provides:
//   - Role and RoleRef records with explicit optional fields
//   - Roles and RoleRefs collections carrying opaque navigation links
//   - Validating decoders for both encodings
//   - Renderers that omit absent fields
//   - Content-type dispatch for callers that negotiate the encoding
//
// Every XML element lives in the http://docs.openstack.org/identity/api/v2.0
// namespace. JSON documents wrap their fields under a fixed key:
//
//	<role xmlns="http://docs.openstack.org/identity/api/v2.0" id="admin" description="administrator"/>
//	{"role": {"id": "admin", "description": "Administrator"}}
//
//	<roleRef xmlns="http://docs.openstack.org/identity/api/v2.0" id="7" roleId="admin" tenantId="acme"/>
//	{"roleRef": {"id": "7", "roleId": "admin", "tenantId": "acme"}}
//
// # Basic Usage
//
//	import "github.com/tendant/simple-idm-types/pkg/role"
//
//	r, err := role.ParseRoleJSON(body)
//	if err != nil {
//		// err is a bad request fault from pkg/errors
//		return err
//	}
//	out := r.XML()
//
//	// Or let the media type pick the encoding
//	ref, err := role.ParseRoleRef(r.Header.Get("Content-Type"), body)
//	out, err := role.MarshalRoleRef("application/xml", ref)
//
// # Validation
//
// Decoding is all-or-nothing and stops at the first failure:
//   - unparseable input or a wrong JSON shape: MALFORMED_INPUT, "Cannot parse Role" / "Cannot parse RoleRef"
//   - missing root element or wrapper key: MISSING_ELEMENT, "Expecting Role" / "Expecting RoleRef"
//   - role id missing, empty or null: MISSING_REQUIRED, "Expecting Role"
//   - tenant id missing, empty or null: MISSING_REQUIRED, "Expecting Tenant"
//
// A RoleRef's roleId is checked before its tenantId. A RoleRef's own id is
// never read from input.
//
// # Rendering
//
// Absent or empty optional fields are left out of the output. A role's
// description is lowercased in XML and passed through unchanged in JSON, so
// an XML round trip loses the description's case.
//
// # Collections
//
//	roles := role.Roles{
//		Values: []role.Role{{ID: "admin"}},
//		Links:  []role.Link{role.AtomLink{Rel: "next", Href: "/roles?marker=admin"}},
//	}
//	out, err := roles.JSON()
//	// {"roles":{"links":[{"href":"/roles?marker=admin","rel":"next"}],"values":[{"id":"admin"}]}}
//
// Links are any value implementing Link; the collection emits their elements
// after the values in XML and their "links" field maps in JSON.
package role
