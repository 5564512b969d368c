package role

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tendant/simple-idm-types/pkg/errors"
)

// Namespace is the identity API namespace every role element lives in
const Namespace = "http://docs.openstack.org/identity/api/v2.0"

// Wrapper keys and element names
const (
	roleKey     = "role"
	rolesKey    = "roles"
	roleRefKey  = "roleRef"
	roleRefsKey = "roleRefs"
	linksKey    = "links"
	valuesKey   = "values"
)

// Category messages carried by bad request faults
const (
	msgExpectingRole    = "Expecting Role"
	msgExpectingRoleRef = "Expecting RoleRef"
	msgExpectingTenant  = "Expecting Tenant"
	msgCannotParseRole  = "Cannot parse Role"
	msgCannotParseRef   = "Cannot parse RoleRef"
)

func malformed(message string, err error) error {
	return errors.BadRequest(errors.ErrCodeMalformedInput, message, err.Error())
}

func missingElement(message string) error {
	return errors.BadRequest(errors.ErrCodeMissingElement, message, "")
}

func missingRequired(message string) error {
	return errors.BadRequest(errors.ErrCodeMissingRequired, message, "")
}

// present reports whether an optional value is set and non-empty
func present(s *string) bool {
	return s != nil && *s != ""
}

// lookupXML decodes buf and checks that its root element is local in the
// identity namespace. Syntax errors are reported under parseMsg, any other
// root under missingMsg.
func lookupXML(buf []byte, local, parseMsg, missingMsg string) (*Element, error) {
	root, err := decodeDocument(buf)
	if err != nil {
		return nil, malformed(parseMsg, err)
	}
	if root.Name.Space != Namespace || root.Name.Local != local {
		return nil, missingElement(missingMsg)
	}
	return root, nil
}

// attr returns an attribute value, or nil when it is absent
func attr(e *Element, name string) *string {
	v, ok := e.Get(name)
	if !ok {
		return nil
	}
	return &v
}

// lookupJSON decodes buf and returns the object stored under the wrapper key.
func lookupJSON(buf []byte, key, parseMsg, missingMsg string) (map[string]any, error) {
	if len(bytes.TrimSpace(buf)) == 0 {
		return nil, malformed(parseMsg, fmt.Errorf("unexpected end of JSON input"))
	}
	var doc any
	if err := json.Unmarshal(buf, &doc); err != nil {
		return nil, malformed(parseMsg, err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, malformed(parseMsg, fmt.Errorf("expected a JSON object, got %s", kindOf(doc)))
	}
	wrapped, ok := obj[key]
	if !ok {
		return nil, missingElement(missingMsg)
	}
	fields, ok := wrapped.(map[string]any)
	if !ok {
		return nil, malformed(parseMsg, fmt.Errorf("%q must be an object, got %s", key, kindOf(wrapped)))
	}
	return fields, nil
}

// stringField returns the string under key, or nil when the key is absent or
// null. Any other JSON type is malformed input.
func stringField(fields map[string]any, key, parseMsg string) (*string, error) {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, malformed(parseMsg, fmt.Errorf("%q must be a string, got %s", key, kindOf(v)))
	}
	return &s, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	default:
		return strings.TrimPrefix(fmt.Sprintf("%T", v), "*")
	}
}

// marshalJSON encodes a field map compactly without HTML escaping. Maps of
// strings cannot fail to encode.
func marshalJSON(v map[string]any) []byte {
	b, _ := json.MarshalNoEscape(v)
	return b
}

// marshalXML serializes an element built from fixed names and string
// attributes, which cannot fail to encode.
func marshalXML(e *Element) []byte {
	b, _ := e.Bytes()
	return b
}
