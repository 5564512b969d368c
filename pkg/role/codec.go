package role

import (
	"fmt"

	"github.com/go-chi/render"
	"github.com/tendant/simple-idm-types/pkg/errors"
)

// Media types accepted by the content-type dispatchers. "text/xml" is
// accepted as an alias of ContentTypeXML.
const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// format resolves a media type (parameters such as charset are ignored) to
// one of the two supported encodings.
func format(contentType string) (render.ContentType, error) {
	switch ct := render.GetContentType(contentType); ct {
	case render.ContentTypeJSON, render.ContentTypeXML:
		return ct, nil
	}
	return render.ContentTypeUnknown, errors.InvalidInput("content type", fmt.Sprintf("unsupported media type %q", contentType))
}

// ParseRole decodes a role in the encoding named by contentType
func ParseRole(contentType string, buf []byte) (Role, error) {
	ct, err := format(contentType)
	if err != nil {
		return Role{}, err
	}
	if ct == render.ContentTypeXML {
		return ParseRoleXML(buf)
	}
	return ParseRoleJSON(buf)
}

// ParseRoleRef decodes a role ref in the encoding named by contentType
func ParseRoleRef(contentType string, buf []byte) (RoleRef, error) {
	ct, err := format(contentType)
	if err != nil {
		return RoleRef{}, err
	}
	if ct == render.ContentTypeXML {
		return ParseRoleRefXML(buf)
	}
	return ParseRoleRefJSON(buf)
}

// MarshalRole renders a role in the encoding named by contentType
func MarshalRole(contentType string, r Role) ([]byte, error) {
	ct, err := format(contentType)
	if err != nil {
		return nil, err
	}
	if ct == render.ContentTypeXML {
		return r.XML(), nil
	}
	return r.JSON(), nil
}

// MarshalRoleRef renders a role ref in the encoding named by contentType
func MarshalRoleRef(contentType string, r RoleRef) ([]byte, error) {
	ct, err := format(contentType)
	if err != nil {
		return nil, err
	}
	if ct == render.ContentTypeXML {
		return r.XML(), nil
	}
	return r.JSON(), nil
}

// MarshalRoles renders a roles collection in the encoding named by contentType
func MarshalRoles(contentType string, c Roles) ([]byte, error) {
	ct, err := format(contentType)
	if err != nil {
		return nil, err
	}
	if ct == render.ContentTypeXML {
		return c.XML()
	}
	return c.JSON()
}

// MarshalRoleRefs renders a role refs collection in the encoding named by
// contentType
func MarshalRoleRefs(contentType string, c RoleRefs) ([]byte, error) {
	ct, err := format(contentType)
	if err != nil {
		return nil, err
	}
	if ct == render.ContentTypeXML {
		return c.XML()
	}
	return c.JSON()
}
