package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-idm-types/pkg/role"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunRoleJSONToXML(t *testing.T) {
	code, out, _ := runWith(t, `{"role":{"id":"admin","description":"Administrator"}}`,
		"-from", "application/json", "-to", "application/xml")
	require.Equal(t, 0, code)

	r, err := role.ParseRoleXML([]byte(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Equal(t, "admin", r.ID)
	require.NotNil(t, r.Description)
	assert.Equal(t, "administrator", *r.Description)
}

func TestRunRoleRefXMLToJSON(t *testing.T) {
	code, out, _ := runWith(t, `<roleRef xmlns="http://docs.openstack.org/identity/api/v2.0" roleId="admin" tenantId="acme"/>`,
		"-kind", "roleRef", "-from", "application/xml", "-to", "application/json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"roleRef":{"roleId":"admin","tenantId":"acme"}}`, out)
}

func TestRunAssignID(t *testing.T) {
	code, out, _ := runWith(t, `{"roleRef":{"roleId":"admin","tenantId":"acme"}}`,
		"-kind", "roleRef", "-assign-id")
	require.Equal(t, 0, code)

	// the id is output-only, so read it from the element
	code, xmlOut, _ := runWith(t, out, "-kind", "roleRef", "-to", "application/xml")
	require.Equal(t, 0, code)
	assert.NotContains(t, xmlOut, ` id="`)

	assert.Contains(t, out, `"id":"`)
	start := strings.Index(out, `"id":"`) + len(`"id":"`)
	_, err := uuid.Parse(out[start : start+36])
	assert.NoError(t, err)
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "role.xml")
	require.NoError(t, os.WriteFile(path, []byte(`<role xmlns="http://docs.openstack.org/identity/api/v2.0" id="member"/>`), 0o600))

	code, out, _ := runWith(t, "", "-from", "text/xml", "-in", path)
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"role":{"id":"member"}}`, out)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		args     []string
		wantCode int
		wantLog  string
	}{
		{
			name:     "missing tenant",
			stdin:    `{"roleRef":{"roleId":"admin"}}`,
			args:     []string{"-kind", "roleRef"},
			wantCode: 1,
			wantLog:  "Expecting Tenant",
		},
		{
			name:     "malformed input",
			stdin:    `{"role":`,
			wantCode: 1,
			wantLog:  "MALFORMED_INPUT",
		},
		{
			name:     "unsupported media type",
			stdin:    `{"role":{"id":"admin"}}`,
			args:     []string{"-to", "text/plain"},
			wantCode: 1,
			wantLog:  "INVALID_INPUT",
		},
		{
			name:     "unknown kind",
			args:     []string{"-kind", "tenant"},
			wantCode: 2,
			wantLog:  "kind must be",
		},
		{
			name:     "assign id on role",
			args:     []string{"-assign-id"},
			wantCode: 2,
			wantLog:  "-assign-id only applies to roleRef",
		},
		{
			name:     "missing file",
			args:     []string{"-in", filepath.Join(os.TempDir(), "does-not-exist", "role.json")},
			wantCode: 1,
			wantLog:  "Failed to read input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, logs := runWith(t, tt.stdin, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Empty(t, out)
			assert.Contains(t, logs, tt.wantLog)
		})
	}
}

func TestRunEnvironmentDefaults(t *testing.T) {
	t.Setenv("ROLECONV_KIND", "roleRef")
	t.Setenv("ROLECONV_TO", "application/xml")

	code, out, _ := runWith(t, `{"roleRef":{"roleId":"admin","tenantId":"acme"}}`)
	require.Equal(t, 0, code)

	ref, err := role.ParseRoleRefXML([]byte(strings.TrimSpace(out)))
	require.NoError(t, err)
	assert.Equal(t, role.RoleRef{RoleID: "admin", TenantID: "acme"}, ref)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("Warning").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("").String())
}
