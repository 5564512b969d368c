// Package main converts Role and RoleRef documents between the XML and JSON
// encodings of the identity API, validating them on the way.
//
// Usage:
//
//	roleconv -kind roleRef -from application/json -to application/xml -in ref.json
//	echo '{"role":{"id":"admin"}}' | roleconv -to application/xml
//
// Defaults for every flag can be set through ROLECONV_* environment variables.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/simple-idm-types/pkg/errors"
	"github.com/tendant/simple-idm-types/pkg/role"
)

const (
	kindRole    = "role"
	kindRoleRef = "roleRef"
)

type ConvertConfig struct {
	Kind     string `env:"ROLECONV_KIND" env-default:"role"`
	From     string `env:"ROLECONV_FROM" env-default:"application/json"`
	To       string `env:"ROLECONV_TO" env-default:"application/json"`
	LogLevel string `env:"ROLECONV_LOG_LEVEL" env-default:"info"`
}

type Config struct {
	ConvertConfig ConvertConfig
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// Load defaults from environment variables
	config := Config{}
	if err := cleanenv.ReadEnv(&config); err != nil {
		fmt.Fprintf(stderr, "Error: failed to read environment: %v\n", err)
		return 1
	}
	cc := config.ConvertConfig

	fs := flag.NewFlagSet("roleconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", cc.Kind, "Resource kind: role or roleRef")
	from := fs.String("from", cc.From, "Media type of the input document")
	to := fs.String("to", cc.To, "Media type of the output document")
	in := fs.String("in", "", "Input file (default stdin)")
	assignID := fs.Bool("assign-id", false, "Assign a new id to a roleRef")
	logLevel := fs.String("log-level", cc.LogLevel, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLevel(*logLevel),
	}))
	slog.SetDefault(logger)

	if *kind != kindRole && *kind != kindRoleRef {
		fmt.Fprintf(stderr, "Error: kind must be %q or %q\n", kindRole, kindRoleRef)
		fs.Usage()
		return 2
	}
	if *assignID && *kind != kindRoleRef {
		fmt.Fprintln(stderr, "Error: -assign-id only applies to roleRef")
		return 2
	}

	input, err := readInput(*in, stdin)
	if err != nil {
		slog.Error("Failed to read input", "in", *in, "err", err)
		return 1
	}

	var out []byte
	switch *kind {
	case kindRole:
		out, err = convertRole(input, *from, *to)
	case kindRoleRef:
		out, err = convertRoleRef(input, *from, *to, *assignID)
	}
	if err != nil {
		slog.Error("Failed to convert document",
			"kind", *kind,
			"code", errors.GetCode(err),
			"message", errors.GetMessage(err),
			"detail", errors.Detail(err),
		)
		return 1
	}

	if _, err := stdout.Write(append(out, '\n')); err != nil {
		slog.Error("Failed to write output", "err", err)
		return 1
	}
	return 0
}

func convertRole(input []byte, from, to string) ([]byte, error) {
	r, err := role.ParseRole(from, input)
	if err != nil {
		return nil, err
	}
	slog.Debug("Parsed role", "id", r.ID, "has_description", r.Description != nil)
	return role.MarshalRole(to, r)
}

func convertRoleRef(input []byte, from, to string, assignID bool) ([]byte, error) {
	ref, err := role.ParseRoleRef(from, input)
	if err != nil {
		return nil, err
	}
	if assignID {
		id := uuid.NewString()
		ref.ID = &id
		slog.Info("Assigned role ref id", "id", id, "role_id", ref.RoleID, "tenant_id", ref.TenantID)
	}
	slog.Debug("Parsed role ref", "role_id", ref.RoleID, "tenant_id", ref.TenantID)
	return role.MarshalRoleRef(to, ref)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
