package confloader

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
)

// ErrMarshalNotSupported is returned by the line parsers, which are read-only.
var ErrMarshalNotSupported = errors.New("confloader: line parsers cannot marshal")

// FirstLineParser reads the first non-empty line of a file into key.
// It implements koanf.Parser.
type FirstLineParser struct {
	Key string
}

// Unmarshal implements koanf.Parser.
func (p FirstLineParser) Unmarshal(b []byte) (map[string]any, error) {
	line := firstLine(b)
	if line == "" {
		return map[string]any{}, nil
	}
	return maps.Unflatten(map[string]any{p.Key: line}, "."), nil
}

// Marshal implements koanf.Parser.
func (p FirstLineParser) Marshal(map[string]any) ([]byte, error) {
	return nil, ErrMarshalNotSupported
}

// CredentialsParser reads a "user:base64(password)" line into UserKey and
// PasswordKey. It implements koanf.Parser.
type CredentialsParser struct {
	UserKey     string
	PasswordKey string
}

// Unmarshal implements koanf.Parser.
func (p CredentialsParser) Unmarshal(b []byte) (map[string]any, error) {
	line := firstLine(b)
	if line == "" {
		return map[string]any{}, nil
	}

	user, encoded, ok := strings.Cut(line, ":")
	if !ok || user == "" {
		return nil, fmt.Errorf("malformed credentials line: want user:base64(password)")
	}
	password, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode password: %w", err)
	}

	return maps.Unflatten(map[string]any{
		p.UserKey:     user,
		p.PasswordKey: string(password),
	}, "."), nil
}

// Marshal implements koanf.Parser.
func (p CredentialsParser) Marshal(map[string]any) ([]byte, error) {
	return nil, ErrMarshalNotSupported
}

func firstLine(b []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			return line
		}
	}
	return ""
}
