package profile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"scanrunner/pkg/domain"
	"strings"
	"text/template"
)

// Extension is the file extension of materialized profiles.
const Extension = ".pw3af"

// FileMaterializer renders profile bodies with text/template.
type FileMaterializer struct{}

// Materialize renders profile into <dir>/<profile name>.pw3af.
func (FileMaterializer) Materialize(_ context.Context, profile domain.ScanProfile, data TemplateData, dir string) (string, error) {
	tpl, err := template.New(profile.Name).Option("missingkey=error").Parse(profile.Body)
	if err != nil {
		return "", fmt.Errorf("could not parse profile template: %w", err)
	}

	path := filepath.Join(dir, fileName(profile)+Extension)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", fmt.Errorf("could not create profile file: %w", err)
	}

	if err := tpl.Execute(f, data); err != nil {
		_ = f.Close()

		return "", fmt.Errorf("could not render profile template: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not write profile file: %w", err)
	}

	return path, nil
}

func fileName(profile domain.ScanProfile) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, profile.Name)
	if name == "" {
		return fmt.Sprintf("profile-%d", profile.ID)
	}

	return name
}
