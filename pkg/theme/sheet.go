package theme

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/squircle/pkg/errors"
)

// StyleSheet is a named collection of styles loaded from a YAML resource.
type StyleSheet struct {
	Styles map[string]Style `yaml:"styles"`
}

// Load reads a style sheet from the given reader.
func Load(r io.Reader) (*StyleSheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.E("theme.Load", errors.KindStyle, err)
	}

	var sheet StyleSheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, errors.E("theme.Load", errors.KindStyle,
			fmt.Errorf("failed to parse style sheet: %w", err))
	}

	for name, style := range sheet.Styles {
		if err := style.validate(); err != nil {
			return nil, errors.E("theme.Load", errors.KindStyle,
				fmt.Errorf("style %q: %w", name, err))
		}
	}
	return &sheet, nil
}

// LoadFile reads a style sheet from a YAML file.
func LoadFile(path string) (*StyleSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E("theme.LoadFile", errors.KindStyle, err)
	}
	defer f.Close()
	return Load(f)
}

// Style returns the named style, falling back to Default when absent.
func (s *StyleSheet) Style(name string) Style {
	if s == nil {
		return Default()
	}
	if style, ok := s.Styles[name]; ok {
		return style
	}
	return Default()
}
