// Package config resolves drawer configuration from declarative sources:
// data attributes on an element and an optional drawer.yaml preset file in
// the project root.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/drawer/pkg/drawer"
)

// FileName is the preset file looked up in the project root.
const FileName = "drawer.yaml"

// File represents the optional drawer.yaml configuration.
type File struct {
	Namespace  string            `yaml:"namespace,omitempty"`
	Identifier string            `yaml:"identifier,omitempty"`
	Default    string            `yaml:"default,omitempty"`
	Presets    map[string]Preset `yaml:"presets,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Namespace  string
	Identifier string
	Default    string
	Presets    map[string]drawer.Config
}

// LoadOptional reads drawer.yaml if present.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &f, nil
}

// Resolve loads drawer.yaml (if present) and resolves defaults. Directories
// outside a Go module get a namespace from the directory name.
func Resolve(dir string) (*Resolved, error) {
	modPath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	f, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	namespace := strings.TrimSpace(f.Namespace)
	if namespace == "" {
		namespace = defaultNamespace(modPath, dir)
	}
	identifier := strings.TrimSpace(f.Identifier)
	if identifier == "" {
		identifier = DefaultIdentifier
	}

	presets := make(map[string]drawer.Config, len(f.Presets))
	for name, p := range f.Presets {
		cfg, err := p.Apply(drawer.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		presets[name] = cfg
	}

	def := strings.TrimSpace(f.Default)
	if def != "" {
		if _, ok := presets[def]; !ok {
			return nil, fmt.Errorf("default preset %q is not defined", def)
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modPath,
		Namespace:  namespace,
		Identifier: identifier,
		Default:    def,
		Presets:    presets,
	}, nil
}

// Preset returns the named preset, the default preset when name is empty,
// or the default configuration when neither exists.
func (r *Resolved) Preset(name string) (drawer.Config, error) {
	if name == "" {
		name = r.Default
	}
	if name == "" {
		return drawer.DefaultConfig(), nil
	}
	cfg, ok := r.Presets[name]
	if !ok {
		return drawer.Config{}, fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(r.PresetNames(), ", "))
	}
	return cfg, nil
}

// PresetNames returns the preset names in sorted order.
func (r *Resolved) PresetNames() []string {
	names := make([]string, 0, len(r.Presets))
	for name := range r.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindProjectRootFrom(dir)
}

// FindProjectRootFrom walks up from dir to find go.mod.
func FindProjectRootFrom(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultNamespace is the last module path element without its major
// version suffix, or the directory name outside a module.
func defaultNamespace(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		prefix, _, ok := module.SplitPathVersion(modulePath)
		if ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	base = sanitize(base)
	if base == "" {
		return DefaultIdentifier
	}
	return base
}

func sanitize(segment string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(segment)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '_' || r == '.':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
