package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/drawer"
)

// SnapValue is a snap point as written in YAML: a bare number is a fraction
// of the viewport, a "px" string an absolute length.
type SnapValue struct {
	drawer.SnapPoint
}

// UnmarshalYAML decodes scalars such as 0.5, "0.5" or "300px".
func (s *SnapValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: snap point must be a scalar", node.Line)
	}
	p, err := drawer.ParseSnapPoint(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	s.SnapPoint = p
	return nil
}

// MarshalYAML encodes fractions as numbers and lengths as strings.
func (s SnapValue) MarshalYAML() (any, error) {
	if s.Pixels {
		return s.String(), nil
	}
	return s.Value, nil
}

// Preset is a partial drawer configuration. Unset fields leave the base
// configuration unchanged when applied.
type Preset struct {
	Direction             string      `yaml:"direction,omitempty"`
	SnapPoints            []SnapValue `yaml:"snap_points,omitempty"`
	FadeFromIndex         *int        `yaml:"fade_from_index,omitempty"`
	SnapToSequentialPoint *bool       `yaml:"snap_to_sequential_point,omitempty"`
	Open                  *bool       `yaml:"open,omitempty"`
	InitialSnapIndex      *int        `yaml:"initial_snap_index,omitempty"`
	Dismissible           *bool       `yaml:"dismissible,omitempty"`
	CloseThreshold        *float64    `yaml:"close_threshold,omitempty"`
	Duration              string      `yaml:"duration,omitempty"`
	Curve                 string      `yaml:"curve,omitempty"`
}

// Apply overlays the preset's set fields on base.
func (p Preset) Apply(base drawer.Config) (drawer.Config, error) {
	cfg := base
	if strings.TrimSpace(p.Direction) != "" {
		dir, err := drawer.ParseDirection(p.Direction)
		if err != nil {
			return base, err
		}
		cfg.Direction = dir
	}
	if p.SnapPoints != nil {
		cfg.SnapPoints = make([]drawer.SnapPoint, len(p.SnapPoints))
		for i, s := range p.SnapPoints {
			cfg.SnapPoints[i] = s.SnapPoint
		}
	}
	if p.FadeFromIndex != nil {
		cfg.FadeFromIndex = *p.FadeFromIndex
	}
	if p.SnapToSequentialPoint != nil {
		cfg.SnapToSequentialPoint = *p.SnapToSequentialPoint
	}
	if p.Open != nil {
		cfg.Open = *p.Open
	}
	if p.InitialSnapIndex != nil {
		cfg.InitialSnapIndex = *p.InitialSnapIndex
	}
	if p.Dismissible != nil {
		cfg.DisableDismiss = !*p.Dismissible
	}
	if p.CloseThreshold != nil {
		cfg.CloseThreshold = *p.CloseThreshold
	}
	if d := strings.TrimSpace(p.Duration); d != "" {
		dur, err := time.ParseDuration(d)
		if err != nil {
			return base, fmt.Errorf("duration %q: %w", d, err)
		}
		cfg.TransitionDuration = dur
	}
	if c := strings.TrimSpace(p.Curve); c != "" {
		curve, err := animation.ParseBezier(c)
		if err != nil {
			return base, err
		}
		cfg.Curve = curve
	}
	return cfg, nil
}
