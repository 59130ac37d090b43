package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/drawer"
	"github.com/go-drift/drawer/pkg/errors"
)

// DefaultIdentifier is the controller identifier used in data attributes.
const DefaultIdentifier = "drawer"

type valueAttribute struct {
	name     string
	dataType string
	field    func(p *Preset) any
}

// valueAttributes lists the declarative values an element may carry as
// data-<identifier>-<name>-value.
var valueAttributes = []valueAttribute{
	{"direction", "string", func(p *Preset) any { return &p.Direction }},
	{"snap-points", "array", func(p *Preset) any { return &p.SnapPoints }},
	{"fade-from-index", "number", func(p *Preset) any { return &p.FadeFromIndex }},
	{"snap-to-sequential-point", "boolean", func(p *Preset) any { return &p.SnapToSequentialPoint }},
	{"open", "boolean", func(p *Preset) any { return &p.Open }},
	{"initial-snap-index", "number", func(p *Preset) any { return &p.InitialSnapIndex }},
	{"dismissible", "boolean", func(p *Preset) any { return &p.Dismissible }},
	{"close-threshold", "number", func(p *Preset) any { return &p.CloseThreshold }},
	{"duration", "string", func(p *Preset) any { return &p.Duration }},
	{"curve", "string", func(p *Preset) any { return &p.Curve }},
}

// AttributeName returns the data attribute carrying value name.
func AttributeName(identifier, name string) string {
	return fmt.Sprintf("data-%s-%s-value", identifier, name)
}

// PresetFromElement reads the value attributes present on n. Values are
// decoded as YAML flow scalars, so both `[0.5, "300px", 1]` and `true` work.
func PresetFromElement(n *dom.Node, identifier string) (Preset, error) {
	if identifier == "" {
		identifier = DefaultIdentifier
	}
	var p Preset
	for _, a := range valueAttributes {
		attr := AttributeName(identifier, a.name)
		raw, ok := n.Attribute(attr)
		if !ok {
			continue
		}
		if err := yaml.Unmarshal([]byte(raw), a.field(&p)); err != nil {
			return Preset{}, fmt.Errorf("%w: %v", &errors.ParseError{
				Attribute: attr,
				DataType:  a.dataType,
				Got:       raw,
			}, err)
		}
	}
	return p, nil
}

// FromElement builds a drawer configuration from n's value attributes on
// top of base.
func FromElement(n *dom.Node, identifier string, base drawer.Config) (drawer.Config, error) {
	p, err := PresetFromElement(n, identifier)
	if err != nil {
		return base, err
	}
	return p.Apply(base)
}
