package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/drawer/pkg/config"
	"github.com/go-drift/drawer/pkg/dom"
	"github.com/go-drift/drawer/pkg/drawer"
)

// drawerFlags are the configuration flags shared by subcommands. Flags that
// are set override the selected preset.
type drawerFlags struct {
	preset     string
	snap       string
	direction  string
	fadeFrom   int
	sequential bool
	// defaultSnap applies when neither a preset nor --snap gives points.
	defaultSnap string
}

func (f *drawerFlags) bind(c *cobra.Command) {
	flags := c.Flags()
	flags.StringVarP(&f.preset, "preset", "p", "", "preset from drawer.yaml")
	flags.StringVar(&f.snap, "snap", "", "comma separated snap points, e.g. 0.25,300px,1")
	flags.StringVar(&f.direction, "direction", "", "anchored edge: bottom or top")
	flags.IntVar(&f.fadeFrom, "fade-from", 0, "snap index where the overlay starts fading in")
	flags.BoolVar(&f.sequential, "sequential", false, "never skip snap points on fast releases")
}

// config resolves the preset and applies the flags that were set.
func (f *drawerFlags) config(c *cobra.Command, g *globals) (drawer.Config, error) {
	cfg, err := f.base(g)
	if err != nil {
		return drawer.Config{}, err
	}
	flags := c.Flags()
	snap := f.snap
	if !flags.Changed("snap") && len(cfg.SnapPoints) == 0 {
		snap = f.defaultSnap
	}
	if flags.Changed("snap") || snap != "" {
		points, err := drawer.ParseSnapPoints(snap)
		if err != nil {
			return drawer.Config{}, err
		}
		cfg.SnapPoints = points
	}
	if flags.Changed("direction") {
		dir, err := drawer.ParseDirection(f.direction)
		if err != nil {
			return drawer.Config{}, err
		}
		cfg.Direction = dir
	}
	if flags.Changed("fade-from") {
		cfg.FadeFromIndex = f.fadeFrom
	}
	if flags.Changed("sequential") {
		cfg.SnapToSequentialPoint = f.sequential
	}
	return cfg, nil
}

func (f *drawerFlags) base(g *globals) (drawer.Config, error) {
	dir := g.configDir
	if dir == "" {
		if root, err := config.FindProjectRoot(); err == nil {
			dir = root
		}
	}
	if dir == "" {
		if f.preset != "" {
			return drawer.Config{}, fmt.Errorf("preset %q: no project root or --config directory", f.preset)
		}
		return drawer.DefaultConfig(), nil
	}
	resolved, err := config.Resolve(dir)
	if err != nil {
		return drawer.Config{}, err
	}
	g.log().Debug("resolved configuration")
	return resolved.Preset(f.preset)
}

// page is an in-memory document holding one drawer.
type page struct {
	win     *dom.Window
	targets drawer.Targets
	drawer  *drawer.Drawer
}

func newPage(width, viewport float64, cfg drawer.Config, opts ...drawer.Option) (*page, error) {
	if viewport <= 0 || width <= 0 {
		return nil, fmt.Errorf("viewport must be positive, got %gx%g", width, viewport)
	}
	win := dom.NewWindow(width, viewport)
	container := dom.NewElement("div", "data-controller", config.DefaultIdentifier).Append(
		dom.NewElement("div", drawer.TargetAttribute, "overlay"),
		dom.NewElement("div", drawer.TargetAttribute, "content"),
	)
	win.Document.Body.AppendChild(container)

	targets := drawer.FindTargets(container)
	d, err := drawer.New(win, targets, cfg, opts...)
	if err != nil {
		return nil, err
	}
	d.Connect()
	return &page{win: win, targets: targets, drawer: d}, nil
}

// openAt opens the drawer at rest on index. Out of range indices are
// clamped by the drawer.
func (p *page) openAt(index int) {
	p.drawer.SnapTo(index, false)
	p.drawer.Open()
}

const (
	formatText = "text"
	formatYAML = "yaml"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatYAML)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
