package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/go-drift/drawer/pkg/drawer"
)

func init() {
	register(newResolveCommand)
}

type resolvedPoint struct {
	Index  int     `yaml:"index"`
	Point  string  `yaml:"point"`
	Y      float64 `yaml:"y"`
	Offset float64 `yaml:"offset"`
}

type resolution struct {
	Viewport  float64         `yaml:"viewport"`
	Direction string          `yaml:"direction"`
	ClosedY   float64         `yaml:"closed_y"`
	Points    []resolvedPoint `yaml:"points"`
}

func newResolveCommand(g *globals) *cobra.Command {
	var (
		df       drawerFlags
		viewport float64
		format   string
	)
	c := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resting position of every snap point",
		Long: `Resolve snap points against a viewport and print each point's Y
coordinate and translate offset.

Examples:
  drawer resolve --viewport 800 --snap 0.25,0.5,0.75,1
  drawer resolve --viewport 800 --snap 0.5,300px --direction top -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			cfg, err := df.config(c, g)
			if err != nil {
				return err
			}
			if len(cfg.SnapPoints) == 0 {
				return fmt.Errorf("no snap points: pass --snap or a preset that defines snap_points")
			}
			if viewport <= 0 {
				return fmt.Errorf("viewport must be positive, got %g", viewport)
			}
			r := resolve(cfg, viewport)
			if format == formatYAML {
				return writeYAML(c.OutOrStdout(), r)
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "viewport %spx, direction %s\n", formatPx(r.Viewport), r.Direction)
			for _, p := range r.Points {
				fmt.Fprintf(out, "  %-3d %-8s y=%-8s offset=%s\n",
					p.Index, p.Point, formatPx(p.Y)+"px", formatPx(p.Offset)+"px")
			}
			fmt.Fprintf(out, "  closed       y=%spx\n", formatPx(r.ClosedY))
			return nil
		},
	}
	df.bind(c)
	c.Flags().Float64Var(&viewport, "viewport", 800, "viewport extent along the drag axis, in px")
	c.Flags().StringVarP(&format, "output", "o", formatText, "output format: text or yaml")
	return c
}

func resolve(cfg drawer.Config, viewport float64) resolution {
	g := drawer.Geometry{Points: cfg.SnapPoints, Viewport: viewport, Direction: cfg.Direction}
	r := resolution{
		Viewport:  viewport,
		Direction: cfg.Direction.String(),
		ClosedY:   g.ClosedY(),
	}
	for i, p := range cfg.SnapPoints {
		y := g.SnapY(i)
		r.Points = append(r.Points, resolvedPoint{Index: i, Point: p.String(), Y: y, Offset: g.Offset(y)})
	}
	return r
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
