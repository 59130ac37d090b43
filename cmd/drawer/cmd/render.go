package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/drawer/internal/render"
)

func init() {
	register(newRenderCommand)
}

func newRenderCommand(g *globals) *cobra.Command {
	var (
		df         drawerFlags
		viewport   float64
		width      float64
		index      int
		scale      float64
		out        string
		hideGuides bool
	)
	c := &cobra.Command{
		Use:   "render",
		Short: "Render a drawer at rest to PNG",
		Long: `Render the drawer resting at snap point --index, with its overlay and
dashed guides at every snap point, to a PNG file. Use --out - to write the
image to stdout.

Examples:
  drawer render --viewport 800 --width 400 --snap 0.25,0.5,0.75,1 --index 1 --out frame.png
  drawer render --preset sheet --scale 2 --out - > frame.png`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := df.config(c, g)
			if err != nil {
				return err
			}
			p, err := newPage(width, viewport, cfg)
			if err != nil {
				return err
			}
			defer p.drawer.Disconnect()
			p.openAt(index)

			img := render.Draw(render.SceneOf(p.drawer, width), render.Options{
				Scale:      scale,
				HideGuides: hideGuides,
			})

			var w io.Writer = c.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := render.WritePNG(w, img); err != nil {
				return fmt.Errorf("encode png: %w", err)
			}
			g.log().Info("rendered frame",
				zap.String("out", out),
				zap.Int("index", p.drawer.ActiveSnapPointIndex()),
				zap.Int("width", img.Bounds().Dx()),
				zap.Int("height", img.Bounds().Dy()))
			if out != "-" {
				fmt.Fprintf(c.ErrOrStderr(), "wrote %s (%dx%d)\n", out, img.Bounds().Dx(), img.Bounds().Dy())
			}
			return nil
		},
	}
	df.bind(c)
	df.defaultSnap = "0.25,0.5,0.75,1"
	flags := c.Flags()
	flags.Float64Var(&viewport, "viewport", 800, "viewport height in px")
	flags.Float64Var(&width, "width", 400, "viewport width in px")
	flags.IntVar(&index, "index", 0, "snap index to rest at")
	flags.Float64Var(&scale, "scale", 1, "device pixels per px")
	flags.StringVar(&out, "out", "drawer.png", "output file, or - for stdout")
	flags.BoolVar(&hideGuides, "no-guides", false, "omit snap point guides")
	return c
}
