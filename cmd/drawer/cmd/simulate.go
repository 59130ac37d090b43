package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/drawer/pkg/animation"
	"github.com/go-drift/drawer/pkg/drawer"
	drifttest "github.com/go-drift/drawer/pkg/testing"
)

func init() {
	register(newSimulateCommand)
}

// flickSamples is how many constant-speed moves end a simulated drag. The
// velocity estimate converges to within 0.8^flickSamples of the target.
const flickSamples = 60

// slowLeadIn is the lead-in duration when the lead-in cannot move at the
// requested speed. Its contribution to the estimate is then negligible.
const slowLeadIn = 10 * time.Second

type simulation struct {
	From      int     `yaml:"from"`
	StartY    float64 `yaml:"start_y"`
	PointerY  float64 `yaml:"pointer_y"`
	FinalY    float64 `yaml:"final_y"`
	Velocity  float64 `yaml:"velocity"`
	Target    int     `yaml:"target_index"`
	Closed    bool    `yaml:"closed"`
	Open      bool    `yaml:"open"`
	Index     int     `yaml:"index"`
	Transform string  `yaml:"transform"`
	Opacity   string  `yaml:"overlay_opacity"`
}

// releaseRecorder keeps the last release a drawer reported.
type releaseRecorder struct {
	drawer.NopObserver
	last *drawer.Release
}

func (r *releaseRecorder) OnDragEnd(rel drawer.Release) { r.last = &rel }

func newSimulateCommand(g *globals) *cobra.Command {
	var (
		df       drawerFlags
		viewport float64
		from     int
		toY      float64
		velocity float64
		format   string
	)
	c := &cobra.Command{
		Use:   "simulate",
		Short: "Run a drag and release against an in-memory page",
		Long: `Open a drawer at snap point --from, drag the pointer from that point's
position to --to-y and release it moving at --velocity px/ms. Negative
velocities move toward open, positive toward closed, for either direction.

The resulting snap index, open state and rendered transform are printed
once every transition has finished. The printed velocity is the drawer's
own smoothed estimate at release, rounded to four decimals.

Examples:
  drawer simulate --viewport 800 --snap 0.25,0.5,0.75,1 --from 1 --to-y 250 --velocity 0.1
  drawer simulate --snap 0.25,0.5,1 --from 0 --to-y 700 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if math.IsNaN(toY) || math.IsInf(toY, 0) || math.IsNaN(velocity) || math.IsInf(velocity, 0) {
				return fmt.Errorf("--to-y and --velocity must be finite")
			}
			cfg, err := df.config(c, g)
			if err != nil {
				return err
			}
			obs, stop, err := g.observer(c.Context())
			if err != nil {
				return err
			}
			defer stop()

			res, err := simulate(cfg, viewport, from, toY, velocity, obs)
			if err != nil {
				return err
			}
			if format == formatYAML {
				return writeYAML(c.OutOrStdout(), res)
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "drag      %s -> %s px from index %d\n", formatPx(res.StartY), formatPx(res.PointerY), res.From)
			fmt.Fprintf(out, "release   y=%spx velocity=%s px/ms\n", formatPx(res.FinalY), formatPx(res.Velocity))
			if res.Closed {
				fmt.Fprintln(out, "result    closed")
			} else {
				fmt.Fprintf(out, "result    index %d\n", res.Target)
			}
			fmt.Fprintf(out, "open      %t\n", res.Open)
			fmt.Fprintf(out, "transform %s\n", res.Transform)
			fmt.Fprintf(out, "overlay   %s\n", res.Opacity)
			return nil
		},
	}
	df.bind(c)
	df.defaultSnap = "0.25,0.5,0.75,1"
	flags := c.Flags()
	flags.Float64Var(&viewport, "viewport", 800, "viewport extent along the drag axis, in px")
	flags.IntVar(&from, "from", 0, "snap index the drag starts at")
	flags.Float64Var(&toY, "to-y", 0, "pointer Y at release, in px")
	flags.Float64Var(&velocity, "velocity", 0, "release velocity in px/ms, negative toward open")
	flags.StringVarP(&format, "output", "o", formatText, "output format: text or yaml")
	_ = c.MarkFlagRequired("to-y")
	return c
}

// simulate drives the gesture on a fake clock so the release velocity is
// exact to four decimals. The pointer first moves to a lead-in point, then
// covers the remaining distance at the requested velocity.
func simulate(cfg drawer.Config, viewport float64, from int, toY, velocity float64, obs drawer.Observer) (simulation, error) {
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	rec := &releaseRecorder{}
	observers := drawer.Observers{rec}
	if obs != nil {
		observers = append(observers, obs)
	}
	p, err := newPage(viewport, viewport, cfg, drawer.WithObserver(observers))
	if err != nil {
		return simulation{}, err
	}
	defer p.drawer.Disconnect()
	p.openAt(from)

	d := p.drawer
	g := d.Geometry()
	startY := d.CurrentY()
	from = d.ActiveSnapPointIndex()

	raw := velocity
	if g.Direction == drawer.DirectionTop {
		raw = -velocity
	}
	flickTime := flickSamples * drifttest.DefaultFrameInterval
	leadIn := toY - raw*float64(flickTime.Milliseconds())

	sim := drifttest.NewPointerSimulator(clk, p.targets.Content)
	id := sim.Down(0, startY)
	clk.Advance(leadInDuration(startY, leadIn, raw))
	sim.Move(id, 0, leadIn)
	step := (toY - leadIn) / flickSamples
	for i := 1; i <= flickSamples; i++ {
		clk.Advance(drifttest.DefaultFrameInterval)
		y := leadIn + step*float64(i)
		if i == flickSamples {
			y = toY
		}
		sim.Move(id, 0, y)
	}
	sim.Up(id, 0, toY)

	if rec.last == nil {
		return simulation{}, fmt.Errorf("drawer did not accept the drag; is it open?")
	}
	clk.Advance(d.Config().TransitionDuration)
	d.Step()

	r := *rec.last
	return simulation{
		From:      from,
		StartY:    startY,
		PointerY:  toY,
		FinalY:    r.FinalY,
		Velocity:  math.Round(r.Velocity*1e4) / 1e4,
		Target:    r.Target,
		Closed:    r.Close,
		Open:      d.IsOpen(),
		Index:     d.ActiveSnapPointIndex(),
		Transform: p.targets.Content.Style(drawer.StyleTransform),
		Opacity:   p.targets.Overlay.Style(drawer.StyleOpacity),
	}, nil
}

// leadInDuration times the move to the lead-in point. When the lead-in
// travels in the direction of raw it moves at raw, so the first velocity
// sample already matches; otherwise it is slow.
func leadInDuration(startY, leadIn, raw float64) time.Duration {
	if raw == 0 {
		return slowLeadIn
	}
	ms := (leadIn - startY) / raw
	if ms <= 0 || ms > float64(slowLeadIn.Milliseconds()) {
		return slowLeadIn
	}
	return time.Duration(ms * float64(time.Millisecond))
}
