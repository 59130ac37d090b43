package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the CLI with an isolated config directory.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", dir}, args...))
	err := root.Execute()
	return out.String(), err
}

func writePresets(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drawer.yaml"), []byte(content), 0o644))
	return dir
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "drawer version "+Version+" (built "+BuildTime+")\n", out)
}

func TestResolveText(t *testing.T) {
	out, err := run(t, "", "resolve", "--viewport", "800", "--snap", "0.25,0.5,0.75,1")
	require.NoError(t, err)
	assert.Contains(t, out, "viewport 800px, direction bottom")
	assert.Contains(t, out, "y=600px")
	assert.Contains(t, out, "y=80px", "the fully open point clamps to the top threshold")
	assert.Contains(t, out, "closed       y=800px")
}

func TestResolveYAML(t *testing.T) {
	out, err := run(t, "", "resolve", "--snap", "0.25,0.5,0.75,1", "--direction", "top", "-o", "yaml")
	require.NoError(t, err)

	var r resolution
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "top", r.Direction)
	assert.Equal(t, 0.0, r.ClosedY)
	require.Len(t, r.Points, 4)
	assert.Equal(t, 200.0, r.Points[0].Y)
	assert.Equal(t, -600.0, r.Points[0].Offset)
	assert.Equal(t, 720.0, r.Points[3].Y)
}

func TestResolvePreset(t *testing.T) {
	dir := writePresets(t, `default: sheet
presets:
  sheet:
    direction: top
    snap_points: ["300px", 0.5]
  tall:
    snap_points: [0.9]
`)
	out, err := run(t, dir, "resolve", "-o", "yaml")
	require.NoError(t, err)
	var r resolution
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "top", r.Direction)
	require.Len(t, r.Points, 2)
	assert.Equal(t, "300px", r.Points[0].Point)
	assert.Equal(t, 300.0, r.Points[0].Y)
	assert.Equal(t, -400.0, r.Points[1].Offset)

	out, err = run(t, dir, "resolve", "--preset", "tall", "--viewport", "1000", "-o", "yaml")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "bottom", r.Direction)
	require.Len(t, r.Points, 1)
	assert.Equal(t, 100.0, r.Points[0].Y)

	_, err = run(t, dir, "resolve", "--preset", "missing")
	assert.ErrorContains(t, err, "unknown preset")
}

func TestResolveErrors(t *testing.T) {
	_, err := run(t, "", "resolve")
	assert.ErrorContains(t, err, "no snap points")

	_, err = run(t, "", "resolve", "--snap", "1.5")
	assert.Error(t, err)

	_, err = run(t, "", "resolve", "--snap", "0.5", "--direction", "left")
	assert.Error(t, err)

	_, err = run(t, "", "resolve", "--snap", "0.5", "-o", "json")
	assert.ErrorContains(t, err, "unknown output format")
}

func simulateYAML(t *testing.T, args ...string) simulation {
	t.Helper()
	out, err := run(t, "", append([]string{"simulate", "--snap", "0.25,0.5,0.75,1", "-o", "yaml"}, args...)...)
	require.NoError(t, err)
	var s simulation
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	return s
}

func TestSimulateSlowDragSnapsToNearest(t *testing.T) {
	s := simulateYAML(t, "--from", "1", "--to-y", "250", "--velocity", "0.1")
	assert.Equal(t, 1, s.From)
	assert.Equal(t, 400.0, s.StartY)
	assert.Equal(t, 250.0, s.FinalY)
	assert.InDelta(t, 0.1, s.Velocity, 1e-3)
	assert.Equal(t, 2, s.Target)
	assert.True(t, s.Open)
	assert.Equal(t, "translate3d(0, 200px, 0)", s.Transform)
	assert.Equal(t, "1", s.Opacity)
}

func TestSimulateFlingSkipsOnePoint(t *testing.T) {
	s := simulateYAML(t, "--from", "1", "--to-y", "380", "--velocity", "-0.6")
	assert.InDelta(t, -0.6, s.Velocity, 1e-3)
	assert.Equal(t, 2, s.Target)

	s = simulateYAML(t, "--from", "1", "--to-y", "380", "--velocity", "-0.6", "--sequential")
	assert.Equal(t, 1, s.Target, "sequential drawers snap to the nearest point")
}

func TestSimulateReportsRequestedVelocity(t *testing.T) {
	s := simulateYAML(t, "--from", "1", "--to-y", "380", "--velocity", "-0.5")
	assert.Equal(t, -0.5, s.Velocity)

	s = simulateYAML(t, "--from", "1", "--to-y", "380", "--velocity", "-0.41")
	assert.Equal(t, -0.41, s.Velocity)
	assert.Equal(t, 2, s.Target, "a speed just above the threshold still skips")

	s = simulateYAML(t, "--from", "1", "--to-y", "300", "--velocity", "-0.45", "--direction", "top")
	assert.Equal(t, -0.45, s.Velocity)
	assert.Equal(t, 2, s.Target)
}

func TestLeadInDuration(t *testing.T) {
	assert.Equal(t, slowLeadIn, leadInDuration(400, 500, 0))
	assert.Equal(t, slowLeadIn, leadInDuration(400, 500, -0.5), "lead-in against the requested direction")
	assert.Equal(t, 200*time.Millisecond, leadInDuration(400, 500, 0.5))
}

func TestSimulateCloseFromFirstPoint(t *testing.T) {
	s := simulateYAML(t, "--from", "0", "--to-y", "700")
	assert.True(t, s.Closed)
	assert.False(t, s.Open)
	assert.Equal(t, "translate3d(0, 800px, 0)", s.Transform)
	assert.Equal(t, "0", s.Opacity)
}

func TestSimulateText(t *testing.T) {
	out, err := run(t, "", "simulate", "--from", "1", "--to-y", "250", "--velocity", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "result    index 2")
	assert.Contains(t, out, "transform translate3d(0, 200px, 0)")
}

func TestSimulateRequiresPointer(t *testing.T) {
	_, err := run(t, "", "simulate", "--from", "1")
	assert.Error(t, err)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	_, err := run(t, "", "render", "--width", "100", "--viewport", "200", "--index", "1", "--out", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestRenderStdout(t *testing.T) {
	out, err := run(t, "", "render", "--width", "50", "--viewport", "100", "--scale", "2", "--out", "-")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader([]byte(out)))
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestVerboseLogsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawer.log")
	_, err := run(t, "", "--verbose", "--log-file", path, "render", "--width", "50", "--viewport", "100", "--out", "-")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendered frame")
}

func TestCommandsRegistered(t *testing.T) {
	root := NewRootCommand()
	for _, name := range []string{"demo", "resolve", "simulate", "render", "version"} {
		c, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
	demo, _, _ := root.Find([]string{"demo"})
	assert.Equal(t, "true", demo.Annotations[fullscreenAnnotation])
}
