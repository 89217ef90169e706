package options

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/path-follower/pkg/defaults"
)

func TestNew_Defaults(t *testing.T) {
	o := New()

	require.NoError(t, o.Validate())
	assert.Equal(t, DefaultLocalPlannerParameters(), o.LocalPlanner())
	assert.Equal(t, defaults.PlannerUpdateInterval, o.LocalPlanner().UpdateInterval)
	assert.Equal(t, defaults.Controller, o.Controller())
	assert.Equal(t, defaults.LocalPlanner, o.Planner())
	assert.Empty(t, o.CollisionAvoider())
	assert.Equal(t, defaults.ControllerMaxVelocity, o.MaxVelocity())
}

func TestNew_WithOptions(t *testing.T) {
	p := DefaultLocalPlannerParameters()
	p.MaxNumNodes = 1000

	o := New(
		WithLocalPlanner(p),
		WithVelocity(0.2, 1.5),
		WithGoalTolerance(0.3),
		WithComponents("mpc", "rrt", ""),
	)

	assert.Equal(t, 1000, o.LocalPlanner().MaxNumNodes)
	assert.Equal(t, 0.2, o.MinVelocity())
	assert.Equal(t, 1.5, o.MaxVelocity())
	assert.Equal(t, 0.3, o.GoalTolerance())
	assert.Equal(t, "mpc", o.Controller())
	assert.Equal(t, "rrt", o.Planner())
	assert.Empty(t, o.CollisionAvoider())
}

func TestLocalPlanner_ReturnsCopy(t *testing.T) {
	o := New()
	p := o.LocalPlanner()
	p.MaxDepth = 99
	assert.Equal(t, defaults.PlannerMaxDepth, o.LocalPlanner().MaxDepth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *LocalPlannerParameters)
		opts   []Option
	}{
		{name: "zero interval", mutate: func(p *LocalPlannerParameters) { p.UpdateInterval = 0 }},
		{name: "zero nodes", mutate: func(p *LocalPlannerParameters) { p.MaxNumNodes = 0 }},
		{name: "zero depth", mutate: func(p *LocalPlannerParameters) { p.MaxDepth = 0 }},
		{name: "zero subdivisions", mutate: func(p *LocalPlannerParameters) { p.CurveSegmentSubdivisions = 0 }},
		{name: "negative angles", mutate: func(p *LocalPlannerParameters) { p.IntermediateAngles = -1 }},
		{name: "zero step scale", mutate: func(p *LocalPlannerParameters) { p.StepScale = 0 }},
		{name: "negative distance", mutate: func(p *LocalPlannerParameters) { p.SafetyDistanceForward = -0.1 }},
		{name: "zero steering", mutate: func(p *LocalPlannerParameters) { p.MaxSteeringAngle = 0 }},
		{name: "zero max velocity", opts: []Option{WithVelocity(0, 0)}},
		{name: "min above max", opts: []Option{WithVelocity(3, 1)}},
		{name: "zero tolerance", opts: []Option{WithGoalTolerance(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultLocalPlannerParameters()
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			opts := append([]Option{WithLocalPlanner(p)}, tt.opts...)
			assert.Error(t, New(opts...).Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlFile := filepath.Join(dir, "follower.yaml")
	require.NoError(t, os.WriteFile(yamlFile, []byte(`controller: mpc
localPlanner: rrt
maxVelocity: 1.2
localPlannerParameters:
  updateInterval: 250ms
  maxNumNodes: 800
  mu: 0.8
`), 0o600))

	tomlFile := filepath.Join(dir, "follower.toml")
	require.NoError(t, os.WriteFile(tomlFile, []byte(`controller = "mpc"
local_planner = "rrt"
max_velocity = 1.2

[local_planner_parameters]
update_interval = "250ms"
max_num_nodes = 800
mu = 0.8
`), 0o600))

	jsonFile := filepath.Join(dir, "follower.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{
  "controller": "mpc",
  "localPlanner": "rrt",
  "maxVelocity": 1.2,
  "localPlannerParameters": {"updateInterval": "250ms", "maxNumNodes": 800, "mu": 0.8}
}`), 0o600))

	for _, path := range []string{yamlFile, tomlFile, jsonFile} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			o, err := Load(path)
			require.NoError(t, err)

			assert.Equal(t, "mpc", o.Controller())
			assert.Equal(t, "rrt", o.Planner())
			assert.Equal(t, 1.2, o.MaxVelocity())
			assert.Equal(t, defaults.ControllerMinVelocity, o.MinVelocity())

			p := o.LocalPlanner()
			assert.Equal(t, 250*time.Millisecond, p.UpdateInterval)
			assert.Equal(t, 800, p.MaxNumNodes)
			assert.Equal(t, 0.8, p.Mu)
			assert.Equal(t, defaults.PlannerMaxDepth, p.MaxDepth)
			assert.Equal(t, defaults.PlannerEf, p.Ef)
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	o, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), o)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load options")

	badInterval := filepath.Join(dir, "interval.yaml")
	require.NoError(t, os.WriteFile(badInterval, []byte("localPlannerParameters:\n  updateInterval: soon\n"), 0o600))
	_, err = Load(badInterval)
	assert.ErrorContains(t, err, "invalid update interval")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("localPlannerParameters:\n  maxNumNodes: -5\n"), 0o600))
	_, err = Load(invalid)
	assert.ErrorContains(t, err, "max num nodes")
}

func TestNewFile_RoundTripsDefaults(t *testing.T) {
	o, err := NewFile().Options()
	require.NoError(t, err)
	assert.Equal(t, New(), o)
}
