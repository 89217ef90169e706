package follower

import (
	"fmt"
	"sync"
	"time"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/controller"
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/planner"
	"github.com/NVIDIA/path-follower/pkg/pose"
)

// recorder collects wiring events in call order.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

type recordingTracker struct {
	*pose.StaticTracker
	rec *recorder
}

func (t *recordingTracker) SetLocal(local bool) {
	t.rec.add(fmt.Sprintf("tracker.SetLocal(%t)", local))
	t.StaticTracker.SetLocal(local)
}

type recordingAvoider struct {
	name     string
	rec      *recorder
	listener pose.TransformListener
}

func (a *recordingAvoider) Name() string { return a.name }

func (a *recordingAvoider) SetTransformListener(l pose.TransformListener) {
	a.rec.add("avoider.SetTransformListener")
	a.listener = l
}

func (a *recordingAvoider) TransformListener() pose.TransformListener { return a.listener }

type recordingPlanner struct {
	name     string
	null     bool
	rec      *recorder
	initErr  error
	ctrl     controller.Controller
	interval time.Duration
	params   options.LocalPlannerParameters
	inited   bool
	// avoiderWired is captured at Init to prove the avoider was wired first.
	avoider      *recordingAvoider
	avoiderWired bool
}

func (p *recordingPlanner) Name() string { return p.name }

func (p *recordingPlanner) Init(ctrl controller.Controller, _ pose.Tracker, interval time.Duration) error {
	p.rec.add("planner.Init")
	if p.initErr != nil {
		return p.initErr
	}
	if p.avoider != nil {
		p.avoiderWired = p.avoider.listener != nil
	}
	p.ctrl = ctrl
	p.interval = interval
	p.inited = true
	return nil
}

func (p *recordingPlanner) SetParams(params options.LocalPlannerParameters) {
	p.rec.add("planner.SetParams")
	p.params = params
}

func (p *recordingPlanner) Params() options.LocalPlannerParameters { return p.params }

func (p *recordingPlanner) IsNull() bool { return p.null }

func (p *recordingPlanner) Initialized() bool { return p.inited }

type recordingController struct {
	name    string
	rec     *recorder
	initErr error
	planner *recordingPlanner
	// plannerReady is captured at Init to prove the planner was initialized first.
	plannerReady bool
	avoider      avoider.CollisionAvoider
	opts         *options.Options
	inited       bool
}

func (c *recordingController) Name() string { return c.name }

func (c *recordingController) Init(_ pose.Tracker, ca avoider.CollisionAvoider, opts *options.Options) error {
	c.rec.add("controller.Init")
	if c.initErr != nil {
		return c.initErr
	}
	if c.planner != nil {
		c.plannerReady = c.planner.inited
	}
	c.avoider = ca
	c.opts = opts
	c.inited = true
	return nil
}

func (c *recordingController) Initialized() bool { return c.inited }

// fakeRegistries implements all three registry interfaces with maps.
// A present key with a nil value simulates a registry returning success
// without an instance.
type fakeRegistries struct {
	controllers map[string]func() controller.Controller
	defaults    map[string]string
	planners    map[string]func() planner.LocalPlanner
	avoiders    map[string]func() avoider.CollisionAvoider
}

func unknown(role, name string) error {
	return errors.NewWithContext(errors.ErrCodeUnknownComponent,
		fmt.Sprintf("unknown %s %q", role, name),
		map[string]any{"role": role, "name": name})
}

type fakeControllers struct{ *fakeRegistries }

func (f fakeControllers) Make(name string) (controller.Controller, error) {
	fn, ok := f.controllers[name]
	if !ok {
		return nil, unknown(controller.Role, name)
	}
	if fn == nil {
		return nil, nil
	}
	return fn(), nil
}

func (f fakeControllers) ListAll() []controller.Controller {
	var out []controller.Controller
	for _, fn := range f.controllers {
		if fn != nil {
			out = append(out, fn())
		}
	}
	return out
}

func (f fakeControllers) DefaultCollisionAvoiderFor(name string) (string, error) {
	if _, ok := f.controllers[name]; !ok {
		return "", unknown(controller.Role, name)
	}
	return f.defaults[name], nil
}

type fakePlanners struct{ *fakeRegistries }

func (f fakePlanners) Make(name string) (planner.LocalPlanner, error) {
	fn, ok := f.planners[name]
	if !ok {
		return nil, unknown(planner.Role, name)
	}
	if fn == nil {
		return nil, nil
	}
	return fn(), nil
}

type fakeAvoiders struct{ *fakeRegistries }

func (f fakeAvoiders) Make(name string) (avoider.CollisionAvoider, error) {
	fn, ok := f.avoiders[name]
	if !ok {
		return nil, unknown(avoider.Role, name)
	}
	if fn == nil {
		return nil, nil
	}
	return fn(), nil
}

func (f *fakeRegistries) options() []Option {
	return []Option{
		WithControllerRegistry(fakeControllers{f}),
		WithPlannerRegistry(fakePlanners{f}),
		WithAvoiderRegistry(fakeAvoiders{f}),
	}
}
