package follower

import (
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/options"
)

// Request names the components of a driving configuration.
// CollisionAvoider may be empty to use the controller's default.
type Request struct {
	Controller       string `json:"controller" yaml:"controller"`
	LocalPlanner     string `json:"localPlanner" yaml:"localPlanner"`
	CollisionAvoider string `json:"collisionAvoider,omitempty" yaml:"collisionAvoider,omitempty"`
}

// RequestFromOptions builds a request from the role names in opts.
func RequestFromOptions(opts *options.Options) Request {
	return Request{
		Controller:       opts.Controller(),
		LocalPlanner:     opts.Planner(),
		CollisionAvoider: opts.CollisionAvoider(),
	}
}

// Override returns a copy of r with every non-empty field of o applied.
func (r Request) Override(o Request) Request {
	if o.Controller != "" {
		r.Controller = o.Controller
	}
	if o.LocalPlanner != "" {
		r.LocalPlanner = o.LocalPlanner
	}
	if o.CollisionAvoider != "" {
		r.CollisionAvoider = o.CollisionAvoider
	}
	return r
}

// Validate fails with ErrCodeMissingField when the controller or local
// planner name is empty.
func (r Request) Validate() error {
	if r.Controller == "" {
		return errors.NewWithContext(errors.ErrCodeMissingField,
			"no controller specified", map[string]any{"field": "controller"})
	}
	if r.LocalPlanner == "" {
		return errors.NewWithContext(errors.ErrCodeMissingField,
			"no local planner specified", map[string]any{"field": "localPlanner"})
	}
	return nil
}
