// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package follower

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/controller"
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/planner"
	"github.com/NVIDIA/path-follower/pkg/pose"
	"github.com/NVIDIA/path-follower/pkg/registry"
)

// ControllerRegistry resolves controller names.
type ControllerRegistry interface {
	Make(name string) (controller.Controller, error)
	ListAll() []controller.Controller
	DefaultCollisionAvoiderFor(name string) (string, error)
}

// PlannerRegistry resolves local planner names.
type PlannerRegistry interface {
	Make(name string) (planner.LocalPlanner, error)
}

// AvoiderRegistry resolves collision avoider names.
type AvoiderRegistry interface {
	Make(name string) (avoider.CollisionAvoider, error)
}

// Assembler turns requests into wired driving configurations.
//
// Thread-safety: Construct may be called concurrently as long as the
// registries are sealed and the caller keeps the tracker and options stable
// for the duration of each call.
type Assembler struct {
	tracker pose.Tracker
	opts    *options.Options

	controllers ControllerRegistry
	planners    PlannerRegistry
	avoiders    AvoiderRegistry
}

// Option defines a functional option for configuring an Assembler.
type Option func(*Assembler)

// WithControllerRegistry replaces the default controller registry.
func WithControllerRegistry(r ControllerRegistry) Option {
	return func(a *Assembler) {
		a.controllers = r
	}
}

// WithPlannerRegistry replaces the default local planner registry.
func WithPlannerRegistry(r PlannerRegistry) Option {
	return func(a *Assembler) {
		a.planners = r
	}
}

// WithAvoiderRegistry replaces the default collision avoider registry.
func WithAvoiderRegistry(r AvoiderRegistry) Option {
	return func(a *Assembler) {
		a.avoiders = r
	}
}

// NewAssembler creates an Assembler over the caller-owned pose tracker and
// global options. The built-in registries are used unless replaced.
func NewAssembler(tracker pose.Tracker, opts *options.Options, assemblerOpts ...Option) (*Assembler, error) {
	if tracker == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "pose tracker cannot be nil")
	}
	if opts == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "options cannot be nil")
	}

	a := &Assembler{
		tracker:     tracker,
		opts:        opts,
		controllers: controller.DefaultRegistry(),
		planners:    planner.DefaultRegistry(),
		avoiders:    avoider.DefaultRegistry(),
	}
	for _, opt := range assemblerOpts {
		opt(a)
	}
	return a, nil
}

// Construct resolves, builds and wires the components named by req.
// Either a complete Config is returned or an error; no partial
// configuration is ever returned.
func (a *Assembler) Construct(req Request) (*Config, error) {
	start := time.Now()

	cfg, err := a.construct(req)

	constructDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		code := string(errors.CodeOf(err))
		if code == "" {
			code = string(errors.ErrCodeInternal)
		}
		constructTotal.WithLabelValues(code).Inc()
		slog.Error("failed to construct driving configuration",
			"error", err,
			"controller", req.Controller,
			"localPlanner", req.LocalPlanner,
			"collisionAvoider", req.CollisionAvoider,
		)
		return nil, err
	}
	constructTotal.WithLabelValues(resultOK).Inc()
	if cfg.avoiderDefaulted {
		avoiderDefaultedTotal.Inc()
	}

	params := cfg.localPlanner.Params()
	slog.Info("driving configuration assembled",
		"id", cfg.id.String(),
		"controller", cfg.controller.Name(),
		"localPlanner", cfg.localPlanner.Name(),
		"collisionAvoider", cfg.collisionAvoider.Name(),
		"localTracking", a.tracker.IsLocal(),
		"maxNumNodes", params.MaxNumNodes,
		"duration", time.Since(start),
	)
	return cfg, nil
}

func (a *Assembler) construct(req Request) (*Config, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctrl, err := a.controllers.Make(req.Controller)
	if err != nil {
		return nil, err
	}
	lp, err := a.planners.Make(req.LocalPlanner)
	if err != nil {
		return nil, err
	}

	avoiderName := req.CollisionAvoider
	defaulted := false
	if avoiderName == "" {
		avoiderName, err = a.controllers.DefaultCollisionAvoiderFor(req.Controller)
		if err != nil {
			return nil, err
		}
		if avoiderName == "" {
			return nil, errors.NewWithContext(errors.ErrCodeMissingField,
				fmt.Sprintf("no collision avoider specified and controller %q declares no default", req.Controller),
				map[string]any{"field": "collisionAvoider", "controller": req.Controller})
		}
		defaulted = true
		slog.Debug("resolved default collision avoider",
			"controller", req.Controller,
			"collisionAvoider", avoiderName)
	}

	ca, err := a.avoiders.Make(avoiderName)
	if err != nil {
		return nil, err
	}

	if err := checkInstances(req, avoiderName, ctrl, lp, ca); err != nil {
		return nil, err
	}

	if err := a.wire(ctrl, lp, ca); err != nil {
		return nil, err
	}

	return &Config{
		id:               uuid.New(),
		controller:       ctrl,
		localPlanner:     lp,
		collisionAvoider: ca,
		avoiderDefaulted: defaulted,
	}, nil
}

// checkInstances guards against registries that report success without an
// instance.
func checkInstances(req Request, avoiderName string, ctrl controller.Controller, lp planner.LocalPlanner, ca avoider.CollisionAvoider) error {
	missing := func(role, name string) error {
		return errors.NewWithContext(errors.ErrCodeAssemblyInvariant,
			fmt.Sprintf("%s %q was not set", role, name),
			map[string]any{"role": role, "name": name})
	}
	switch {
	case registry.IsNil(ctrl):
		return missing(controller.Role, req.Controller)
	case registry.IsNil(lp):
		return missing(planner.Role, req.LocalPlanner)
	case registry.IsNil(ca):
		return missing(avoider.Role, avoiderName)
	}
	return nil
}

// wire connects the components. The order is fixed: the avoider needs
// transforms before the planner initializes, the planner is initialized
// before the controller, the tracking mode follows the final planner, and
// tuning is pushed last in one batch.
func (a *Assembler) wire(ctrl controller.Controller, lp planner.LocalPlanner, ca avoider.CollisionAvoider) error {
	ca.SetTransformListener(a.tracker.TransformListener())

	params := a.opts.LocalPlanner()
	slog.Debug("initializing local planner",
		"localPlanner", lp.Name(),
		"updateInterval", params.UpdateInterval)
	if err := lp.Init(ctrl, a.tracker, params.UpdateInterval); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInitFailed,
			fmt.Sprintf("%s %q initialization failed", planner.Role, lp.Name()), err,
			map[string]any{"role": planner.Role, "name": lp.Name()})
	}

	slog.Debug("initializing controller", "controller", ctrl.Name())
	if err := ctrl.Init(a.tracker, ca, a.opts); err != nil {
		return errors.WrapWithContext(errors.ErrCodeInitFailed,
			fmt.Sprintf("%s %q initialization failed", controller.Role, ctrl.Name()), err,
			map[string]any{"role": controller.Role, "name": ctrl.Name()})
	}

	a.tracker.SetLocal(!lp.IsNull())

	lp.SetParams(params)
	return nil
}

// LoadAll constructs one instance of every registered controller for
// discovery. The instances are not wired.
func (a *Assembler) LoadAll() []controller.Controller {
	return a.controllers.ListAll()
}
