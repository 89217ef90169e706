package follower

import (
	"github.com/google/uuid"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/controller"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/planner"
)

// Config is an assembled driving configuration. All three components are
// non-nil and initialized. Config is immutable; the components share one
// lifetime and must not be used apart from it, since later components hold
// references to earlier ones.
type Config struct {
	id uuid.UUID

	controller       controller.Controller
	localPlanner     planner.LocalPlanner
	collisionAvoider avoider.CollisionAvoider

	// avoiderDefaulted is true when the avoider came from the controller's default.
	avoiderDefaulted bool
}

// ID identifies this assembly in logs.
func (c *Config) ID() uuid.UUID {
	return c.id
}

// Controller returns the configured controller.
func (c *Config) Controller() controller.Controller {
	return c.controller
}

// LocalPlanner returns the configured local planner.
func (c *Config) LocalPlanner() planner.LocalPlanner {
	return c.localPlanner
}

// CollisionAvoider returns the configured collision avoider.
func (c *Config) CollisionAvoider() avoider.CollisionAvoider {
	return c.collisionAvoider
}

// Summary is a serializable view of a Config.
type Summary struct {
	ID                        string                         `json:"id" yaml:"id"`
	Controller                string                         `json:"controller" yaml:"controller"`
	LocalPlanner              string                         `json:"localPlanner" yaml:"localPlanner"`
	CollisionAvoider          string                         `json:"collisionAvoider" yaml:"collisionAvoider"`
	CollisionAvoiderDefaulted bool                           `json:"collisionAvoiderDefaulted" yaml:"collisionAvoiderDefaulted"`
	LocalTracking             bool                           `json:"localTracking" yaml:"localTracking"`
	Parameters                options.LocalPlannerParameters `json:"localPlannerParameters" yaml:"localPlannerParameters"`
}

// Summary describes the resolved components and planner tuning.
func (c *Config) Summary() Summary {
	return Summary{
		ID:                        c.id.String(),
		Controller:                c.controller.Name(),
		LocalPlanner:              c.localPlanner.Name(),
		CollisionAvoider:          c.collisionAvoider.Name(),
		CollisionAvoiderDefaulted: c.avoiderDefaulted,
		LocalTracking:             !c.localPlanner.IsNull(),
		Parameters:                c.localPlanner.Params(),
	}
}
