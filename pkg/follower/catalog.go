package follower

import (
	"fmt"
	"slices"

	"github.com/NVIDIA/path-follower/pkg/avoider"
	"github.com/NVIDIA/path-follower/pkg/controller"
	"github.com/NVIDIA/path-follower/pkg/errors"
	"github.com/NVIDIA/path-follower/pkg/planner"
	"github.com/NVIDIA/path-follower/pkg/registry"
)

// Roles lists the component roles in catalog order.
var Roles = []string{controller.Role, planner.Role, avoider.Role}

// Component describes one registered implementation.
type Component struct {
	Role                    string `json:"role" yaml:"role" toml:"role"`
	Name                    string `json:"name" yaml:"name" toml:"name"`
	Description             string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	DefaultCollisionAvoider string `json:"defaultCollisionAvoider,omitempty" yaml:"defaultCollisionAvoider,omitempty" toml:"default_collision_avoider,omitempty"`
}

// Catalog wraps components so every output format has a top-level table.
type Catalog struct {
	Components []Component `json:"components" yaml:"components" toml:"components"`
}

// ListComponents returns the built-in components of every role, or only of
// role when it is not empty. Entries keep registration order.
func ListComponents(role string) (*Catalog, error) {
	return listComponents(controller.DefaultRegistry(), planner.DefaultRegistry(), avoider.DefaultRegistry(), role)
}

func listComponents(
	controllers *controller.Registry,
	planners *registry.Registry[planner.LocalPlanner],
	avoiders *registry.Registry[avoider.CollisionAvoider],
	role string,
) (*Catalog, error) {
	if role != "" && !slices.Contains(Roles, role) {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown role: %q, supported values: %q", role, Roles),
			map[string]any{"role": role})
	}

	cat := &Catalog{}

	if role == "" || role == controller.Role {
		for _, info := range controllers.Describe() {
			ca, err := controllers.DefaultCollisionAvoiderFor(info.Name)
			if err != nil {
				return nil, err
			}
			cat.Components = append(cat.Components, Component{
				Role:                    controller.Role,
				Name:                    info.Name,
				Description:             info.Doc,
				DefaultCollisionAvoider: ca,
			})
		}
	}

	if role == "" || role == planner.Role {
		cat.add(planner.Role, planners.Describe())
	}

	if role == "" || role == avoider.Role {
		cat.add(avoider.Role, avoiders.Describe())
	}

	return cat, nil
}

func (c *Catalog) add(role string, infos []registry.Info) {
	for _, info := range infos {
		c.Components = append(c.Components, Component{
			Role:        role,
			Name:        info.Name,
			Description: info.Doc,
		})
	}
}

// CheckReady fails with SERVICE_UNAVAILABLE while any default registry is
// empty, since no configuration could be assembled.
func CheckReady() error {
	return checkReady(map[string]int{
		controller.Role: controller.DefaultRegistry().Len(),
		planner.Role:    planner.DefaultRegistry().Len(),
		avoider.Role:    avoider.DefaultRegistry().Len(),
	})
}

func checkReady(sizes map[string]int) error {
	for _, role := range Roles {
		if sizes[role] == 0 {
			return errors.NewWithContext(errors.ErrCodeUnavailable,
				fmt.Sprintf("no %s registered", role),
				map[string]any{"role": role})
		}
	}
	return nil
}
