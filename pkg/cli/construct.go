/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/path-follower/pkg/follower"
	"github.com/NVIDIA/path-follower/pkg/options"
	"github.com/NVIDIA/path-follower/pkg/pose"
)

func constructCmd() *cli.Command {
	return &cli.Command{
		Name:                  "construct",
		EnableShellCompletion: true,
		Usage:                 "Assemble a driving configuration",
		Description: `Resolve the named controller, local planner and collision avoider,
build one instance of each and wire them together.

Component names are taken from the options file and overridden by flags.
When no collision avoider is named, the controller's default is used.

The resolved configuration can be output in JSON, YAML, TOML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an options file (JSON, YAML or TOML, picked by extension)",
			},
			&cli.StringFlag{
				Name:  "controller",
				Usage: "Controller name (see 'follower list')",
			},
			&cli.StringFlag{
				Name:  "planner",
				Usage: "Local planner name (see 'follower list')",
			},
			&cli.StringFlag{
				Name:  "avoider",
				Usage: "Collision avoider name (default: the controller's default)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			opts, err := options.Load(cmd.String("config"))
			if err != nil {
				return err
			}

			req := follower.RequestFromOptions(opts).Override(follower.Request{
				Controller:       cmd.String("controller"),
				LocalPlanner:     cmd.String("planner"),
				CollisionAvoider: cmd.String("avoider"),
			})

			assembler, err := follower.NewAssembler(pose.NewStaticTracker(pose.NewBuffer()), opts)
			if err != nil {
				return fmt.Errorf("failed to create assembler: %w", err)
			}

			cfg, err := assembler.Construct(req)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, outFormat, cfg.Summary())
		},
	}
}
