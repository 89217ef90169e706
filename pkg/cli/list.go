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
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List registered components",
		Description: `List the registered controllers, local planners and collision avoiders
in registration order. Controllers also show their default collision avoider.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "role",
				Usage: fmt.Sprintf("Only list one role (supported values: %q)", follower.Roles),
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cat, err := follower.ListComponents(cmd.String("role"))
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, outFormat, cat)
		},
	}
}
