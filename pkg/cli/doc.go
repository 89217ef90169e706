// Package cli implements the command-line interface for the path follower.
//
// # Overview
//
// The follower CLI assembles driving configurations from a controller, a
// local planner and a collision avoider, and lists the implementations
// registered for each role. It is meant for checking a robot's options file
// before deployment and for exploring what can be combined.
//
// # Commands
//
// construct - Assemble a driving configuration:
//
//	follower construct [--config FILE] [--controller NAME] [--planner NAME] [--avoider NAME]
//
// Component names come from the options file and are overridden by flags.
// When no collision avoider is named, the controller's default is used. A
// controller without a default requires an explicit avoider.
//
// list - List registered components:
//
//	follower list [--role controller|"local planner"|"collision avoider"]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, toml, table (default: yaml)
//
// # Usage Examples
//
// Assemble MPC with an RRT local planner:
//
//	follower construct --controller mpc --planner rrt --format json
//
// Check an options file:
//
//	follower construct --config robot.toml --format table
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments or assembly failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/path-follower/pkg/cli.version=1.0.0'"
package cli
