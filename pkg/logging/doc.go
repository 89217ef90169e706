// Package logging configures the slog JSON logger shared by the follower CLI,
// the followerd daemon and the assembler.
//
// Every record goes to stderr as JSON and carries the module and version of
// the binary that wrote it. Debug records also carry their source location.
//
// # Levels
//
// ParseLogLevel accepts debug, info, warn (or warning) and error in any case.
// Anything else is info. The level comes from the LOG_LEVEL environment
// variable unless a caller passes one explicitly:
//
//	logging.SetDefaultStructuredLogger("followerd", version)          // LOG_LEVEL
//	logging.SetDefaultStructuredLoggerWithLevel("follower", version, "debug")
//
// The follower CLI maps its --log-level flag onto the second form, with
// LOG_LEVEL as the flag's fallback source.
//
// # Records
//
// The assembler logs each wiring step at debug and the resolved configuration
// at info:
//
//	{"time":"...","level":"INFO","msg":"driving configuration assembled",
//	 "module":"follower","version":"v0.3.0","controller":"mpc",
//	 "localPlanner":"rrt","collisionAvoider":"potential_field"}
//
// # Standard library bridge
//
// NewLogLogger returns a *log.Logger that writes through the default slog
// handler at a fixed level. followerd hands one to http.Server.ErrorLog so
// connection errors share the JSON format.
package logging
