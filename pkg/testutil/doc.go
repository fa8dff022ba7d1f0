// Package testutil provides utilities for testing propconv components.
//
// Key components:
//   - TestEnvironment: isolates XDG config and state directories so config
//     loading and log files never touch the developer's home
//   - LogCapture: a zerolog logger writing JSON lines into memory, with
//     helpers to query the captured entries
//
// Each test should be completely isolated with no shared state.
package testutil
