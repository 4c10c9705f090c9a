// Package lifecycle holds shared timing constants for process start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds every fx OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
