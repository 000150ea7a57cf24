// Package lifecycle holds shared start/stop timing for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
