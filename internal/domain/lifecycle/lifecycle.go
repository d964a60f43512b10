// Package lifecycle holds shared constants for application start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
