// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or shutdown hook may run.
const DefaultTimeout = 10 * time.Second
