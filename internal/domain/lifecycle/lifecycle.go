// Package lifecycle holds process-wide lifecycle settings shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks such as the initial database ping.
const DefaultTimeout = 10 * time.Second
