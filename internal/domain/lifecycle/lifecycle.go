// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources (HTTP server, store client).
const DefaultTimeout = 10 * time.Second
