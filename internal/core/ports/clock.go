package ports

import "time"

// Clock is the single source of "now" for timestamps and the start-of-day cutoff.
type Clock interface {
	Now() time.Time
}
