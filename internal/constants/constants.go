package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// TeamSize is the fixed number of team slots per player. Unfilled
	// slots stay in place with an empty species key.
	TeamSize = 6

	SizeSixteen   = 16
	SizeSixtyFour = 64

	// ColumnLength is how many players each named column group holds.
	ColumnLength = 4
)

const (
	DefaultUsageTopN = 12
)

const (
	// MaxScrapeBodyBytes caps how much of an upstream page the scrape
	// fetcher reads.
	MaxScrapeBodyBytes = 4 << 20
)
