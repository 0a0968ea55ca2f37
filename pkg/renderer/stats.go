package renderer

import "time"

// BandStat describes one worker's share of a rendered frame
type BandStat struct {
	// The band index, equal to the worker index.
	Band int

	// The half-open row range [RowStart, RowEnd) the band covers.
	RowStart int
	RowEnd   int

	// The percentage of the total frame area the band represents.
	FramePercent float64

	// Render time for the band.
	RenderTime time.Duration
}

// FrameStats aggregates per-band statistics for a full frame
type FrameStats struct {
	// Individual band stats, one per worker.
	Bands []BandStat

	// Total wall-clock render time for the frame.
	RenderTime time.Duration
}
