package ui

import "time"

// Screen rows outside the slide track.
const (
	headerRows   = 1
	dotsRows     = 1
	progressRows = 1
	footerRows   = 1
	chromeRows   = headerRows + dotsRows + progressRows + footerRows

	// minTrackRows is the smallest track height that still fits a caption,
	// an image line and a link line.
	minTrackRows = 3
)

// Horizontal layout, in terminal columns.
const (
	// framePadding is the gutter on each side of the track.
	framePadding = 2

	// progressWidth caps the autoplay countdown bar.
	progressWidth = 30

	helpModalWidth = 44
)

// logTailLines is how many log entries the log overlay reads.
const logTailLines = 200

// Timing constants.
const (
	// frameInterval drives the offset spring.
	frameInterval = time.Second / 60

	// snapshotInterval is how often the store is polled for a new slide list
	// and the countdown bar is redrawn.
	snapshotInterval = 250 * time.Millisecond

	// springSettleSpan is how many natural periods the spring gets to
	// converge within one transition.
	springSettleSpan = 6.0
)

// trackRows returns the height of the slide track for a terminal height.
func trackRows(height int) int {
	return maxInt(height-chromeRows, minTrackRows)
}

// containerWidth returns the track width for a terminal width.
func containerWidth(width int) int {
	return maxInt(width-2*framePadding, 0)
}
