// Package lcd holds the display-independent pieces of the front panel:
// the data source interface that synthesizers implement so a display can
// render their state, and the peak-hold logic shared by all level meter
// renderings.
package lcd

const (
	// NumParts is the number of channel slots shown on the level meters:
	// 8 synth parts plus the rhythm part.
	NumParts = 9

	// MaxLevel is the tallest bar a meter can show, in half-pixel-row
	// units spanning two display pages.
	MaxLevel = 16

	// StatusColumns is the width of the status line in characters.
	StatusColumns = 20
)

// SynthSource exposes the values a display renders on each refresh.
// Implementations are polled from the display's update loop and must not
// block.
type SynthSource interface {
	// StatusText returns the current status line. Text beyond
	// StatusColumns characters is truncated by the renderer.
	StatusText() string

	// PartLevels returns the current output level of each channel slot,
	// each in [0, MaxLevel].
	PartLevels() [NumParts]uint8

	// PeakLevels returns the recent-maximum indicator of each channel
	// slot, each in [0, MaxLevel] and independent of the current level.
	// Implementations typically maintain these with a PeakTracker.
	PeakLevels() [NumParts]uint8
}

// Peak hold behavior: a peak sticks at the highest recent level for
// peakHoldFrames refreshes, then falls one step per refresh until the
// current level catches it.
const peakHoldFrames = 16

// PeakTracker derives per-channel peak indicators from a stream of level
// readings. The zero value is ready to use.
type PeakTracker struct {
	peaks [NumParts]uint8
	hold  [NumParts]uint8
}

// Advance feeds one refresh worth of levels and returns the updated peaks.
func (t *PeakTracker) Advance(levels [NumParts]uint8) [NumParts]uint8 {
	for i, level := range levels {
		if level > MaxLevel {
			level = MaxLevel
		}
		switch {
		case level >= t.peaks[i]:
			t.peaks[i] = level
			t.hold[i] = peakHoldFrames
		case t.hold[i] > 0:
			t.hold[i]--
		case t.peaks[i] > 0:
			t.peaks[i]--
		}
	}
	return t.peaks
}

// Peaks returns the current peak values without advancing the tracker.
func (t *PeakTracker) Peaks() [NumParts]uint8 {
	return t.peaks
}
