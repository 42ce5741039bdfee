package lcd

import "testing"

func TestPeakTrackerFollowsRisingLevels(t *testing.T) {
	var tr PeakTracker
	var levels [NumParts]uint8

	levels[0] = 5
	peaks := tr.Advance(levels)
	if peaks[0] != 5 {
		t.Errorf("peak = %d after level 5, want 5", peaks[0])
	}

	levels[0] = 12
	peaks = tr.Advance(levels)
	if peaks[0] != 12 {
		t.Errorf("peak = %d after level 12, want 12", peaks[0])
	}
}

func TestPeakTrackerHoldsThenDecays(t *testing.T) {
	var tr PeakTracker
	var levels [NumParts]uint8

	levels[3] = 10
	tr.Advance(levels)

	// While held, the peak must not move.
	levels[3] = 0
	for i := 0; i < peakHoldFrames; i++ {
		peaks := tr.Advance(levels)
		if peaks[3] != 10 {
			t.Fatalf("frame %d: peak = %d during hold, want 10", i, peaks[3])
		}
	}

	// After the hold expires, it falls one step per refresh.
	for want := uint8(9); ; want-- {
		peaks := tr.Advance(levels)
		if peaks[3] != want {
			t.Fatalf("peak = %d during decay, want %d", peaks[3], want)
		}
		if want == 0 {
			break
		}
	}

	// And stays at zero.
	if peaks := tr.Advance(levels); peaks[3] != 0 {
		t.Errorf("peak = %d after full decay, want 0", peaks[3])
	}
}

func TestPeakTrackerCatchesNewLevelDuringDecay(t *testing.T) {
	var tr PeakTracker
	var levels [NumParts]uint8

	levels[1] = 16
	tr.Advance(levels)

	levels[1] = 0
	for i := 0; i < peakHoldFrames+3; i++ {
		tr.Advance(levels)
	}

	levels[1] = 14
	peaks := tr.Advance(levels)
	if peaks[1] != 14 {
		t.Errorf("peak = %d after new level 14, want 14", peaks[1])
	}
}

func TestPeakTrackerClampsLevels(t *testing.T) {
	var tr PeakTracker
	var levels [NumParts]uint8

	levels[0] = 200
	peaks := tr.Advance(levels)
	if peaks[0] != MaxLevel {
		t.Errorf("peak = %d for out-of-range level, want %d", peaks[0], MaxLevel)
	}
}

func TestPeaksDoesNotAdvance(t *testing.T) {
	var tr PeakTracker
	var levels [NumParts]uint8
	levels[2] = 7
	tr.Advance(levels)

	for i := 0; i < 100; i++ {
		if got := tr.Peaks(); got[2] != 7 {
			t.Fatalf("Peaks() = %d on call %d, want 7", got[2], i)
		}
	}
}
