package activation

import (
	"github.com/PixPMusic/gopher-regions/internal/region"
)

// Result is the evaluated lighting state of one region
type Result struct {
	Active    bool
	Intensity float64 // 0-1
}

// Evaluate scans the region's trigger range against the snapshot.
// Every matching entry is visited and the loudest one wins; an inverted
// note range matches nothing.
func Evaluate(r region.Region, snap Snapshot) Result {
	if snap.Len() == 0 || r.NoteLow > r.NoteHigh {
		return Result{}
	}

	low, high := r.NoteLow, r.NoteHigh
	if low < 0 {
		low = 0
	}
	if high > noteKeySpace-1 {
		high = noteKeySpace - 1
	}

	chLow, chHigh := MinChannel, MaxChannel
	if r.Channel != region.OmniChannel {
		chLow, chHigh = r.Channel, r.Channel
	}

	active := false
	maxIntensity := 0.0
	for note := low; note <= high; note++ {
		for ch := chLow; ch <= chHigh; ch++ {
			if ch < MinChannel || ch > MaxChannel {
				continue
			}
			e, ok := snap.Lookup(Key{Channel: uint8(ch), Note: uint8(note)})
			if !ok {
				continue
			}
			active = true
			if e.Intensity > maxIntensity {
				maxIntensity = e.Intensity
			}
		}
	}

	if !active {
		return Result{}
	}

	switch r.Mode {
	case region.IntensityVelocity:
		return Result{Active: true, Intensity: maxIntensity / MaxVelocity * r.BaseIntensity}
	default:
		return Result{Active: true, Intensity: r.BaseIntensity}
	}
}

// EvaluateAll evaluates every region against the same snapshot, in order
func EvaluateAll(regions []region.Region, snap Snapshot) []Result {
	results := make([]Result, len(regions))
	for i, r := range regions {
		results[i] = Evaluate(r, snap)
	}
	return results
}
