package model

import "sort"

// TagRecord is one workspace's persisted identity.
type TagRecord struct {
	Name   string `json:"name"`
	Layout string `json:"layout"`
}

// ScreenRecord maps 1-based tag position to the tag persisted at it.
// Positions need not be contiguous and the JSON encoding stores them as
// decimal string keys, so they are re-sorted whenever the record is read.
type ScreenRecord map[int]TagRecord

// Positions returns the record's tag positions in ascending order.
func (r ScreenRecord) Positions() []int {
	positions := make([]int, 0, len(r))
	for p := range r {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions
}

// PersistedState maps stable screen id to that screen's record. This is the
// exact on-disk shape of the save file: a JSON object keyed by decimal
// string screen ids, each value keyed by decimal string tag positions.
type PersistedState map[int]ScreenRecord

func (p PersistedState) Clone() PersistedState {
	out := make(PersistedState, len(p))
	for id, record := range p {
		rec := make(ScreenRecord, len(record))
		for pos, tag := range record {
			rec[pos] = tag
		}
		out[id] = rec
	}
	return out
}

// CaptureScreen reads a screen's current tags into a ScreenRecord, position
// starting at 1. Pure read of host state, no side effects.
func CaptureScreen(screen Screen) ScreenRecord {
	record := make(ScreenRecord)
	for i, tag := range screen.Tags() {
		record[i+1] = TagRecord{Name: tag.Name(), Layout: tag.LayoutName()}
	}
	return record
}
