package itinerary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Decode when a payload parses but breaks the
// itinerary's invariants.
var ErrCorrupt = errors.New("itinerary: corrupt payload")

// Encode serialises entries as a JSON array. A nil slice encodes as [].
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary: %w", err)
	}
	return data, nil
}

// Decode parses a payload written by Encode.
func Decode(data []byte) ([]Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorrupt)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	seen := make(map[int64]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrCorrupt, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
