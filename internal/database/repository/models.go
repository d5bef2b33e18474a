package repository

import "time"

// Slot is one row of kv_slots.
type Slot struct {
	Key       string
	Value     []byte
	Version   int64
	UpdatedAt time.Time
}
