package service

import (
	"context"
	"fmt"

	"github.com/jask/pilgrim/internal/itinerary"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	Itinerary *itinerary.Store
}

// Reset removes every planned entry and waits for the empty itinerary to
// reach the slot.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.Itinerary == nil {
		return fmt.Errorf("maintenance: itinerary not configured")
	}
	for _, e := range s.Itinerary.Entries() {
		s.Itinerary.Remove(e.ID)
	}
	if err := s.Itinerary.Flush(ctx); err != nil {
		return fmt.Errorf("maintenance: flush after reset: %w", err)
	}
	return nil
}
