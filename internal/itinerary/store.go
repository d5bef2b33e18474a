// Package itinerary holds the pilgrim's planned visits and keeps them in a
// single durable slot.
package itinerary

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"slices"
	"sync"
	"time"
)

// ErrClosed is the panic value for mutations made after Close.
var ErrClosed = errors.New("itinerary: store closed")

// Slot is the durable home of the serialised itinerary. Load returns nil, nil
// when nothing has been saved yet; Save replaces the whole value.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the zone used to decide what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithSaveTimeout bounds each write to the slot.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.saveTimeout = d
		}
	}
}

// snapshot is one full copy of the itinerary queued for the writer.
type snapshot struct {
	version uint64
	entries []Entry
}

// Store is the single owner of the itinerary. Create it once with New, share
// the pointer with every consumer, and Close it on shutdown.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	lastID  int64
	version uint64
	closed  bool

	slot        Slot
	log         *slog.Logger
	now         func() time.Time
	loc         *time.Location
	saveTimeout time.Duration

	pending chan snapshot
	stop    chan struct{}
	done    chan struct{}

	// guarded by wmu; written is the last version the writer attempted
	wmu      sync.Mutex
	written  uint64
	lastErr  error
	advanced chan struct{}
}

// New loads whatever the slot holds and starts the background writer. A
// missing or unreadable payload leaves the itinerary empty; the failure is
// logged and never returned.
func New(ctx context.Context, slot Slot, opts ...Option) *Store {
	if slot == nil {
		panic("itinerary: nil slot")
	}
	s := &Store{
		slot:        slot,
		log:         slog.Default(),
		now:         time.Now,
		loc:         time.Local,
		saveTimeout: 5 * time.Second,
		pending:     make(chan snapshot, 1),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
		advanced:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = s.load(ctx)
	for _, e := range s.entries {
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	go s.persistenceLoop()
	return s
}

func (s *Store) load(ctx context.Context) []Entry {
	data, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warn("itinerary: load failed, starting empty", "error", err)
		return []Entry{}
	}
	if len(data) == 0 {
		return []Entry{}
	}
	entries, err := Decode(data)
	if err != nil {
		s.log.Warn("itinerary: discarding unreadable payload", "bytes", len(data), "error", err)
		return []Entry{}
	}
	return entries
}

// Add appends a new entry built from c. The entry is scheduled on the day
// after the current last slot: today plus the current itinerary length.
// Duplicate names are accepted; callers check IsInItinerary first.
// Coordinates that are not finite numbers are dropped.
func (s *Store) Add(c Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	now := s.now().In(s.loc)
	var coords *Coordinates
	if c.Coordinates != nil && finite(c.Coordinates.Lat) && finite(c.Coordinates.Lng) {
		cc := *c.Coordinates
		coords = &cc
	}
	s.entries = append(s.entries, Entry{
		ID:          s.nextID(now),
		Name:        c.Name,
		Location:    c.Location,
		Image:       c.Image,
		Coordinates: coords,
		Date:        now.AddDate(0, 0, len(s.entries)).Format(DateLayout),
		Time:        DefaultTime,
		Duration:    DefaultDuration,
	})
	s.queuePersist()
}

// finite rejects NaN and infinities, which the codec cannot encode.
func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// nextID issues millisecond-timestamp ids, bumped past the last issued id so
// two adds in the same tick never collide.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Remove deletes the entry with id. Unknown ids are ignored.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.queuePersist()
}

// ToggleCompletion flips the completed flag of the entry with id. Unknown ids
// are ignored.
func (s *Store) ToggleCompletion(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustBeOpen()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.entries[i].Completed = !s.entries[i].Completed
	s.queuePersist()
}

// IsInItinerary reports whether any entry is named exactly name.
func (s *Store) IsInItinerary(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.entries, func(e Entry) bool { return e.Name == name })
}

// GetProgress counts completed entries.
func (s *Store) GetProgress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return progressOf(s.entries)
}

// Entries returns a copy of the itinerary in insertion order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Entry looks up a single entry by id.
func (s *Store) Entry(id int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Len is the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.entries, func(e Entry) bool { return e.ID == id })
}

func (s *Store) mustBeOpen() {
	if s.closed {
		panic(ErrClosed)
	}
}

// queuePersist hands the writer a copy of the current state. It runs under
// s.mu, so snapshots enter the queue in version order. A snapshot still
// waiting in the queue is stale and gets replaced.
func (s *Store) queuePersist() {
	s.version++
	snap := snapshot{version: s.version, entries: cloneEntries(s.entries)}
	select {
	case s.pending <- snap:
	default:
		select {
		case <-s.pending:
		default:
		}
		s.pending <- snap
	}
}

// persistenceLoop is the only goroutine that writes to the slot.
func (s *Store) persistenceLoop() {
	defer close(s.done)
	for {
		select {
		case snap := <-s.pending:
			s.write(snap)
		case <-s.stop:
			select {
			case snap := <-s.pending:
				s.write(snap)
			default:
			}
			return
		}
	}
}

func (s *Store) write(snap snapshot) {
	s.wmu.Lock()
	stale := snap.version <= s.written
	s.wmu.Unlock()
	if stale {
		return
	}

	data, err := Encode(snap.entries)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		err = s.slot.Save(ctx, data)
		cancel()
	}
	if err != nil {
		s.log.Error("itinerary: save failed", "version", snap.version, "entries", len(snap.entries), "error", err)
	}

	s.wmu.Lock()
	s.written = snap.version
	s.lastErr = err
	close(s.advanced)
	s.advanced = make(chan struct{})
	s.wmu.Unlock()
}

// Flush waits until every mutation made before the call has been written to
// the slot. It returns the save error of that write, if any.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.RLock()
	target := s.version
	s.mu.RUnlock()

	for {
		s.wmu.Lock()
		written, err, advanced := s.written, s.lastErr, s.advanced
		s.wmu.Unlock()
		if written >= target {
			return err
		}
		select {
		case <-advanced:
		case <-s.done:
			s.wmu.Lock()
			err := s.lastErr
			s.wmu.Unlock()
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close writes any queued snapshot and stops the writer. Mutations after
// Close panic with ErrClosed; reads keep working. A Close that gave up on its
// context can be retried; every call waits for the writer to finish.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.stop)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.lastErr
}
