package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SlotRepo handles kv_slots, the named blobs the app persists between runs.
type SlotRepo struct {
	db *sql.DB
}

func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// Put replaces the value stored under key and bumps its version.
func (r *SlotRepo) Put(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO kv_slots(key, value, version, updated_at)
	VALUES (?, ?, 1, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
	 value=excluded.value,
	 version=kv_slots.version + 1,
	 updated_at=CURRENT_TIMESTAMP;
	`, key, value)
	if err != nil {
		return fmt.Errorf("put slot %q: %w", key, err)
	}
	return nil
}

// Get returns the slot stored under key, or nil when there is none.
func (r *SlotRepo) Get(ctx context.Context, key string) (*Slot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, version, updated_at FROM kv_slots WHERE key = ?`, key)
	var s Slot
	if err := row.Scan(&s.Key, &s.Value, &s.Version, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get slot %q: %w", key, err)
	}
	return &s, nil
}

func (r *SlotRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = ?`, key)
	return err
}

// List returns every slot without its value.
func (r *SlotRepo) List(ctx context.Context) ([]Slot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, version, updated_at FROM kv_slots ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.Key, &s.Version, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Bind fixes the key so the repo can back a single durable slot.
func (r *SlotRepo) Bind(key string) *BoundSlot {
	return &BoundSlot{repo: r, key: key}
}

// BoundSlot is one kv_slots row seen as a load/save pair.
type BoundSlot struct {
	repo *SlotRepo
	key  string
}

func (b *BoundSlot) Key() string { return b.key }

// Load returns nil, nil when the slot has never been written.
func (b *BoundSlot) Load(ctx context.Context) ([]byte, error) {
	s, err := b.repo.Get(ctx, b.key)
	if err != nil || s == nil {
		return nil, err
	}
	return s.Value, nil
}

func (b *BoundSlot) Save(ctx context.Context, data []byte) error {
	return b.repo.Put(ctx, b.key, data)
}
