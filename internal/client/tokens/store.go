package tokens

import (
	"context"
	"fmt"
)

// Slot names a persisted value.
type Slot string

const (
	SlotAccess  Slot = "access_token"
	SlotRefresh Slot = "refresh_token"
	// SlotUser holds the JSON of the logged-in user's summary.
	SlotUser Slot = "user"
)

// Store is the injected storage capability. Get returns "" for an absent
// slot. Set writes all given slots atomically. Delete ignores absent slots.
type Store interface {
	Get(ctx context.Context, slot Slot) (string, error)
	Set(ctx context.Context, values map[Slot]string) error
	Delete(ctx context.Context, slots ...Slot) error
}

// Pair is the access/refresh credential pair. An empty field means absent.
type Pair struct {
	Access  string
	Refresh string
}

func (p Pair) HasAccess() bool  { return p.Access != "" }
func (p Pair) HasRefresh() bool { return p.Refresh != "" }

// ReadPair loads both credential slots from s.
func ReadPair(ctx context.Context, s Store) (Pair, error) {
	access, err := s.Get(ctx, SlotAccess)
	if err != nil {
		return Pair{}, fmt.Errorf("read access token: %w", err)
	}
	refresh, err := s.Get(ctx, SlotRefresh)
	if err != nil {
		return Pair{}, fmt.Errorf("read refresh token: %w", err)
	}
	return Pair{Access: access, Refresh: refresh}, nil
}
