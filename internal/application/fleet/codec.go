package fleetapp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fleetcare/backend/internal/domain/fleet"
	"github.com/fleetcare/backend/internal/infrastructure/kvstore"
)

// decode unmarshals a stored JSON document into a record type
func decode[T any](raw []byte) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("failed to decode stored record: %w", err)
	}
	return v, nil
}

// encode marshals a record for storage
func encode(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return raw, nil
}

// scanAll fetches and decodes every record under prefix
func scanAll[T any](ctx context.Context, store kvstore.Store, prefix string) ([]T, error) {
	raws, err := store.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode[T](raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// getRecord fetches and decodes a single record; notFound is returned when
// the key is absent
func getRecord[T any](ctx context.Context, store kvstore.Store, key string, notFound error) (T, error) {
	var zero T
	raw, err := store.Get(ctx, key)
	if err == kvstore.ErrKeyNotFound {
		return zero, notFound
	}
	if err != nil {
		return zero, err
	}
	return decode[T](raw)
}

// putRecord encodes and stores a record
func putRecord(ctx context.Context, store kvstore.Store, key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

// sortByDateDesc sorts records newest-first by the date extracted with
// dateOf. Unparseable dates sort last as a group; ties and the unparseable
// group fall back to string order so the result is deterministic.
func sortByDateDesc[T any](items []T, dateOf func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := dateOf(items[i]), dateOf(items[j])
		ti, erri := fleet.ParseDate(di)
		tj, errj := fleet.ParseDate(dj)
		if erri != nil && errj != nil {
			return di > dj
		}
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return di > dj
	})
}

// nowRFC3339 formats a timestamp the way records store created_at/updated_at
func nowRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
