package store

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryCollection keeps documents in process memory in insertion order.
// Documents are held in their JSON form so filters and updates address the
// same field names the other backends use. It is safe for concurrent use.
type MemoryCollection[T any] struct {
	mu   sync.RWMutex
	docs []map[string]any
}

// NewMemoryCollection returns an empty in-memory collection.
func NewMemoryCollection[T any]() *MemoryCollection[T] {
	return &MemoryCollection[T]{}
}

func (m *MemoryCollection[T]) InsertOne(ctx context.Context, doc T) error {
	d, err := toDocument(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(Filter{"id": d["id"]}) >= 0 {
		return ErrDuplicate
	}
	m.docs = append(m.docs, d)
	return nil
}

func (m *MemoryCollection[T]) InsertMany(ctx context.Context, docs []T) error {
	for _, doc := range docs {
		if err := m.InsertOne(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemoryCollection[T]) FindOne(ctx context.Context, filter Filter) (T, error) {
	var zero T
	nf, err := normalizeFilter(filter)
	if err != nil {
		return zero, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(nf)
	if i < 0 {
		return zero, ErrNotFound
	}
	return fromDocument[T](m.docs[i])
}

// FindMany returns matching documents, ordered by srt when set.
func (m *MemoryCollection[T]) FindMany(ctx context.Context, filter Filter, srt *Sort, limit int) ([]T, error) {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	m.mu.RLock()
	type entry struct {
		seq int
		doc map[string]any
	}
	var hits []entry
	for i, d := range m.docs {
		if matches(d, nf) {
			hits = append(hits, entry{seq: i, doc: d})
		}
	}
	m.mu.RUnlock()

	if srt != nil {
		// Equal keys fall back to insertion order, reversed for descending
		// sorts so the latest insert comes first.
		sort.Slice(hits, func(i, j int) bool {
			c := compareValues(hits[i].doc[srt.Field], hits[j].doc[srt.Field])
			if c == 0 {
				c = hits[i].seq - hits[j].seq
			}
			if srt.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	matched := make([]map[string]any, 0, len(hits))
	for _, h := range hits {
		matched = append(matched, h.doc)
	}
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]T, 0, len(matched))
	for _, d := range matched {
		v, err := fromDocument[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *MemoryCollection[T]) UpdateOne(ctx context.Context, filter Filter, set Set) error {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return err
	}
	patch := make(map[string]any, len(set))
	for k, v := range set {
		nv, err := normalize(v)
		if err != nil {
			return err
		}
		patch[k] = nv
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(nf)
	if i < 0 {
		return ErrNotFound
	}
	updated := make(map[string]any, len(m.docs[i])+len(patch))
	for k, v := range m.docs[i] {
		updated[k] = v
	}
	for k, v := range patch {
		updated[k] = v
	}
	m.docs[i] = updated
	return nil
}

func (m *MemoryCollection[T]) DeleteOne(ctx context.Context, filter Filter) error {
	nf, err := normalizeFilter(filter)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(nf)
	if i < 0 {
		return ErrNotFound
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return nil
}

// Distinct never returns nil.
func (m *MemoryCollection[T]) Distinct(ctx context.Context, field string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	out := []string{}
	for _, d := range m.docs {
		v, ok := d[field]
		if !ok || v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MemoryCollection[T]) CountAll(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs)), nil
}

// indexOf must be called with the lock held.
func (m *MemoryCollection[T]) indexOf(filter Filter) int {
	for i, d := range m.docs {
		if matches(d, filter) {
			return i
		}
	}
	return -1
}

func matches(doc map[string]any, filter Filter) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func toDocument(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var d map[string]any
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return d, nil
}

func fromDocument[T any](d map[string]any) (T, error) {
	var out T
	b, err := json.Marshal(d)
	if err != nil {
		return out, fmt.Errorf("encode document: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("decode document: %w", err)
	}
	return out, nil
}

// normalize converts v into the shape json.Unmarshal produces so it compares
// equal to stored values (numbers become float64, times become strings).
func normalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return out, nil
}

func normalizeFilter(filter Filter) (Filter, error) {
	out := make(Filter, len(filter))
	for k, v := range filter {
		nv, err := normalize(v)
		if err != nil {
			return nil, err
		}
		out[k] = nv
	}
	return out, nil
}

// compareValues orders missing values first, then compares numbers, booleans,
// RFC 3339 timestamps and finally plain strings.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	switch av := a.(type) {
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			}
			return 1
		}
	case string:
		if bv, ok := b.(string); ok {
			at, aerr := time.Parse(time.RFC3339Nano, av)
			bt, berr := time.Parse(time.RFC3339Nano, bv)
			if aerr == nil && berr == nil {
				return at.Compare(bt)
			}
			return strings.Compare(av, bv)
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
