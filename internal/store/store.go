// Package store abstracts the document store behind a small generic
// collection interface. Every record is a flat document addressed by its
// "id" field; filters are equality matches on top-level fields and updates
// set top-level fields. Backends exist for MongoDB, MySQL (one JSON
// document per row) and memory.
package store

import (
	"context"
	"errors"
	"regexp"
)

// ErrNotFound is returned when no document matches a filter on FindOne,
// UpdateOne or DeleteOne.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a document with the same id already exists.
var ErrDuplicate = errors.New("duplicate document id")

// Filter holds equality conditions on top-level document fields. An empty
// filter matches every document.
type Filter map[string]any

// Set lists the top-level fields to overwrite on a matched document.
type Set map[string]any

// Sort orders FindMany results by a single field. A nil *Sort keeps
// insertion order.
type Sort struct {
	Field string
	Desc  bool
}

// Collection is the storage contract every resource manager depends on.
type Collection[T any] interface {
	InsertOne(ctx context.Context, doc T) error
	InsertMany(ctx context.Context, docs []T) error
	FindOne(ctx context.Context, filter Filter) (T, error)
	FindMany(ctx context.Context, filter Filter, sort *Sort, limit int) ([]T, error)
	UpdateOne(ctx context.Context, filter Filter, set Set) error
	DeleteOne(ctx context.Context, filter Filter) error
	Distinct(ctx context.Context, field string) ([]string, error)
	CountAll(ctx context.Context) (int64, error)
}

// ByID is the filter used for every single-record lookup.
func ByID(id string) Filter { return Filter{"id": id} }

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// validField reports whether name can be used as a document field. Backends
// that interpolate field names into queries must reject anything else.
func validField(name string) bool { return fieldName.MatchString(name) }
