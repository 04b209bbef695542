package service

import (
	"context"
	"errors"
	"io"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

var errStoreDown = errors.New("connection refused")

func quietLogger() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

// brokenCollection fails every call the way an unreachable store would.
type brokenCollection[T any] struct{}

func (brokenCollection[T]) InsertOne(context.Context, T) error     { return errStoreDown }
func (brokenCollection[T]) InsertMany(context.Context, []T) error  { return errStoreDown }
func (brokenCollection[T]) FindOne(context.Context, store.Filter) (T, error) {
	var zero T
	return zero, errStoreDown
}
func (brokenCollection[T]) FindMany(context.Context, store.Filter, *store.Sort, int) ([]T, error) {
	return nil, errStoreDown
}
func (brokenCollection[T]) UpdateOne(context.Context, store.Filter, store.Set) error {
	return errStoreDown
}
func (brokenCollection[T]) DeleteOne(context.Context, store.Filter) error { return errStoreDown }
func (brokenCollection[T]) Distinct(context.Context, string) ([]string, error) {
	return nil, errStoreDown
}
func (brokenCollection[T]) CountAll(context.Context) (int64, error) { return 0, errStoreDown }
