// Package repository defines the storage contract shared by every entity
// repository.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id has no matching row. Adapters translate
// driver-specific not-found results into this sentinel so the HTTP layer can
// map it uniformly.
var ErrNotFound = errors.New("record not found")

// Crud is the uniform contract every entity repository conforms to.
// T is the persisted entity, C the create input and U the update input;
// entities with richer needs (orders) instantiate it with composite inputs
// and may add extension methods alongside it.
type Crud[T, C, U any] interface {
	// GetAll returns every row. Result order is whatever the database
	// returns; callers must not rely on it.
	GetAll(ctx context.Context) ([]T, error)

	// GetDetail returns the row matching id, or ErrNotFound.
	GetDetail(ctx context.Context, id int64) (T, error)

	// Create persists a new row and returns it with the generated id and
	// all persisted columns.
	Create(ctx context.Context, in C) (T, error)

	// Update applies a full-column overwrite of the writable fields and
	// returns the updated row, or ErrNotFound when id does not exist.
	Update(ctx context.Context, id int64, in U) (T, error)

	// Delete removes the row and returns its previous state, or
	// ErrNotFound when id does not exist.
	Delete(ctx context.Context, id int64) (T, error)
}
