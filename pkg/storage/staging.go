package storage

import (
	"context"
	"errors"
	"io"
)

// Staging scopes a batch of blob writes to one record mutation. Blobs put
// through it are deleted by Release unless Commit was called first, so a
// deferred Release undoes the uploads on every failing exit path.
type Staging struct {
	store     BlobStore
	staged    []Object
	committed bool
}

func NewStaging(store BlobStore) *Staging {
	return &Staging{store: store}
}

func (s *Staging) Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) (Object, error) {
	url, err := s.store.Put(ctx, key, body, contentType)
	if err != nil {
		return Object{}, err
	}
	obj := Object{Key: key, URL: url}
	s.staged = append(s.staged, obj)
	return obj, nil
}

// Staged lists the blobs written so far, in write order.
func (s *Staging) Staged() []Object {
	return append([]Object(nil), s.staged...)
}

// Commit marks the staged blobs as owned by a persisted record.
func (s *Staging) Commit() {
	s.committed = true
}

// Release removes every staged blob unless the batch was committed. It runs
// detached from ctx cancellation so an aborted request still cleans up.
func (s *Staging) Release(ctx context.Context) error {
	if s.committed || len(s.staged) == 0 {
		return nil
	}
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := len(s.staged) - 1; i >= 0; i-- {
		if err := s.store.Delete(ctx, s.staged[i].Key); err != nil {
			errs = append(errs, err)
		}
	}
	s.staged = nil
	return errors.Join(errs...)
}
