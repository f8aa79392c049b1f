package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no bearer token is stored
	ErrTokenNotFound = errors.New("token not found")

	// ErrIdentityNotFound indicates that no cached identity is stored
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrSnapshotNotFound indicates that no cached snapshot exists
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
