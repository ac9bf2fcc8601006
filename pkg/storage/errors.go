package storage

import "errors"

// Transaction state errors shared by all storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin when the storage handle is already
	// bound to an open transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback when the storage handle is
	// not bound to a transaction.
	ErrNotInTx = errors.New("not in tx")
)
