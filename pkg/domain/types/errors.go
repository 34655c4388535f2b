package types

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors shared by every store backend. Callers discriminate with
// errors.Is regardless of which backend produced the failure.
var (
	// ErrStoreUnavailable means the storage engine could not be opened at
	// all. The state layer degrades to an empty in-memory list on this.
	ErrStoreUnavailable = goerr.New("store unavailable")

	// ErrWriteFailed means an individual put or delete did not commit. The
	// already-applied in-memory change is kept and marked unsynced.
	ErrWriteFailed = goerr.New("write failed")

	// ErrSeedFailed means the one-time demo dataset could not be written.
	// Load resolves with an empty list instead of propagating this.
	ErrSeedFailed = goerr.New("seed failed")

	// ErrNotFound means the requested record does not exist.
	ErrNotFound = goerr.New("not found")
)
