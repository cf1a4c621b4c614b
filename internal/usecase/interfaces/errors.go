package interfaces

import "errors"

// ErrDuplicateKey is returned by repositories when a storage-level uniqueness
// constraint rejects a write (conditional put failed). Usecases translate it
// into the domain conflict the caller understands; two racing requests for
// the same key can therefore never both win.
var ErrDuplicateKey = errors.New("duplicate key")
