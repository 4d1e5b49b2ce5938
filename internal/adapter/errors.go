package adapter

import (
	"errors"
)

// ErrUnauthorized is returned when the storage provider rejects the access
// token. Handlers map it to a 401 so the client can re-authenticate instead
// of being shown a generic error.
var ErrUnauthorized = errors.New("provider rejected credentials")
