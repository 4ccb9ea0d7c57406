package tagr

import "errors"

// ErrRootNotFound is returned by Mount when the selector matches nothing.
var ErrRootNotFound = errors.New("tagr: cannot find root element")
