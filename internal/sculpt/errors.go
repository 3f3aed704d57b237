package sculpt

import "errors"

// ErrConfiguration reports a missing or invalid mandatory constructor
// parameter. Surfaced synchronously at construction; not recoverable.
var ErrConfiguration = errors.New("invalid sculptor configuration")

// ErrResourceExhausted reports a render-target allocation failure at
// runtime. The caller may retry with a smaller resolution or abort.
var ErrResourceExhausted = errors.New("render target allocation failed")
