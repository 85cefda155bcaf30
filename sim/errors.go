package sim

import "errors"

// ErrInvalidArgument reports a parameter outside its valid domain,
// such as a non-positive rate or a negative step count. Call sites
// wrap it with context; test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
