package core

import "errors"

// ErrInvalidNode is returned by traversal entry points when the start node
// is outside [0, NodeCount). Use errors.Is to detect it through wrapping.
var ErrInvalidNode = errors.New("invalid node id")
