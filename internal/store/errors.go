package store

import "errors"

var ErrNotFound = errors.New("todo not found")
var ErrNegativeLimit = errors.New("limit cannot be negative")
