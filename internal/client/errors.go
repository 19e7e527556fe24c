package client

import "errors"

// ErrInvalidApp is returned by NewApp when a required dependency is missing.
var ErrInvalidApp = errors.New("invalid client app")
