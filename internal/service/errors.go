package service

import "errors"

// ErrInvalidFields is returned, together with the validator error, when the
// fields of a create or update call fail local validation. Nothing is sent
// to the remote service in that case.
var ErrInvalidFields = errors.New("invalid fields")
