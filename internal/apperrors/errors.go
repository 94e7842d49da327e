package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that an operation conflicts with the current state of a
// resource, e.g. saving over a submitted report or re-reversing a verification.
var ErrConflict = errors.New("conflict with current resource state")

// ErrForbidden indicates that the user is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrInternal indicates an unexpected failure that should not leak details to clients.
var ErrInternal = errors.New("internal error")
