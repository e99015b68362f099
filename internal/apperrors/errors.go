package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found for the
// calling owner.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a drawer state-machine violation: opening a cash
// session while one is already open, or mutating/closing when none is.
var ErrConflict = errors.New("conflicting state")

// ErrInsufficientStock indicates a sale requested more units than the product
// currently holds. Wrapping errors carry the product name and the available
// quantity.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unclassified internal fault. Handlers must not
// surface wrapped detail beyond a human-readable message.
var ErrInternal = errors.New("internal error")
