package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Booked tour errors
	ErrTourNotFound    = errors.New("booked tour not found")
	ErrDuplicateTourID = errors.New("duplicate booked tour id")

	// Catalog errors
	ErrGuideNotFound       = errors.New("tour guide not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrDestinationMismatch = errors.New("destination does not belong to guide")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
