package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// vendor fails because a vendor with the same email already exists.
	// It is produced both by the pre-insert lookup and by the database
	// unique constraint, so a race between two concurrent registrations
	// for the same email resolves to exactly one winner.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoVendorWasFound is returned when a query expected to match at
	// least one vendor record produces an empty result set.
	ErrNoVendorWasFound = errors.New("no vendor was found")

	// ErrFirmAlreadyExists is returned when firm creation collides with an
	// existing firm name.
	ErrFirmAlreadyExists = errors.New("firm name already exists")

	// ErrNoFirmWasFound is returned when a lookup or delete targets a firm
	// that does not exist.
	ErrNoFirmWasFound = errors.New("no firm was found")

	// ErrNoProductWasFound is returned when a lookup or delete targets a
	// product that does not exist.
	ErrNoProductWasFound = errors.New("no product was found")
)

// Low-level database and file operation errors. These are returned (or
// wrapped) by repository methods when an operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrInvalidImageName is returned by the image store when a file name
	// would escape the uploads directory or is otherwise unusable.
	ErrInvalidImageName = errors.New("invalid image file name")

	// ErrImageNotFound is returned by the image store when the requested
	// file does not exist in the uploads directory.
	ErrImageNotFound = errors.New("image was not found")
)
