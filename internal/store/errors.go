package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameAlreadyExists is returned when an attempt to register a new
	// user fails because the user name is already taken.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrDuplicateKey is returned when a statement violates a unique or
	// primary key constraint. Repositories translate it to a domain error.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCollectionFull is returned when adding an item would exceed the
	// configured collection limit.
	ErrCollectionFull = errors.New("collection is full")

	// ErrItemNotFound is returned when removing an item that is not in the
	// collection.
	ErrItemNotFound = errors.New("item is not in collection")

	// ErrUnsupportedDSN is returned when the DSN scheme matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrTemporarilyUnavailable marks driver errors classified as transient
	// (lost connection, lock contention, serialization failure).
	ErrTemporarilyUnavailable = errors.New("database temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
