package store

import "errors"

// Domain errors returned by the repositories. Callers match them with
// [errors.Is].
var (
	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the users_email_key unique
	// constraint rejects an insert or update.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNameAlreadyExists is returned when the users_user_name_key
	// unique constraint rejects an insert or update.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrPasswordChanged is returned by the compare-and-swap password update
	// when the stored digest no longer matches the expected one.
	ErrPasswordChanged = errors.New("password was changed concurrently")

	// ErrResetChallengeNotFound is returned when no unexpired reset
	// challenge matches the presented secret hash.
	ErrResetChallengeNotFound = errors.New("reset challenge not found")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrBlogNotFound is returned when no blog row matches the lookup, or
	// the row is owned by another user.
	ErrBlogNotFound = errors.New("blog not found")

	// ErrConstraintViolation is returned when a CHECK or NOT NULL
	// constraint rejects a write.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating over a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
