package pet

import "errors"

var (
	// ErrInvalidPayload flags a missing or unusable body. Never retried,
	// never reaches the store.
	ErrInvalidPayload = errors.New("pet: invalid payload")

	// ErrMissingID flags an absent or blank `id` where one is required.
	ErrMissingID = errors.New("pet: missing id")

	// ErrIDMismatch flags an update whose body carries an `id` different
	// from the one addressed in the path.
	ErrIDMismatch = errors.New("pet: id in path does not match id in body")
)
