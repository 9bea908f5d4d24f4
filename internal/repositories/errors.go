package repositories

import "errors"

var (
	// ErrAlreadySubscribed indicates the newsletter email is already registered.
	ErrAlreadySubscribed = errors.New("newsletter repository: email already subscribed")
)
