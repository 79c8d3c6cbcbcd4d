package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrNoteNotFound indicates that note was not found
	ErrNoteNotFound = errors.New("note not found")

	// ErrShareAlreadyExists indicates the note is already shared with this user
	ErrShareAlreadyExists = errors.New("share already exists")

	// ErrLinkNotFound indicates that public link was not found
	ErrLinkNotFound = errors.New("public link not found")
)
