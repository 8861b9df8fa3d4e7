package submission

import "errors"

var (
	ErrEmailTaken       = errors.New("email already recorded")
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadySubmitted = errors.New("test already submitted")
	ErrInvalidPhone     = errors.New("invalid mobile number")
)
