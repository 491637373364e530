package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrNameRequired    = errors.New("first name and last name are required")
	ErrAlreadyInClub   = errors.New("user already belongs to a club")
	ErrNotClubMember   = errors.New("user is not a member of this club")
	ErrSelfFollow      = errors.New("users cannot follow themselves")
	ErrSessionNotFound = errors.New("session not found")
)
