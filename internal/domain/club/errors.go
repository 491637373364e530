package club

import "errors"

var (
	ErrClubNotFound            = errors.New("club not found")
	ErrNameRequired            = errors.New("club name is required")
	ErrCityRequired            = errors.New("club city is required")
	ErrInvalidOrganizationType = errors.New("invalid organization type")
	ErrDuplicateJoinRequest    = errors.New("a join request for this club is already pending")
	ErrJoinRequestNotFound     = errors.New("join request not found")
)
