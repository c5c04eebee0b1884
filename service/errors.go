package service

import (
	"errors"
)

// Domain errors returned by the member and sync services. The bot layer maps
// these to user-facing replies; anything else is a system error.
var (
	ErrMemberNotFound       = errors.New("member has not joined the community")
	ErrMemberAlreadyExists  = errors.New("member already joined")
	ErrNotPaired            = errors.New("member has no paired account")
	ErrAlreadyPaired        = errors.New("member already has a paired account")
	ErrAccountNotFound      = errors.New("account not found via riot api")
	ErrAccountAlreadyPaired = errors.New("account is already paired to another member")
)
