package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("too many attempts, try again later")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrRejected     = errors.New("request rejected")
)
