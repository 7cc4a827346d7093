package session

import "errors"

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrNotLoggedIn   = errors.New("no user logged in")
	ErrBridgeClosed  = errors.New("session bridge closed")
	ErrBridgeStarted = errors.New("session bridge already started")
)
