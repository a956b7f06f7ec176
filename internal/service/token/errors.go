package token

import "errors"

var (
	ErrTokenInvalid = errors.New("invalid confirmation token")
	ErrTokenExpired = errors.New("confirmation token expired")
)
