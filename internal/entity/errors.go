package entity

import (
	"errors"
)

var (
	ErrInvalidRecipient = errors.New("invalid recipient")
	ErrTransportFailure = errors.New("transport failure")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrUnauthenticated  = errors.New("unauthenticated")
)
