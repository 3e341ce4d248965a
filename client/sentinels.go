package client

import "errors"

// Sentinel errors returned (wrapped in *cterrors.Error) by Connect, Send, and Close.
var (
	ErrNotConnected     = errors.New("not connected")
	ErrAlreadyConnected = errors.New("already connected")
	ErrConnectionClosed = errors.New("connection closed")
	ErrConnectionLost   = errors.New("connection lost")
	ErrResponseTimeout  = errors.New("response timeout")
)
