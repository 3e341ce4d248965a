// Package cterrors defines the structured error type shared by the client,
// session, and auth layers.
package cterrors

import "fmt"

// Stage identifies which layer of the stack failed.
type Stage string

const (
	StageValidate  Stage = "validate"
	StageConnect   Stage = "connect"
	StageTransport Stage = "transport"
	StageCodec     Stage = "codec"
	StageSend      Stage = "send"
	StageAuth      Stage = "auth"
	StageToken     Stage = "token"
	StageClose     Stage = "close"
)

// Code is a stable, programmatic error identifier for user-facing operations.
type Code string

const (
	CodeTimeout                 Code = "timeout"
	CodeCanceled                Code = "canceled"
	CodeInvalidOption           Code = "invalid_option"
	CodeNotConnected            Code = "not_connected"
	CodeAccountNotAuthenticated Code = "account_not_authenticated"
	CodeConnectionClosed        Code = "connection_closed"
	CodeConnectionLost          Code = "connection_lost"
	CodeFrameTooLarge           Code = "frame_too_large"
	CodeUnknownPayloadType      Code = "unknown_payload_type"
	CodeMalformedPayload        Code = "malformed_payload"
	CodeIO                      Code = "io_error"
	CodeDialFailed              Code = "dial_failed"
	CodeAppAuthFailed           Code = "app_auth_failed"
	CodeAccountAuthFailed       Code = "account_auth_failed"
	CodeServerError             Code = "server_error"
	CodeTokenError              Code = "token_error"
	CodeMissingAccessToken      Code = "missing_access_token"
	CodeMissingCredentials      Code = "missing_credentials"
)

// Error is a structured, programmatically identifiable error for user-facing operations.
type Error struct {
	Stage Stage
	Code  Code
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Stage, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Stage, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func Wrap(stage Stage, code Code, err error) error {
	return &Error{Stage: stage, Code: code, Err: err}
}
