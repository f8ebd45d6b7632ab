package controller

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/devprofiler/internal/client/services"
	"github.com/dmitrijs2005/devprofiler/internal/common"
)

// Kind tags the outcome of a controller operation.
type Kind string

const (
	KindOK         Kind = "ok"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindState      Kind = "state"
	KindInternal   Kind = "internal"
)

// Result is what the presentation layer shows the user after an operation.
type Result struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (r Result) OK() bool { return r.Kind == KindOK }

func ok(msg string) Result { return Result{Kind: KindOK, Message: msg} }

// User-facing copy.
const (
	MsgWelcomeBack     = "Welcome back!"
	MsgInvalidLogin    = "Invalid email or password"
	MsgPasswordsDiffer = "Passwords don't match"
	MsgPasswordShort   = "Password must be at least 8 characters"
	MsgEmailRequired   = "Email is required"
	MsgUserExists      = "User already exists"
	MsgAccountCreated  = "Account created successfully!"
	MsgLoggedOut       = "Logged out successfully"
	MsgDeviceAdded     = "Device added successfully"
	MsgDeviceUpdated   = "Device updated successfully"
	MsgDeviceDeleted   = "Device deleted successfully"
	MsgDeviceNotFound  = "Device not found"
	MsgNotSignedIn     = "Please sign in first"
	MsgAlreadySignedIn = "Already signed in, log out first"
	MsgNothingToDelete = "No device is awaiting deletion"
	MsgInternal        = "Something went wrong, see the log for details"
)

// resultFromError maps service errors onto results. Unknown errors become
// KindInternal; the caller is expected to have logged them.
func resultFromError(err error) Result {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch):
		return Result{Kind: KindValidation, Message: MsgPasswordsDiffer}
	case errors.Is(err, services.ErrPasswordTooShort):
		return Result{Kind: KindValidation, Message: MsgPasswordShort}
	case errors.Is(err, services.ErrEmailRequired):
		return Result{Kind: KindValidation, Message: MsgEmailRequired}
	case errors.Is(err, common.ErrorValidation):
		return Result{Kind: KindValidation, Message: sentence(err.Error())}
	case errors.Is(err, common.ErrorConflict):
		return Result{Kind: KindConflict, Message: MsgUserExists}
	case errors.Is(err, common.ErrorUnauthorized):
		return Result{Kind: KindAuth, Message: MsgInvalidLogin}
	case errors.Is(err, common.ErrorNotFound):
		return Result{Kind: KindNotFound, Message: MsgDeviceNotFound}
	}
	return Result{Kind: KindInternal, Message: MsgInternal}
}

// sentence upper-cases the first letter of s.
func sentence(s string) string {
	s = strings.TrimSpace(s)
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
