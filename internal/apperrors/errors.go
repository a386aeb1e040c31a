package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindIO         Kind = "io"
	KindNetwork    Kind = "network"
	KindUpstream   Kind = "upstream"
	KindEvaluation Kind = "evaluation"
)

// Error pairs a user-facing message with the internal cause.
type Error struct {
	Kind Kind
	// SafeMessage is what dialogs show.
	SafeMessage string
	// Cause is kept for logs and errors.Is matching.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindValidation:
		return "Invalid input."
	case KindIO:
		return "File operation failed."
	case KindNetwork:
		return "Network request failed. Check your internet connection."
	case KindUpstream:
		return "The remote service rejected the request."
	case KindEvaluation:
		return "Error"
	default:
		return "Operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{Kind: kind, SafeMessage: msg, Cause: cause}
}

func Validation(safeMessage string) error {
	return New(KindValidation, safeMessage, nil)
}

func IO(safeMessage string, cause error) error {
	return New(KindIO, safeMessage, cause)
}

func Network(safeMessage string, cause error) error {
	return New(KindNetwork, safeMessage, cause)
}

func Upstream(safeMessage string, cause error) error {
	return New(KindUpstream, safeMessage, cause)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func Is(err error, kind Kind) bool {
	got, ok := KindOf(err)
	return ok && got == kind
}

// PublicMessage returns the text suitable for a dialog.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
