// Package errors provides structured error handling for seedshard. It
// defines sentinel errors, exit codes, and helpers for adding context,
// details, and suggestions to errors: a coded error type, an exit-code
// table, and Wrap/WithDetails/WithSuggestion helpers, narrowed to the
// error kinds this module's core actually raises.
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // General/unexpected error
	ExitInput   = 2 // Invalid input: parse, validation, or argument error
)

// CodedError is the structured error type for seedshard's CLI surface: a
// machine-readable code plus a human-readable message, optional details
// and a suggestion, and the exit code the CLI should return.
type CodedError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *CodedError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for CodedError, comparing by Code.
func (e *CodedError) Is(target error) bool {
	var t *CodedError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one per error kind this module's core raises.
var (
	ErrGeneral = &CodedError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidDictionary = &CodedError{
		Code:       "INVALID_DICTIONARY",
		Message:    "dictionary is unreadable or does not contain exactly 2048 words",
		Suggestion: "pass a valid word list with --dictionary-path, one word per line",
		ExitCode:   ExitInput,
	}

	ErrUnknownWord = &CodedError{
		Code:       "UNKNOWN_WORD",
		Message:    "word not found in the loaded dictionary",
		Suggestion: "check for typos against the loaded word list",
		ExitCode:   ExitInput,
	}

	ErrWrongWordCount = &CodedError{
		Code:     "WRONG_WORD_COUNT",
		Message:  "mnemonic did not contain exactly 24 words",
		ExitCode: ExitInput,
	}

	ErrChecksumMismatch = &CodedError{
		Code:       "CHECKSUM_MISMATCH",
		Message:    "declared checksum does not match the entropy",
		Suggestion: "re-check the words for transcription errors",
		ExitCode:   ExitInput,
	}

	ErrInvalidThreshold = &CodedError{
		Code:     "INVALID_THRESHOLD",
		Message:  "threshold and share count must satisfy 1 <= t <= n <= 255",
		ExitCode: ExitInput,
	}

	ErrDegenerateShares = &CodedError{
		Code:     "DEGENERATE_SHARES",
		Message:  "share id is 0 or duplicated in the reconstruction set",
		ExitCode: ExitInput,
	}

	ErrEmptyShareSet = &CodedError{
		Code:     "EMPTY_SHARE_SET",
		Message:  "reconstruct requires at least one share",
		ExitCode: ExitInput,
	}
)

// New creates a new CodedError with the given code and message.
func New(code, message string) *CodedError {
	return &CodedError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context, preserving a CodedError's
// code, details, suggestion, and exit code if err is one.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ce *CodedError
	if errors.As(err, &ce) {
		return &CodedError{
			Code:       ce.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ce.Message),
			Details:    ce.Details,
			Suggestion: ce.Suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CodedError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails attaches structured context to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ce *CodedError
	if errors.As(err, &ce) {
		return &CodedError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    details,
			Suggestion: ce.Suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CodedError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion attaches an actionable suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ce *CodedError
	if errors.As(err, &ce) {
		return &CodedError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    ce.Details,
			Suggestion: suggestion,
			Cause:      ce.Cause,
			ExitCode:   ce.ExitCode,
		}
	}

	return &CodedError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the exit code the CLI should return for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}

	return ExitGeneral
}

// Code returns the machine-readable code for err, or "GENERAL_ERROR" if err
// is not a CodedError.
func Code(err error) string {
	var ce *CodedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience, so callers need not import both
// packages under distinct names.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
