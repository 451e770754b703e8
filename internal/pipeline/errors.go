// Package pipeline defines the error taxonomy and the handler result type
// shared by the ingest and summarize handlers.
//
// Every failure inside a handler is classified into exactly one Kind and
// converted to a Response at the handler boundary. Nothing propagates as an
// uncaught fault: both handlers are fired by asynchronous events and the
// Response is only ever observed through logs and the returned status.
package pipeline

import (
	"errors"
	"fmt"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// Kind classifies a handler failure.
type Kind int

const (
	// KindInvalidInput - the trigger payload is unusable (e.g. a source key
	// with no file extension, or a malformed event envelope).
	KindInvalidInput Kind = iota
	// KindStorageError - an object store read or write failed.
	KindStorageError
	// KindParseError - the raw transcript is not valid JSON.
	KindParseError
	// KindServiceError - the transcription service returned a non-success
	// response to a job submission.
	KindServiceError
	// KindModelInvocationError - the inference service returned a
	// non-success response.
	KindModelInvocationError
	// KindUpstreamJobFailed - the transcription job itself failed upstream.
	KindUpstreamJobFailed
	// KindUnexpectedState - the job status is neither COMPLETED nor FAILED.
	// The handler does not reschedule itself; re-invocation is the event
	// source's responsibility.
	KindUnexpectedState
)

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindStorageError:
		return "StorageError"
	case KindParseError:
		return "ParseError"
	case KindServiceError:
		return "ServiceError"
	case KindModelInvocationError:
		return "ModelInvocationError"
	case KindUpstreamJobFailed:
		return "UpstreamJobFailed"
	case KindUnexpectedState:
		return "UnexpectedState"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", k)
	}
}

// statusCode maps a kind to the status reported in the Response when the
// upstream service did not supply one.
func (k Kind) statusCode() int {
	switch k {
	case KindInvalidInput, KindStorageError, KindParseError, KindUpstreamJobFailed:
		return 400
	default:
		return 500
	}
}

// Error is a classified handler failure. It wraps the underlying cause, if
// any, so callers can still inspect it with errors.Is / errors.As.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a classified error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the taxonomy kind from err. Unclassified errors report
// KindUnexpectedState; callers should classify before reaching the boundary.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnexpectedState
}

// UpstreamStatus returns the HTTP status code carried by an AWS SDK response
// error, or 0 if the error carries none (connection failures, mocks).
func UpstreamStatus(err error) int {
	var re *awshttp.ResponseError
	if errors.As(err, &re) {
		return re.HTTPStatusCode()
	}
	return 0
}

// Response is the Lambda-style invocation result. There is no synchronous
// caller; the response surfaces in logs and in the function's return value.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// OK builds a success response.
func OK(body string) Response {
	return Response{StatusCode: 200, Body: body}
}

// Fail converts a classified error into a Response. If the underlying cause
// carries an upstream HTTP status, that status wins over the kind's default.
func Fail(err error) Response {
	kind := KindOf(err)
	status := kind.statusCode()
	if s := UpstreamStatus(err); s != 0 {
		status = s
	}
	return Response{StatusCode: status, Body: err.Error()}
}
