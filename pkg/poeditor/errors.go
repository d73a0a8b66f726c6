package poeditor

import "fmt"

// StatusFail is the status the client stamps on errors it detects itself
// (transport failures, unparseable envelopes). Service-reported errors keep
// whatever status the envelope carried.
const StatusFail = "fail"

// codeNotParsed marks failures where no envelope code exists: the body was
// not valid JSON or lacked the "response" key.
const codeNotParsed = "-1"

// Error is a service error: the request reached the network and failed,
// either at the HTTP layer, because the envelope was malformed, or because
// the service reported a business-level failure. Status, Code and Message are
// copied verbatim from the envelope when one was present.
type Error struct {
	// Status is the envelope status, or "fail" for failures detected
	// client-side.
	Status string

	// Code is the envelope error code (e.g. "4040" for an unknown project).
	// For HTTP-layer failures it is the numeric status code as a string; for
	// unparseable responses it is "-1".
	Code string

	// Message is the envelope message, or the HTTP reason phrase for
	// HTTP-layer failures.
	Message string

	// HTTPStatus is the HTTP status code of the response, when one was
	// received.
	HTTPStatus int
}

func (e *Error) Error() string {
	return fmt.Sprintf("poeditor: %s (status %q, code %s)", e.Message, e.Status, e.Code)
}

// ArgsError reports invalid caller-supplied arguments: an unknown file format
// or export filter, an unknown upload mode, or a missing required language
// code. It is always raised before any network I/O, so correcting the
// arguments and retrying is safe.
type ArgsError struct {
	Message string
}

func (e *ArgsError) Error() string {
	return "poeditor: " + e.Message
}

func newArgsError(format string, args ...any) *ArgsError {
	return &ArgsError{Message: fmt.Sprintf(format, args...)}
}
