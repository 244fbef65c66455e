package nasa

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Kind classifies a failed call so the tool layer can report it without
// inspecting transport details.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUnavailable  Kind = "upstream_unavailable"
	KindTimeout      Kind = "timeout"
	KindMalformed    Kind = "malformed_response"
)

// Stages of the two-hop lookups used by metadata and captions.
const (
	StagePointer = "pointer"
	StageContent = "content"
)

// Error is returned by every Client method that fails.
type Error struct {
	Kind       Kind
	Op         string
	Stage      string
	StatusCode int
	URL        string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("nasa")
	if e.Op != "" {
		b.WriteString(" " + e.Op)
	}
	if e.Stage != "" {
		b.WriteString(" (" + e.Stage + ")")
	}
	b.WriteString(": " + string(e.Kind))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether repeating the same call may succeed.
func (e *Error) Retryable() bool {
	return e.Kind == KindUnavailable || e.Kind == KindTimeout
}

// AsError extracts the *Error from err, wrapping foreign errors as
// upstream_unavailable so callers always get a kind.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

// KindOf returns the Kind carried by err, or "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return AsError(err).Kind
}

func invalidInput(op, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Err: fmt.Errorf(format, args...)}
}

func malformed(format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Err: fmt.Errorf(format, args...)}
}

func transportError(err error) *Error {
	if isTimeout(err) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindUnavailable, Err: err}
}

func statusError(code int, body []byte) *Error {
	kind := KindUnavailable
	switch code {
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusBadRequest:
		kind = KindInvalidInput
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return &Error{Kind: kind, StatusCode: code, Err: errors.New(msg)}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// annotate fills in the operation and stage without overwriting values set
// closer to the failure.
func annotate(err error, op, stage string) error {
	e := AsError(err)
	if e.Op == "" {
		e.Op = op
	}
	if e.Stage == "" {
		e.Stage = stage
	}
	return e
}

// contentError marks a failure of the second hop. The pointer existed, so a
// 404 here means the content host is broken, not that the item lacks the
// resource.
func contentError(err error, op string) error {
	e := AsError(err)
	if e.Kind == KindNotFound || e.Kind == KindInvalidInput {
		e.Kind = KindUnavailable
	}
	return annotate(e, op, StageContent)
}
