package campussdk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a Gateway failure.
type ErrorKind string

const (
	// KindBackendUnavailable: the host answered but not with JSON (wrong
	// port, proxy error page, a response this client cannot decode).
	KindBackendUnavailable ErrorKind = "backend_unavailable"

	// KindBackendUnreachable: transport-level failure, no response at all.
	KindBackendUnreachable ErrorKind = "backend_unreachable"

	// KindSessionExpired: 401 whose message mentions the token. The local
	// session has already been cleared when this is returned.
	KindSessionExpired ErrorKind = "session_expired"

	// KindRequestFailed: any other non-2xx status.
	KindRequestFailed ErrorKind = "request_failed"
)

// User-facing messages, in the language of the deployed front end.
const (
	MessageBackendUnavailable = "الخادم غير متاح. تأكد من تشغيل Backend"
	MessageBackendUnreachable = "فشل الاتصال بالخادم. تأكد من أن Backend يعمل على المنفذ 8080"
	MessageSessionExpired     = "انتهت صلاحية الجلسة. يرجى تسجيل الدخول مرة أخرى"
	MessageRequestFailed      = "حدث خطأ في الاتصال بالخادم"
	MessageOffline            = "لا يمكن الاتصال بالخادم"

	// Local failures, reported without a network call.
	MessageInvalidStatus   = "الحالة غير صالحة"
	MessageSessionNotSaved = "تعذر حفظ الجلسة"
)

// Error is the only error type the Gateway returns for a completed call.
type Error struct {
	Kind ErrorKind

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	// Message is suitable for display. For KindRequestFailed it is the
	// server's own message when one was supplied.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrBackendUnavailable = &Error{Kind: KindBackendUnavailable}
	ErrBackendUnreachable = &Error{Kind: KindBackendUnreachable}
	ErrSessionExpired     = &Error{Kind: KindSessionExpired}
	ErrRequestFailed      = &Error{Kind: KindRequestFailed}

	// ErrNotSignedIn is returned by SessionManager.Require when there is no
	// usable session for the requested role.
	ErrNotSignedIn = errors.New("campussdk: not signed in")
)

// KindOf returns the kind of err. Errors that did not come from the Gateway
// (encoding a request body, for instance) count as KindRequestFailed.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindRequestFailed
}

func unavailable(status int, cause error) *Error {
	return &Error{
		Kind:       KindBackendUnavailable,
		StatusCode: status,
		Message:    MessageBackendUnavailable,
		Err:        cause,
	}
}

func unreachable(cause error) *Error {
	return &Error{
		Kind:    KindBackendUnreachable,
		Message: MessageBackendUnreachable,
		Err:     cause,
	}
}

// isTokenExpiry reports whether a 401 message refers to the bearer token.
func isTokenExpiry(message string) bool {
	return strings.Contains(strings.ToLower(message), "token")
}

// errorBody is the part of a failed response the Gateway reads. Flask-JWT
// reports its own failures under "msg" rather than "message".
type errorBody struct {
	Message string `json:"message"`
	Msg     string `json:"msg"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Msg
}

func requestFailed(status int, message string) *Error {
	if message == "" {
		message = MessageRequestFailed
	}
	return &Error{
		Kind:       KindRequestFailed,
		StatusCode: status,
		Message:    message,
		Err:        fmt.Errorf("HTTP %d", status),
	}
}
