package campussdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// result is satisfied by every *XxxResult through the embedded Envelope.
type result[T any] interface {
	*T
	envelope() *Envelope
}

// defaulter fills empty collections so callers can range without nil checks.
type defaulter interface {
	applyDefaults()
}

// invoke runs one Gateway call and folds the outcome into T's envelope.
// It never returns an error.
func invoke[T any, PT result[T]](ctx context.Context, c *SDKClient, method, path string, body any) T {
	var out T
	ptr := PT(&out)

	raw, err := c.Do(ctx, method, path, body, nil)
	if err == nil {
		if decodeErr := json.Unmarshal(raw, ptr); decodeErr != nil {
			out = *new(T)
			err = unavailable(http.StatusOK, fmt.Errorf("failed to decode response: %w", decodeErr))
			c.logger.WarnContext(ctx, "Undecodable response", "method", method, "path", path, "error", decodeErr)
		}
	}

	env := ptr.envelope()
	switch {
	case err != nil:
		*env = failure(err)
	case !env.Success:
		// 2xx with success:false is still a failed call.
		env.Kind = KindRequestFailed
		if env.Message == "" {
			env.Message = MessageRequestFailed
		}
	default:
		env.Kind = ""
	}

	if d, ok := any(ptr).(defaulter); ok {
		d.applyDefaults()
	}
	return out
}

// failure converts a Gateway error into the failed envelope.
func failure(err error) Envelope {
	env := Envelope{Success: false, Kind: KindOf(err)}

	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		env.Message = e.Message
	} else {
		env.Message = MessageRequestFailed
	}
	return env
}

// failed builds a failed envelope of type T without a network call, for
// arguments rejected locally.
func failed[T any, PT result[T]](kind ErrorKind, message string) T {
	var out T
	*PT(&out).envelope() = Envelope{Success: false, Kind: kind, Message: message}
	if d, ok := any(PT(&out)).(defaulter); ok {
		d.applyDefaults()
	}
	return out
}
