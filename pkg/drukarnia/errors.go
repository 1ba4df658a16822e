package drukarnia

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNotFound is returned when the queried object (user, article,
	// tag) does not exist. It is an expected outcome, not a failure of
	// the client or the API.
	ErrNotFound = errors.New("queried object does not exist")

	// ErrBadCredentials is returned by Login for a wrong email/password
	// pair.
	ErrBadCredentials = errors.New("supplied credentials are not correct")

	// ErrNoToken is returned by Login when the server did not send a
	// session token.
	ErrNoToken = errors.New("server did not return an auth token")
)

// decodeContextSize bounds the body excerpt carried by DecodeError.
const decodeContextSize = 30

// DecodeError reports a response body that could not be interpreted.
// Seeing one usually means the Drukarnia API has changed shape; retrying
// will reproduce it.
type DecodeError struct {
	Err error

	// Context is a short excerpt of the body around the failure, for
	// bug reports.
	Context string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response JSON failed (likely an API change) near %q: %v", e.Context, e.Err)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeJSON unmarshals body into T, wrapping failures in a DecodeError
// with a body excerpt around the reported offset.
func decodeJSON[T any](body string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return v, &DecodeError{
			Err:     err,
			Context: excerptAround(body, errorOffset(err)),
		}
	}
	return v, nil
}

// errorOffset extracts the byte offset from the json error types that
// carry one.
func errorOffset(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return 0
}

// excerptAround cuts a window of the body centered on offset.
func excerptAround(body string, offset int64) string {
	start := offset - decodeContextSize
	if start < 0 {
		start = 0
	}
	end := offset + decodeContextSize
	if end > int64(len(body)) {
		end = int64(len(body))
	}
	return body[start:end]
}
