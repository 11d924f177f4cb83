package billplz

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrNullBody         = errors.New("response body is null")
)

type errorEnvelope struct {
	Error *struct {
		Type    string          `json:"type"`
		Message json.RawMessage `json:"message"`
	} `json:"error"`
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

// decodeResponse turns a typed endpoint's response into T. A non-2xx
// response carrying the error envelope becomes a KindAPI error. Any other
// non-2xx response is a KindParse error that keeps the status code, even if
// the body happens to decode as T. A JSON null body is never a value.
func decodeResponse[T any](resp *rawResponse) (*T, error) {
	if !isSuccess(resp.StatusCode) {
		if apiErr := parseErrorEnvelope(resp); apiErr != nil {
			return nil, apiErr
		}
	}

	var out *T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, &Error{Kind: KindParse, StatusCode: resp.StatusCode, Err: err}
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &Error{Kind: KindParse, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}
	if out == nil {
		return nil, &Error{Kind: KindParse, StatusCode: resp.StatusCode, Err: ErrNullBody}
	}
	return out, nil
}

func parseErrorEnvelope(resp *rawResponse) *Error {
	var env errorEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil || env.Error == nil {
		return nil
	}

	message, ok := envelopeMessage(env.Error.Message)
	if !ok || (env.Error.Type == "" && message == "") {
		return nil
	}
	return &Error{
		Kind:       KindAPI,
		Type:       env.Error.Type,
		Message:    message,
		StatusCode: resp.StatusCode,
	}
}

// envelopeMessage accepts a plain string or, as Billplz sends for
// validation failures, a list of strings.
func envelopeMessage(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", "), true
	}
	return "", false
}

// passthrough returns the body verbatim whatever the status.
func passthrough(resp *rawResponse) string {
	return string(resp.Body)
}
