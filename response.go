package sanity

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// Response is the fully-buffered result of an API round-trip.
//
// The SDK performs no status-code classification of its own: a 4xx or 5xx
// arrives here exactly like a 2xx, with the error envelope in Body.
// [Response.IsSuccess] and [Response.Err] are opt-in helpers for callers
// that want a conventional reading.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the whole response body into dst.
func (r *Response) Decode(dst any) error {
	if err := json.Unmarshal(r.Body, dst); err != nil {
		return newError(CodeAPI, "decoding response body", r.StatusCode, err)
	}
	return nil
}

// DecodeResult unwraps the {"result": ...} envelope carried by successful
// query and mutate responses and unmarshals the result into dst.
func (r *Response) DecodeResult(dst any) error {
	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(r.Body, &envelope); err != nil {
		return newError(CodeAPI, "decoding response envelope", r.StatusCode, err)
	}
	if err := json.Unmarshal(envelope.Result, dst); err != nil {
		return newError(CodeAPI, "decoding result", r.StatusCode, err)
	}
	return nil
}

// apiErrorEnvelope is the error body the service returns with non-2xx
// statuses.
type apiErrorEnvelope struct {
	Error struct {
		Type        string `json:"type"`
		Description string `json:"description"`
	} `json:"error"`
}

// Err returns a typed error describing the response when the status code
// falls outside the 2xx range, and nil otherwise.
//
// The SDK never calls this itself; interpreting application-level failures
// is left to the caller:
//
//	resp, err := client.Fetch(ctx, query)
//	if err != nil {
//	    return err // transport failure
//	}
//	if err := resp.Err(); err != nil {
//	    return err // the API rejected the query
//	}
func (r *Response) Err() error {
	if r.IsSuccess() {
		return nil
	}
	message := http.StatusText(r.StatusCode)
	var envelope apiErrorEnvelope
	if err := json.Unmarshal(r.Body, &envelope); err == nil && envelope.Error.Description != "" {
		message = envelope.Error.Description
	}
	return newError(CodeAPI, message, r.StatusCode, nil)
}
