package sanity

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	json "github.com/goccy/go-json"
)

// Query pairs a GROQ query string with its named parameter bindings.
//
// Parameters referenced in the query as $name are bound by map key, without
// the $ prefix:
//
//	query := sanity.NewQuery("*[_type == 'site' && id == $siteId][0]", map[string]any{
//	    "siteId": 1,
//	})
//
// A binding missing for a referenced name is not a construction error; the
// server reports it when the query runs.
type Query struct {
	// GROQ is the raw query string.
	GROQ string

	// Params maps parameter names to JSON-encodable values.
	Params map[string]any
}

// NewQuery creates a Query. Pass nil params for a parameterless query.
func NewQuery(groq string, params map[string]any) Query {
	return Query{GROQ: groq, Params: params}
}

// encodeParams renders the query string and each binding as query-string
// entries. Bindings become "$name" keys with JSON-encoded values (strings
// quoted, numbers and booleans raw, objects and arrays as JSON text) so the
// remote parser can reconstruct the original type.
func (q Query) encodeParams() (url.Values, error) {
	values := url.Values{}
	values.Set("query", q.GROQ)
	for name, value := range q.Params {
		data, err := json.Marshal(value)
		if err != nil {
			return nil, newError(CodeRequestFailed, "encoding parameter $"+name, 0, err)
		}
		values.Set("$"+name, string(data))
	}
	return values, nil
}

// queryBody is the POST form of a query, used when the GET URL would be
// too long. Parameter names carry no $ prefix in this form.
type queryBody struct {
	Query  string         `json:"query"`
	Params map[string]any `json:"params,omitempty"`
}

// Fetch runs a read-only query against the dataset.
//
// The request is a GET unless the assembled URL exceeds the configured
// limit (see [WithGetURLLimit]), in which case the documented POST form is
// used; both forms are equivalent server-side.
//
// The response is returned without decoding, since the shape of the result
// depends on the query. A non-2xx status is a normal response here — only
// a transport failure produces an error, and it is surfaced exactly once
// with no retry.
func (c *Client) Fetch(ctx context.Context, query Query) (*Response, error) {
	values, err := query.encodeParams()
	if err != nil {
		return nil, err
	}

	endpoint := c.endpoint("data", "query")
	getURL := endpoint + "?" + values.Encode()

	if len(getURL) <= c.getURLLimit {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, getURL, http.NoBody)
		if err != nil {
			return nil, newError(CodeRequestFailed, "building query request", 0, err)
		}
		c.setHeaders(req)
		return c.do(req)
	}

	body, err := json.Marshal(queryBody{Query: query.GROQ, Params: query.Params})
	if err != nil {
		return nil, newError(CodeRequestFailed, "encoding query body", 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newError(CodeRequestFailed, "building query request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.do(req)
}
