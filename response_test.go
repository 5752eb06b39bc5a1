package sanity_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sanity "github.com/sanity-client/sanity-go"
)

func TestResponse_DecodeResult(t *testing.T) {
	resp := &sanity.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"ms": 3, "query": "*", "result": [{"name": "Ada"}]}`),
	}

	var authors []struct {
		Name string `json:"name"`
	}
	require.NoError(t, resp.DecodeResult(&authors))
	require.Len(t, authors, 1)
	assert.Equal(t, "Ada", authors[0].Name)
}

func TestResponse_Decode(t *testing.T) {
	resp := &sanity.Response{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"transactionId": "txn-1"}`),
	}

	var body struct {
		TransactionID string `json:"transactionId"`
	}
	require.NoError(t, resp.Decode(&body))
	assert.Equal(t, "txn-1", body.TransactionID)
}

func TestResponse_Err(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantNil bool
		wantMsg string
	}{
		{"success", http.StatusOK, `{"result": []}`, true, ""},
		{"error envelope", http.StatusForbidden, `{"error": {"type": "forbidden", "description": "no mutate grant"}}`, false, "no mutate grant"},
		{"opaque body", http.StatusBadGateway, `upstream unavailable`, false, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &sanity.Response{StatusCode: tt.status, Body: []byte(tt.body)}

			err := resp.Err()
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var apiErr *sanity.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestResponse_DecodeMalformed(t *testing.T) {
	resp := &sanity.Response{StatusCode: http.StatusOK, Body: []byte(`not json`)}

	var dst map[string]any
	assert.Error(t, resp.Decode(&dst))
	assert.Error(t, resp.DecodeResult(&dst))
}
