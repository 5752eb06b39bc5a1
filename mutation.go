package sanity

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Mutation is a single operation in an atomic transaction. Construct values
// with [Create], [CreateOrReplace], [CreateIfNotExists], [Patch], or
// [Delete]; the zero value is invalid.
//
// Mutations are ordered: the slice order handed to [Client.Mutate] is the
// commit order, and the whole batch commits together or not at all.
type Mutation struct {
	kind    mutationKind
	payload any
}

type mutationKind int

const (
	mutationInvalid mutationKind = iota
	mutationCreate
	mutationCreateOrReplace
	mutationCreateIfNotExists
	mutationPatch
	mutationDelete
)

// Create stages a document creation. The document must carry "_type"; when
// "_id" is absent the service assigns one.
func Create(document any) Mutation {
	return Mutation{kind: mutationCreate, payload: document}
}

// CreateOrReplace stages a document write that overwrites any existing
// document with the same "_id".
func CreateOrReplace(document any) Mutation {
	return Mutation{kind: mutationCreateOrReplace, payload: document}
}

// CreateIfNotExists stages a document creation that is a no-op when a
// document with the same "_id" already exists.
func CreateIfNotExists(document any) Mutation {
	return Mutation{kind: mutationCreateIfNotExists, payload: document}
}

// Patch stages a partial update. The patch spec references the target
// document by id and describes the fields to set, unset, or increment:
//
//	sanity.Patch(map[string]any{
//	    "id":  "person-1",
//	    "set": map[string]any{"name": "Remington Steele"},
//	})
func Patch(spec any) Mutation {
	return Mutation{kind: mutationPatch, payload: spec}
}

// Delete stages removal of the document with the given id.
func Delete(id string) Mutation {
	return Mutation{kind: mutationDelete, payload: id}
}

// MarshalJSON writes the wire shape for the variant: {"create": doc},
// {"createOrReplace": doc}, {"createIfNotExists": doc}, {"patch": spec}, or
// {"delete": {"id": id}}.
func (m Mutation) MarshalJSON() ([]byte, error) {
	switch m.kind {
	case mutationCreate:
		return json.Marshal(map[string]any{"create": m.payload})
	case mutationCreateOrReplace:
		return json.Marshal(map[string]any{"createOrReplace": m.payload})
	case mutationCreateIfNotExists:
		return json.Marshal(map[string]any{"createIfNotExists": m.payload})
	case mutationPatch:
		return json.Marshal(map[string]any{"patch": m.payload})
	case mutationDelete:
		return json.Marshal(map[string]any{"delete": map[string]any{"id": m.payload}})
	default:
		return nil, fmt.Errorf("sanity: invalid mutation")
	}
}

// MutateOption is a (name, value) pair appended to the mutate URL as a
// query-string parameter, in the order given. Booleans and numbers are
// encoded as raw literals (returnIds=true), strings without quotes.
type MutateOption struct {
	Name  string
	Value any
}

// ReturnIDs asks the server to include the ids of affected documents in
// the response.
func ReturnIDs(v bool) MutateOption {
	return MutateOption{Name: "returnIds", Value: v}
}

// ReturnDocuments asks the server to include the full affected documents
// in the response.
func ReturnDocuments(v bool) MutateOption {
	return MutateOption{Name: "returnDocuments", Value: v}
}

// DryRun validates the transaction server-side without committing it.
func DryRun(v bool) MutateOption {
	return MutateOption{Name: "dryRun", Value: v}
}

// Visibility controls when the transaction becomes visible to queries:
// "sync", "async", or "deferred".
func Visibility(mode string) MutateOption {
	return MutateOption{Name: "visibility", Value: mode}
}

// encodeMutateOptions builds the query string by hand; url.Values would
// sort the keys and lose the caller's ordering.
func encodeMutateOptions(opts []MutateOption) (string, error) {
	var b strings.Builder
	for i, opt := range opts {
		var encoded string
		if s, ok := opt.Value.(string); ok {
			encoded = s
		} else {
			data, err := json.Marshal(opt.Value)
			if err != nil {
				return "", newError(CodeRequestFailed, "encoding option "+opt.Name, 0, err)
			}
			encoded = string(data)
		}
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(opt.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(encoded))
	}
	return b.String(), nil
}

// Transaction is an ordered mutation batch with a caller-supplied id,
// letting the commit be correlated with history entries and listener
// events.
type Transaction struct {
	ID        string
	Mutations []Mutation
}

// NewTransaction mints a transaction with a random id.
func NewTransaction(mutations ...Mutation) Transaction {
	return Transaction{ID: uuid.NewString(), Mutations: mutations}
}

// transactionBody is the wire shape POSTed to the mutate endpoint.
type transactionBody struct {
	TransactionID string     `json:"transactionId,omitempty"`
	Mutations     []Mutation `json:"mutations"`
}

// Mutate submits the mutations as a single atomic transaction.
//
// The batch is wrapped as {"mutations": [...]} preserving slice order; the
// server applies all of it or none of it, and reports per-mutation failures
// inside the one response. Options are appended to the URL in the order
// given. Non-2xx statuses are returned as normal responses; only transport
// failures produce an error, with no retry.
func (c *Client) Mutate(ctx context.Context, mutations []Mutation, opts ...MutateOption) (*Response, error) {
	return c.mutate(ctx, transactionBody{Mutations: mutations}, opts)
}

// MutateTransaction submits a batch under the transaction's id. See
// [Client.Mutate] for the commit semantics.
func (c *Client) MutateTransaction(ctx context.Context, txn Transaction, opts ...MutateOption) (*Response, error) {
	return c.mutate(ctx, transactionBody{TransactionID: txn.ID, Mutations: txn.Mutations}, opts)
}

func (c *Client) mutate(ctx context.Context, body transactionBody, opts []MutateOption) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, newError(CodeRequestFailed, "encoding mutations", 0, err)
	}

	endpoint := c.endpoint("data", "mutate")
	if len(opts) > 0 {
		qs, err := encodeMutateOptions(opts)
		if err != nil {
			return nil, err
		}
		endpoint += "?" + qs
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, newError(CodeRequestFailed, "building mutate request", 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.do(req)
}
