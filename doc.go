// Package sanity provides a Go client for the Sanity content API.
//
// Sanity is a headless CMS exposing its datasets over an HTTP API. This
// package covers the three core operations — running GROQ queries,
// submitting atomic mutation transactions, and uploading binary assets —
// without the caller hand-building HTTP requests.
//
// # Quick Start
//
// Build a config, create a client, and run a query:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    sanity "github.com/sanity-client/sanity-go"
//	)
//
//	func main() {
//	    cfg, err := sanity.NewConfig("abc123", "production").
//	        AccessToken("sk...").
//	        Build()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    client := sanity.NewClient(cfg)
//
//	    query := sanity.NewQuery("*[_type == 'author' && id == $id][0]", map[string]any{
//	        "id": 1,
//	    })
//	    resp, err := client.Fetch(context.Background(), query)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    var author map[string]any
//	    if err := resp.DecodeResult(&author); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(author["name"])
//	}
//
// # Mutations
//
// Mutations are submitted as one ordered, atomic transaction:
//
//	resp, err := client.Mutate(ctx, []sanity.Mutation{
//	    sanity.Create(map[string]any{"_type": "author", "name": "Ada"}),
//	    sanity.Patch(map[string]any{"id": "author-1", "set": map[string]any{"name": "Grace"}}),
//	    sanity.Delete("author-2"),
//	}, sanity.ReturnIDs(true))
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client := sanity.NewClient(cfg,
//	    sanity.WithTimeout(10*time.Second),
//	    sanity.WithLogger(logger),
//	)
//
// # Error Handling
//
// The SDK raises typed errors only for failures of its own: invalid
// configuration, transport-level failures, and local file reads. Check them
// with errors.Is against the sentinels:
//
//	resp, err := client.Fetch(ctx, query)
//	if errors.Is(err, sanity.ErrRequestFailed) {
//	    // network failure; the SDK performs no retries
//	}
//
// Application-level failures (permission errors, malformed queries) arrive
// as a completed [Response] with a non-2xx status; use [Response.Err] to
// turn one into an error value when that reading is wanted.
//
// # Thread Safety
//
// The [Client] is safe for concurrent use by multiple goroutines. It is
// read-only after construction; every operation, uploads included, takes a
// context.Context and runs on the same transport.
package sanity
