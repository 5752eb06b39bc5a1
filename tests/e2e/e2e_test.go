//go:build e2e

// Package e2e provides end-to-end tests for the Sanity Go SDK.
//
// These tests run against a real Sanity project and are skipped unless the
// environment provides one:
//
//	SANITY_PROJECT_ID=abc123 SANITY_DATASET=production \
//	SANITY_TOKEN=sk... go test -tags e2e ./tests/e2e
//
// Mutation and upload tests additionally require SANITY_TOKEN with write
// access and SANITY_WRITE=1, since they modify the dataset.
package e2e

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sanity "github.com/sanity-client/sanity-go"
)

// newTestClient builds a client from the environment, skipping the test
// when no project is configured.
func newTestClient(t *testing.T) *sanity.Client {
	t.Helper()

	projectID := os.Getenv("SANITY_PROJECT_ID")
	dataset := os.Getenv("SANITY_DATASET")
	if projectID == "" || dataset == "" {
		t.Skip("Skipping: SANITY_PROJECT_ID and SANITY_DATASET not set")
	}

	builder := sanity.NewConfig(projectID, dataset)
	if token := os.Getenv("SANITY_TOKEN"); token != "" {
		builder.AccessToken(token)
	}
	cfg, err := builder.Build()
	require.NoError(t, err)

	return sanity.NewClient(cfg, sanity.WithTimeout(30*time.Second))
}

// skipUnlessWritable skips tests that mutate the dataset unless explicitly
// enabled.
func skipUnlessWritable(t *testing.T) {
	t.Helper()
	if os.Getenv("SANITY_WRITE") != "1" {
		t.Skip("Skipping: set SANITY_WRITE=1 to run tests that modify the dataset")
	}
}

// newTestContext creates a context with a reasonable timeout for E2E tests.
func newTestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
