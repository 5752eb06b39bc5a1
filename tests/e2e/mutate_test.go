//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sanity "github.com/sanity-client/sanity-go"
)

func TestMutate_DryRun(t *testing.T) {
	client := newTestClient(t)
	skipUnlessWritable(t)
	ctx := newTestContext(t)

	resp, err := client.Mutate(ctx, []sanity.Mutation{
		sanity.Create(map[string]any{
			"_type": "author",
			"name":  "E2E Dry Run",
		}),
	}, sanity.DryRun(true), sanity.ReturnIDs(true))

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess(), "unexpected status %d: %s", resp.StatusCode, resp.Body)
}

func TestMutate_CreateAndDelete(t *testing.T) {
	client := newTestClient(t)
	skipUnlessWritable(t)
	ctx := newTestContext(t)

	const docID = "e2e.sanity-go-test-author"

	createResp, err := client.Mutate(ctx, []sanity.Mutation{
		sanity.CreateOrReplace(map[string]any{
			"_id":   docID,
			"_type": "author",
			"name":  "E2E Author",
		}),
	}, sanity.ReturnIDs(true))
	require.NoError(t, err)
	require.True(t, createResp.IsSuccess(), "create failed: %s", createResp.Body)

	deleteResp, err := client.Mutate(ctx, []sanity.Mutation{
		sanity.Delete(docID),
	})
	require.NoError(t, err)
	assert.True(t, deleteResp.IsSuccess(), "delete failed: %s", deleteResp.Body)
}
