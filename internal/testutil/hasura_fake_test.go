package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppmdesk.io/ppmdesk/internal/hasura"
)

func TestFakeHasura_RoutesByOperation(t *testing.T) {
	f := NewFakeHasura(t)
	f.Respond(hasura.OpGetAssetByPK, map[string]any{"asset_by_pk": map[string]any{"as_id": 7}})

	c := f.Client(t)
	var out struct {
		Asset struct {
			ID int `json:"as_id"`
		} `json:"asset_by_pk"`
	}
	require.NoError(t, c.Execute(context.Background(), hasura.OpGetAssetByPK, hasura.Vars{"as_id": 7}, &out))
	assert.Equal(t, 7, out.Asset.ID)

	calls := f.Calls(hasura.OpGetAssetByPK)
	require.Len(t, calls, 1)
	assert.Equal(t, 7, calls[0].Int("as_id"))
	assert.Equal(t, FakeAdminSecret, calls[0].Header.Get(hasura.HeaderAdminSecret))
}

func TestFakeHasura_UnregisteredOperationFails(t *testing.T) {
	f := NewFakeHasura(t)
	err := f.Client(t).Execute(context.Background(), hasura.OpGetSuppliers, nil, nil)

	var respErr *hasura.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "validation-failed", respErr.Code())
	assert.Equal(t, []string{hasura.OpGetSuppliers}, f.Operations())
}
