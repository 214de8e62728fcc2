package hasura

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestLoadCatalog_DefinesKnownOperations(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	for _, name := range KnownOperations {
		_, ok := c.Lookup(name)
		assert.True(t, ok, "operation %s missing", name)
	}
	assert.Len(t, c.Names(), len(KnownOperations), "catalog defines operations nothing issues")
}

func TestCatalog_StandaloneQueriesCarryOnlyTheirFragments(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	op, ok := c.Lookup(OpGetAssetByPK)
	require.True(t, ok)
	assert.Equal(t, ast.Query, op.Kind)
	assert.Contains(t, op.Query, "fragment AssetFields on asset")
	assert.NotContains(t, op.Query, "BuildingFields")
	assert.Equal(t, 1, strings.Count(op.Query, "query "))

	rows, _ := c.Lookup(OpGetServicePlanRows)
	assert.Contains(t, rows.Query, "fragment PlanFields")
	assert.Contains(t, rows.Query, "fragment BuildingPlanFields")

	atomic, _ := c.Lookup(OpBulkReviseAtomic)
	assert.Equal(t, ast.Mutation, atomic.Kind)
	assert.Contains(t, atomic.Query, "update_ppm_building_service_plan_many")
	assert.Contains(t, atomic.Query, "insert_ppm_bulk_change")
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name:  "anonymous operation",
			files: fstest.MapFS{"a.graphql": {Data: []byte(`{ __typename }`)}},
			want:  "anonymous",
		},
		{
			name: "duplicate across files",
			files: fstest.MapFS{
				"a.graphql": {Data: []byte(`query Same { __typename }`)},
				"b.graphql": {Data: []byte(`query Same { __typename }`)},
			},
			want: "already defined",
		},
		{
			name:  "syntax error",
			files: fstest.MapFS{"a.graphql": {Data: []byte(`query Broken {`)}},
			want:  "parse a.graphql",
		},
		{
			name:  "unknown fragment",
			files: fstest.MapFS{"a.graphql": {Data: []byte(`query Q { asset { ...Missing } }`)}},
			want:  "unknown fragment",
		},
		{
			name:  "no files",
			files: fstest.MapFS{},
			want:  "no documents",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog(tt.files, "*.graphql")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOperation_CheckVariables(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)
	op, _ := c.Lookup(OpSetAssetArchived)

	tests := []struct {
		name    string
		vars    map[string]any
		wantVar string
	}{
		{"all required present", map[string]any{"as_id": 1, "archived": false}, ""},
		{"optional included", map[string]any{"as_id": 1, "archived": true, "archived_by": "ops", "archived_date": "2025-01-01"}, ""},
		{"required missing", map[string]any{"as_id": 1}, "archived"},
		{"required nil", map[string]any{"as_id": nil, "archived": true}, "as_id"},
		{"undeclared", map[string]any{"as_id": 1, "archived": true, "extra": 1}, "extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := op.CheckVariables(tt.vars)
			if tt.wantVar == "" {
				assert.NoError(t, err)
				return
			}
			var varErr *VariableError
			require.ErrorAs(t, err, &varErr)
			assert.Equal(t, tt.wantVar, varErr.Variable)
			assert.Equal(t, OpSetAssetArchived, varErr.Operation)
		})
	}
}
