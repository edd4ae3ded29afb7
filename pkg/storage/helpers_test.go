package storage

import (
	"encoding/json"
	"testing"

	"github.com/armsmith/armsmith/pkg/arm"
	"github.com/stretchr/testify/require"
)

// emit marshals a resource's template model and decodes it back for
// structural assertions.
func emit(t *testing.T, r arm.Resource) map[string]any {
	t.Helper()

	body, err := json.Marshal(r.JSONModel())
	require.NoError(t, err)

	var model map[string]any
	require.NoError(t, json.Unmarshal(body, &model))

	return model
}

func properties(t *testing.T, model map[string]any) map[string]any {
	t.Helper()

	props, ok := model["properties"].(map[string]any)
	require.True(t, ok, "model has no properties object")

	return props
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
