package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRequest_UnmarshalSplitsExtras(t *testing.T) {
	t.Parallel()

	body := []byte(`{
		"origin": "Chicago",
		"destination": "Dallas",
		"product": "Steel coils",
		"weight": 42000,
		"type": "Flatbed",
		"broker": "ACME Logistics",
		"hazmat": false
	}`)

	var req LoadRequest
	require.NoError(t, json.Unmarshal(body, &req))
	require.Equal(t, "Chicago", req.Origin)
	require.Equal(t, "Dallas", req.Destination)
	require.Equal(t, "Steel coils", req.Product)
	require.Equal(t, float64(42000), req.Weight)
	require.Equal(t, "Flatbed", req.Type)
	require.Equal(t, "ACME Logistics", req.Extra["broker"])
	require.Equal(t, false, req.Extra["hazmat"])
}

func TestLoadRequest_DropsServerManagedFields(t *testing.T) {
	t.Parallel()

	body := []byte(`{"origin":"A","id":"abc","_id":"def","dateAdded":123}`)

	var req LoadRequest
	require.NoError(t, json.Unmarshal(body, &req))
	require.Equal(t, "A", req.Origin)
	require.NotContains(t, req.Extra, "id")
	require.NotContains(t, req.Extra, "_id")
	require.NotContains(t, req.Extra, "dateAdded")
}

func TestLoadRequest_MissingFieldsZeroValued(t *testing.T) {
	t.Parallel()

	var req LoadRequest
	require.NoError(t, json.Unmarshal([]byte(`{"weight":"heavy"}`), &req))
	require.Zero(t, req.Weight)
	require.Empty(t, req.Origin)
}
