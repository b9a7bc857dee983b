package artic

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtwork_ValidateRequiresIDAndTitle(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"complete", `{"id": 1, "title": "t"}`, false},
		{"empty title allowed", `{"id": 1, "title": ""}`, false},
		{"nullable fields", `{"id": 1, "title": "t", "place_of_origin": null, "date_start": null}`, false},
		{"missing id", `{"title": "t"}`, true},
		{"null id", `{"id": null, "title": "t"}`, true},
		{"non-positive id", `{"id": 0, "title": "t"}`, true},
		{"missing title", `{"id": 3}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var art Artwork
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &art))
			err := art.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidRecord), "err = %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestArtwork_DisplayHelpers(t *testing.T) {
	var art Artwork
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5, "title": "Bowl", "inscriptions": "  marked\n\tunder  foot ",
		"date_start": -200, "date_end": 100
	}`), &art))

	assert.EqualValues(t, 5, art.RecordID())
	assert.Equal(t, "Bowl", art.TitleText())
	assert.Equal(t, "marked under foot", art.InscriptionText())
	assert.Equal(t, "-200", art.StartYear())
	assert.Equal(t, "100", art.EndYear())
	assert.Empty(t, art.Artist())
}

func TestListResponse_ValidateReportsRecordIndex(t *testing.T) {
	var resp ListResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"pagination": {"total": 2, "limit": 12},
		"data": [{"id": 1, "title": "ok"}, {"id": 2}]
	}`), &resp))

	err := resp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestRecordIDs_Empty(t *testing.T) {
	assert.Nil(t, RecordIDs(nil))
}
