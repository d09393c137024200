package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportRequestEvent_IsSeeded(t *testing.T) {
	seed := uint64(0)

	tests := []struct {
		name     string
		event    ExportRequestEvent
		expected bool
	}{
		{
			name:     "no seed",
			event:    ExportRequestEvent{JobID: uuid.New(), Kind: DatasetStates, Format: ExportFormatCSV},
			expected: false,
		},
		{
			name:     "zero seed is still a seed",
			event:    ExportRequestEvent{JobID: uuid.New(), Kind: DatasetStates, Format: ExportFormatCSV, Seed: &seed},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.IsSeeded())
		})
	}
}

func TestExportRequestEvent_JSON(t *testing.T) {
	seed := uint64(42)
	event := ExportRequestEvent{
		JobID:     uuid.New(),
		Kind:      DatasetDistricts,
		Format:    ExportFormatXLSX,
		Seed:      &seed,
		Regions:   []string{"South"},
		CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"districts"`)
	assert.Contains(t, string(data), `"format":"xlsx"`)
	assert.NotContains(t, string(data), `"states"`)

	var decoded ExportRequestEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Seed)
	assert.Equal(t, seed, *decoded.Seed)
	assert.Equal(t, event.Regions, decoded.Regions)
}

func TestExportJob_OmitsEmptyResultFields(t *testing.T) {
	job := ExportJob{
		JobID:  uuid.New(),
		Kind:   DatasetStates,
		Format: ExportFormatCSV,
		Status: ExportStatusQueued,
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"queued"`)
	assert.NotContains(t, string(data), `"rows"`)
	assert.NotContains(t, string(data), `"error"`)
	assert.NotContains(t, string(data), `"finished_at"`)
}

func TestExportFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv", ExportFormatCSV.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", ExportFormatXLSX.ContentType())
}

func TestDatasetKind_IsValid(t *testing.T) {
	for _, kind := range DatasetKinds() {
		assert.True(t, kind.IsValid(), kind)
	}
	assert.False(t, DatasetKind("weather").IsValid())
	assert.Equal(t, "", DatasetTimeSeries.StateColumn())
	assert.Equal(t, "parent_state", DatasetDistricts.StateColumn())
}
