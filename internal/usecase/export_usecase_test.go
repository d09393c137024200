package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/broadband-analytics/internal/domain"
	apperrors "github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/table"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
)

func newExportUseCase(cache *MockCacheRepository) *usecase.ExportUseCase {
	return usecase.NewExportUseCase(newDatasetUseCase(cache), zap.NewNop())
}

func TestExportUseCase_CSV(t *testing.T) {
	uc := newExportUseCase(&MockCacheRepository{})

	file, err := uc.Export(context.Background(), dto.ExportRequest{
		DatasetRequest: dto.DatasetRequest{Kind: string(domain.DatasetStates)},
		Format:         string(domain.ExportFormatCSV),
	})
	require.NoError(t, err)

	assert.Equal(t, "rural_broadband_states.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)
	assert.Equal(t, 30, file.Rows)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 31)
	assert.Equal(t, table.Schema[domain.StateRecord](), records[0])
}

func TestExportUseCase_CSVDatesAsDays(t *testing.T) {
	uc := newExportUseCase(&MockCacheRepository{})

	file, err := uc.Export(context.Background(), dto.ExportRequest{
		DatasetRequest: dto.DatasetRequest{Kind: string(domain.DatasetTimeSeries)},
		Format:         string(domain.ExportFormatCSV),
	})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 61)
	assert.Equal(t, "2024-03-01", records[60][0])
}

func TestExportUseCase_XLSX(t *testing.T) {
	uc := newExportUseCase(passthroughCache())

	file, err := uc.Export(context.Background(), dto.ExportRequest{
		DatasetRequest: dto.DatasetRequest{
			Kind:    string(domain.DatasetDistricts),
			Seed:    ptrUint64(5),
			Regions: []string{"Northeast"},
		},
		Format: string(domain.ExportFormatXLSX),
	})
	require.NoError(t, err)

	assert.Equal(t, "rural_broadband_districts_seed5.xlsx", file.Filename)
	assert.Equal(t, domain.ExportFormatXLSX.ContentType(), file.ContentType)

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(string(domain.DatasetDistricts))
	require.NoError(t, err)
	require.Len(t, rows, file.Rows+1)
	assert.Equal(t, table.Schema[domain.DistrictRecord](), rows[0])
}

func TestEncodeFrame_UnsupportedFormat(t *testing.T) {
	frame := table.New("a")
	_, err := usecase.EncodeFrame(frame, domain.ExportFormat("parquet"), "a")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFormat)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "rural_broadband_usage.csv", usecase.ExportFilename(domain.DatasetUsage, domain.ExportFormatCSV, nil))
	assert.Equal(t, "rural_broadband_priority_seed9.xlsx",
		usecase.ExportFilename(domain.DatasetPriority, domain.ExportFormatXLSX, ptrUint64(9)))
}
