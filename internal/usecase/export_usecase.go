package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/broadband-analytics/internal/domain"
	apperrors "github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/table"
	"github.com/broadband-analytics/internal/usecase/dto"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportUseCase выгружает таблицы в CSV и XLSX
type ExportUseCase struct {
	datasets *DatasetUseCase
	logger   *zap.Logger
}

// NewExportUseCase создает новый экземпляр ExportUseCase
func NewExportUseCase(datasets *DatasetUseCase, logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{
		datasets: datasets,
		logger:   logger,
	}
}

// Export генерирует таблицу с фильтрами запроса и кодирует её в запрошенный формат
func (uc *ExportUseCase) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error) {
	format := domain.ExportFormat(req.Format)

	result, err := uc.datasets.Generate(ctx, req.DatasetRequest)
	if err != nil {
		return nil, err
	}

	data, err := EncodeFrame(result.Frame, format, string(result.Kind))
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Dataset exported",
		zap.String("dataset", string(result.Kind)),
		zap.String("format", string(format)),
		zap.Int("rows", result.Frame.Len()),
		zap.Int("bytes", len(data)))

	return &dto.ExportFile{
		Filename:    ExportFilename(result.Kind, format, req.Seed),
		ContentType: format.ContentType(),
		Rows:        result.Frame.Len(),
		Data:        data,
	}, nil
}

// ExportFilename - имя файла выгрузки: rural_broadband_<kind>[_seed<seed>].<format>
func ExportFilename(kind domain.DatasetKind, format domain.ExportFormat, seed *uint64) string {
	name := "rural_broadband_" + string(kind)
	if seed != nil {
		name += fmt.Sprintf("_seed%d", *seed)
	}
	return name + "." + string(format)
}

// EncodeFrame кодирует таблицу; sheet - имя листа для XLSX
func EncodeFrame(frame *table.Frame, format domain.ExportFormat, sheet string) ([]byte, error) {
	switch format {
	case domain.ExportFormatCSV:
		return encodeCSV(frame)
	case domain.ExportFormatXLSX:
		return encodeXLSX(frame, sheet)
	default:
		return nil, apperrors.ErrUnsupportedFormat.WithDetails(map[string]interface{}{
			"format": string(format),
		})
	}
}

func encodeCSV(frame *table.Frame) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(frame.Columns()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	columns := frame.Columns()
	record := make([]string, len(columns))
	for i := 0; i < frame.Len(); i++ {
		row := frame.Row(i)
		for j, c := range columns {
			record[j] = table.FormatValue(row[c])
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeXLSX(frame *table.Frame, sheet string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = "data"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	columns := frame.Columns()
	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	if len(columns) > 0 {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return nil, fmt.Errorf("create header style: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(len(columns), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	for i := 0; i < frame.Len(); i++ {
		row := frame.Row(i)
		values := make([]interface{}, len(columns))
		for j, c := range columns {
			values[j] = xlsxValue(row[c])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// xlsxValue оставляет числа числами, даты и прочее пишет строкой
func xlsxValue(v interface{}) interface{} {
	switch x := v.(type) {
	case int, float64, string, bool:
		return x
	case time.Time:
		return table.FormatValue(x)
	case nil:
		return nil
	default:
		return table.FormatValue(x)
	}
}
