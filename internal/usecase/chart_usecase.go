package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/generator"
	apperrors "github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/table"
	"github.com/broadband-analytics/internal/usecase/dto"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Поддерживаемые графики
const (
	ChartStatePenetration = "state-penetration"
	ChartTimeSeries       = "time-series"
	ChartDeviceMix        = "device-mix"
)

const (
	defaultChartWidth  = 1000
	defaultChartHeight = 560
	pixelsPerInch      = 96
)

var (
	saffron = color.RGBA{R: 0xFF, G: 0x99, B: 0x33, A: 0xFF}
	green   = color.RGBA{R: 0x13, G: 0x88, B: 0x08, A: 0xFF}
)

// ChartUseCase рисует PNG-графики по сгенерированным таблицам
type ChartUseCase struct {
	datasets *DatasetUseCase
	logger   *zap.Logger
}

// NewChartUseCase создает новый экземпляр ChartUseCase
func NewChartUseCase(datasets *DatasetUseCase, logger *zap.Logger) *ChartUseCase {
	return &ChartUseCase{
		datasets: datasets,
		logger:   logger,
	}
}

// Charts возвращает имена доступных графиков
func Charts() []string {
	return []string{ChartStatePenetration, ChartTimeSeries, ChartDeviceMix}
}

// Render строит график и возвращает PNG
func (uc *ChartUseCase) Render(ctx context.Context, req dto.ChartRequest) ([]byte, error) {
	var (
		p   *plot.Plot
		err error
	)

	switch req.Chart {
	case ChartStatePenetration:
		p, err = uc.statePenetration(ctx, req.Seed)
	case ChartTimeSeries:
		p, err = uc.timeSeries(ctx, req.Seed)
	case ChartDeviceMix:
		p, err = uc.deviceMix(ctx, req.Seed)
	default:
		return nil, apperrors.ErrUnknownChart.WithDetails(map[string]interface{}{
			"chart": req.Chart,
		})
	}
	if err != nil {
		return nil, err
	}

	width, height := req.Width, req.Height
	if width <= 0 {
		width = defaultChartWidth
	}
	if height <= 0 {
		height = defaultChartHeight
	}

	png, err := renderPNG(p, width, height)
	if err != nil {
		uc.logger.Error("Failed to render chart", zap.String("chart", req.Chart), zap.Error(err))
		return nil, err
	}
	return png, nil
}

// statePenetration - столбцы проникновения по штатам, по убыванию
func (uc *ChartUseCase) statePenetration(ctx context.Context, seed *uint64) (*plot.Plot, error) {
	states, _, err := uc.datasets.Frame(ctx, domain.DatasetStates, seed)
	if err != nil {
		return nil, err
	}
	sorted, err := states.SortBy("broadband_penetration", true)
	if err != nil {
		return nil, err
	}
	names, err := sorted.Strings("state_name")
	if err != nil {
		return nil, err
	}
	penetration, err := sorted.Floats("broadband_penetration")
	if err != nil {
		return nil, err
	}

	values := make(plotter.Values, len(penetration))
	labels := make([]string, len(names))
	for i := range penetration {
		values[i] = penetration[i] * 100
		labels[i] = generator.StateCode(names[i])
	}

	p := plot.New()
	p.Title.Text = "Rural Broadband Penetration by State"
	p.Y.Label.Text = "Penetration (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return nil, fmt.Errorf("create bar chart: %w", err)
	}
	bars.Color = green
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(labels...)
	return p, nil
}

// timeSeries - национальный ряд абонентов в миллионах
func (uc *ChartUseCase) timeSeries(ctx context.Context, seed *uint64) (*plot.Plot, error) {
	series, _, err := uc.datasets.Frame(ctx, domain.DatasetTimeSeries, seed)
	if err != nil {
		return nil, err
	}
	dates, err := series.Column("date")
	if err != nil {
		return nil, err
	}
	subscribers, err := series.Floats("subscribers")
	if err != nil {
		return nil, err
	}

	points := make(plotter.XYs, len(subscribers))
	for i := range subscribers {
		t, ok := dates[i].(time.Time)
		if !ok {
			return nil, fmt.Errorf("date column holds %T", dates[i])
		}
		points[i].X = float64(t.Unix())
		points[i].Y = subscribers[i] / 1e6
	}

	p := plot.New()
	p.Title.Text = "Rural Broadband Subscriber Growth"
	p.Y.Label.Text = "Subscribers (millions)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	line, err := plotter.NewLine(points)
	if err != nil {
		return nil, fmt.Errorf("create line: %w", err)
	}
	line.Color = saffron
	line.Width = vg.Points(2)

	p.Add(line, plotter.NewGrid())
	return p, nil
}

// deviceMix - средняя доля устройств по всем штатам
func (uc *ChartUseCase) deviceMix(ctx context.Context, seed *uint64) (*plot.Plot, error) {
	usage, _, err := uc.datasets.Frame(ctx, domain.DatasetUsage, seed)
	if err != nil {
		return nil, err
	}
	grouped, err := usage.GroupBy("device_type")
	if err != nil {
		return nil, err
	}
	shares, err := grouped.Agg(table.Agg{Column: "percentage", Func: table.Mean})
	if err != nil {
		return nil, err
	}
	labels, err := shares.Strings("device_type")
	if err != nil {
		return nil, err
	}
	means, err := shares.Floats("percentage")
	if err != nil {
		return nil, err
	}

	values := make(plotter.Values, len(means))
	for i, m := range means {
		values[i] = m * 100
	}

	p := plot.New()
	p.Title.Text = "Device Mix Across States"
	p.Y.Label.Text = "Share of users (%)"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("create bar chart: %w", err)
	}
	bars.Color = saffron
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.3
	p.X.Tick.Label.XAlign = text.XRight
	return p, nil
}

// renderPNG рисует график в PNG заданного размера в пикселях
func renderPNG(p *plot.Plot, width, height int) ([]byte, error) {
	w := vg.Length(width) * vg.Inch / pixelsPerInch
	h := vg.Length(height) * vg.Inch / pixelsPerInch

	canvas := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(pixelsPerInch))
	p.Draw(draw.New(canvas))

	buf := &bytes.Buffer{}
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(buf); err != nil {
		return nil, fmt.Errorf("write png: %w", err)
	}
	return buf.Bytes(), nil
}
