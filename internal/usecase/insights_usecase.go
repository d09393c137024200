package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/table"
	"github.com/broadband-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	defaultPriorityLimit = 10
	monthsPerYear        = 12
)

// InsightsUseCase считает сводные показатели дашборда поверх сгенерированных таблиц
type InsightsUseCase struct {
	datasets *DatasetUseCase
	logger   *zap.Logger
}

// NewInsightsUseCase создает новый экземпляр InsightsUseCase
func NewInsightsUseCase(datasets *DatasetUseCase, logger *zap.Logger) *InsightsUseCase {
	return &InsightsUseCase{
		datasets: datasets,
		logger:   logger,
	}
}

// Summary возвращает ключевые национальные показатели
func (uc *InsightsUseCase) Summary(ctx context.Context, req dto.InsightsRequest) (*dto.SummaryResponse, error) {
	states, _, err := uc.datasets.Frame(ctx, domain.DatasetStates, req.Seed)
	if err != nil {
		return nil, err
	}
	series, _, err := uc.datasets.Frame(ctx, domain.DatasetTimeSeries, req.Seed)
	if err != nil {
		return nil, err
	}
	demo, _, err := uc.datasets.Frame(ctx, domain.DatasetDemographics, req.Seed)
	if err != nil {
		return nil, err
	}

	penetration, err := states.Floats("broadband_penetration")
	if err != nil {
		return nil, err
	}
	population, err := states.Floats("population")
	if err != nil {
		return nil, err
	}
	subscribers, err := series.Floats("subscribers")
	if err != nil {
		return nil, err
	}
	urban, err := demo.Floats("urban_penetration")
	if err != nil {
		return nil, err
	}
	rural, err := demo.Floats("rural_penetration")
	if err != nil {
		return nil, err
	}

	ranked, err := states.SortBy("broadband_penetration", true)
	if err != nil {
		return nil, err
	}
	names, err := ranked.Strings("state_name")
	if err != nil {
		return nil, err
	}

	resp := &dto.SummaryResponse{
		AveragePenetration: mean(penetration),
		RuralPopulation:    int(sum(population)),
		YearlyGrowth:       yearOverYear(subscribers),
		UrbanRuralGap:      safeDiv(mean(urban), mean(rural)),
	}
	if n := len(subscribers); n > 0 {
		resp.TotalSubscribers = int(subscribers[n-1])
	}
	if len(names) > 0 {
		resp.TopState = names[0]
		resp.BottomState = names[len(names)-1]
	}
	resp.Labels = dto.Labels{
		AveragePenetration: utils.FormatPercentage(resp.AveragePenetration),
		TotalSubscribers:   utils.FormatLargeNumber(float64(resp.TotalSubscribers)),
		YearlyGrowth:       utils.FormatPercentage(resp.YearlyGrowth),
		UrbanRuralGap:      fmt.Sprintf("%.1fx", resp.UrbanRuralGap),
	}

	return resp, nil
}

// Regions агрегирует таблицу штатов по регионам, по убыванию взвешенного проникновения
func (uc *InsightsUseCase) Regions(ctx context.Context, req dto.InsightsRequest) ([]dto.RegionInsight, error) {
	states, _, err := uc.datasets.Frame(ctx, domain.DatasetStates, req.Seed)
	if err != nil {
		return nil, err
	}

	grouped, err := states.GroupBy("region")
	if err != nil {
		return nil, err
	}
	agg, err := grouped.Agg(
		table.Agg{Column: "state_name", Func: table.Count, As: "states"},
		table.Agg{Column: "population", Func: table.Sum},
		table.Agg{Column: "subscribers", Func: table.Sum},
		table.Agg{Column: "broadband_penetration", Func: table.Mean, As: "average_penetration"},
		table.Agg{Column: "mobile_data_usage", Func: table.Mean},
	)
	if err != nil {
		return nil, err
	}
	agg, err = withRatio(agg, "subscribers", "population", "weighted_penetration")
	if err != nil {
		return nil, err
	}
	agg, err = agg.SortBy("weighted_penetration", true)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RegionInsight, 0, agg.Len())
	for _, row := range agg.Records() {
		out = append(out, dto.RegionInsight{
			Region:              table.FormatValue(row["region"]),
			States:              asInt(row["states"]),
			Population:          asInt(row["population"]),
			Subscribers:         asInt(row["subscribers"]),
			AveragePenetration:  asFloat(row["average_penetration"]),
			WeightedPenetration: asFloat(row["weighted_penetration"]),
			MobileDataUsage:     asFloat(row["mobile_data_usage"]),
		})
	}
	return out, nil
}

// Priority возвращает limit штатов с наибольшим потенциальным эффектом
func (uc *InsightsUseCase) Priority(ctx context.Context, req dto.InsightsRequest) (*table.Frame, error) {
	frame, _, err := uc.datasets.Frame(ctx, domain.DatasetPriority, req.Seed)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultPriorityLimit
	}

	sorted, err := frame.SortBy("potential_impact", true)
	if err != nil {
		return nil, err
	}
	return sorted.Head(limit), nil
}

// Growth считает рост национального ряда за окно последних req.Months месяцев
func (uc *InsightsUseCase) Growth(ctx context.Context, req dto.GrowthRequest) (*dto.GrowthResponse, error) {
	series, _, err := uc.datasets.Frame(ctx, domain.DatasetTimeSeries, req.Seed)
	if err != nil {
		return nil, err
	}

	all, err := series.Floats("subscribers")
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &dto.GrowthResponse{}, nil
	}

	months := req.Months
	if months <= 0 || months > len(all) {
		months = len(all)
	}
	window := series.Tail(months)
	values, err := window.Floats("subscribers")
	if err != nil {
		return nil, err
	}

	first, last := values[0], values[len(values)-1]
	resp := &dto.GrowthResponse{
		Months:             months,
		StartSubscribers:   int(first),
		CurrentSubscribers: int(last),
		GrowthPercent:      utils.PercentChange(first, last),
		CAGR:               utils.GrowthRate(first, last, float64(months)/monthsPerYear),
		LatestYoY:          yearOverYear(all),
	}

	resp.Quarterly, err = quarterly(window)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("Growth computed",
		zap.Int("months", months),
		zap.Float64("cagr", resp.CAGR))
	return resp, nil
}

// Demographics считает гендерный разрыв по штатам, агрегаты по возрастным группам
// и матрицу проникновения доход x образование
func (uc *InsightsUseCase) Demographics(ctx context.Context, req dto.InsightsRequest) (*dto.DemographicsResponse, error) {
	demo, _, err := uc.datasets.Frame(ctx, domain.DatasetDemographics, req.Seed)
	if err != nil {
		return nil, err
	}
	incomeEdu, _, err := uc.datasets.Frame(ctx, domain.DatasetIncomeEducation, req.Seed)
	if err != nil {
		return nil, err
	}

	gaps, err := genderGap(demo)
	if err != nil {
		return nil, err
	}
	ages, err := ageGroups(demo)
	if err != nil {
		return nil, err
	}
	matrix, err := incomeEducationMatrix(incomeEdu)
	if err != nil {
		return nil, err
	}

	return &dto.DemographicsResponse{
		GenderGap:       gaps,
		AgeGroups:       ages,
		IncomeEducation: matrix,
	}, nil
}

// sumPenetration группирует по ключам, суммирует население и пользователей
// и добавляет колонку penetration = users / population
func sumPenetration(f *table.Frame, keys ...string) (*table.Frame, error) {
	grouped, err := f.GroupBy(keys...)
	if err != nil {
		return nil, err
	}
	agg, err := grouped.Agg(
		table.Agg{Column: "population", Func: table.Sum},
		table.Agg{Column: "users", Func: table.Sum},
	)
	if err != nil {
		return nil, err
	}
	return withRatio(agg, "users", "population", "penetration")
}

func genderGap(demo *table.Frame) ([]dto.GenderGapRow, error) {
	byGender, err := sumPenetration(demo, "state", "gender")
	if err != nil {
		return nil, err
	}
	wide, err := byGender.Pivot("state", "gender", "penetration")
	if err != nil {
		return nil, err
	}

	out := make([]dto.GenderGapRow, 0, wide.Len())
	for _, row := range wide.Records() {
		male := asFloat(row[string(domain.GenderMale)])
		female := asFloat(row[string(domain.GenderFemale)])
		out = append(out, dto.GenderGapRow{
			State:             table.FormatValue(row["state"]),
			MalePenetration:   male,
			FemalePenetration: female,
			GapRatio:          safeDiv(female, male),
		})
	}
	return out, nil
}

func ageGroups(demo *table.Frame) ([]dto.AgeGroupRow, error) {
	byAge, err := sumPenetration(demo, "age_group")
	if err != nil {
		return nil, err
	}

	out := make([]dto.AgeGroupRow, 0, byAge.Len())
	for _, row := range byAge.Records() {
		out = append(out, dto.AgeGroupRow{
			AgeGroup:    table.FormatValue(row["age_group"]),
			Population:  asInt(row["population"]),
			Users:       asInt(row["users"]),
			Penetration: asFloat(row["penetration"]),
		})
	}
	return out, nil
}

func incomeEducationMatrix(f *table.Frame) (*dto.IncomeEducationMatrix, error) {
	cells, err := sumPenetration(f, "income_group", "education_level")
	if err != nil {
		return nil, err
	}
	wide, err := cells.Pivot("income_group", "education_level", "penetration")
	if err != nil {
		return nil, err
	}

	byIncome := make(map[string]table.Row, wide.Len())
	for _, row := range wide.Records() {
		byIncome[table.FormatValue(row["income_group"])] = row
	}

	matrix := &dto.IncomeEducationMatrix{
		IncomeGroups:    domain.IncomeGroups,
		EducationLevels: domain.EducationLevels,
		Penetration:     make([][]float64, len(domain.IncomeGroups)),
	}
	for i, income := range domain.IncomeGroups {
		matrix.Penetration[i] = make([]float64, len(domain.EducationLevels))
		row, ok := byIncome[income]
		if !ok {
			continue
		}
		for j, edu := range domain.EducationLevels {
			matrix.Penetration[i][j] = asFloat(row[edu])
		}
	}
	return matrix, nil
}

// quarterly берет последнее значение каждого квартала и прирост к предыдущему кварталу.
// Первый квартал окна не имеет базы и пропускается.
func quarterly(series *table.Frame) ([]dto.QuarterlyPoint, error) {
	dates, err := series.Column("date")
	if err != nil {
		return nil, err
	}
	quarters := make([]interface{}, len(dates))
	for i, d := range dates {
		t, ok := d.(time.Time)
		if !ok {
			return nil, fmt.Errorf("date column holds %T", d)
		}
		quarters[i] = fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())-1)/3+1)
	}

	withQuarter, err := series.WithColumn("quarter", quarters)
	if err != nil {
		return nil, err
	}
	grouped, err := withQuarter.GroupBy("quarter")
	if err != nil {
		return nil, err
	}
	last, err := grouped.Agg(table.Agg{Column: "subscribers", Func: table.Last})
	if err != nil {
		return nil, err
	}

	labels, err := last.Strings("quarter")
	if err != nil {
		return nil, err
	}
	values, err := last.Floats("subscribers")
	if err != nil {
		return nil, err
	}

	out := make([]dto.QuarterlyPoint, 0, len(values))
	for i := 1; i < len(values); i++ {
		out = append(out, dto.QuarterlyPoint{
			Quarter:     labels[i],
			Subscribers: int(values[i]),
			GrowthRate:  utils.PercentChange(values[i-1], values[i]),
		})
	}
	return out, nil
}

// withRatio добавляет колонку name = num / den
func withRatio(f *table.Frame, num, den, name string) (*table.Frame, error) {
	nums, err := f.Floats(num)
	if err != nil {
		return nil, err
	}
	dens, err := f.Floats(den)
	if err != nil {
		return nil, err
	}
	ratio := make([]interface{}, len(nums))
	for i := range nums {
		ratio[i] = safeDiv(nums[i], dens[i])
	}
	return f.WithColumn(name, ratio)
}

// yearOverYear - рост последнего значения к значению годом ранее
func yearOverYear(values []float64) float64 {
	n := len(values)
	if n <= monthsPerYear {
		return 0
	}
	return utils.PercentChange(values[n-1-monthsPerYear], values[n-1])
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	}
	return 0
}

func asInt(v interface{}) int {
	return int(math.Round(asFloat(v)))
}
