package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/pkg/utils"
	"github.com/broadband-analytics/internal/usecase"
	"github.com/broadband-analytics/internal/usecase/dto"
)

func newInsightsUseCase() *usecase.InsightsUseCase {
	return usecase.NewInsightsUseCase(newDatasetUseCase(passthroughCache()), zap.NewNop())
}

func TestInsightsUseCase_Summary(t *testing.T) {
	uc := newInsightsUseCase()

	summary, err := uc.Summary(context.Background(), dto.InsightsRequest{})
	require.NoError(t, err)

	assert.Greater(t, summary.AveragePenetration, 0.0)
	assert.LessOrEqual(t, summary.AveragePenetration, 0.95)
	assert.Greater(t, summary.TotalSubscribers, 0)
	assert.Greater(t, summary.RuralPopulation, 0)
	assert.GreaterOrEqual(t, summary.UrbanRuralGap, 1.0)
	assert.NotEmpty(t, summary.TopState)
	assert.NotEmpty(t, summary.BottomState)
	assert.NotEqual(t, summary.TopState, summary.BottomState)
	assert.Contains(t, summary.Labels.AveragePenetration, "%")
	assert.Contains(t, summary.Labels.UrbanRuralGap, "x")
}

func TestInsightsUseCase_Regions(t *testing.T) {
	uc := newInsightsUseCase()

	regions, err := uc.Regions(context.Background(), dto.InsightsRequest{})
	require.NoError(t, err)
	require.Len(t, regions, len(domain.Regions()))

	states := 0
	for i, r := range regions {
		states += r.States
		assert.Greater(t, r.Population, 0)
		assert.InDelta(t, float64(r.Subscribers)/float64(r.Population), r.WeightedPenetration, 1e-9)
		if i > 0 {
			assert.GreaterOrEqual(t, regions[i-1].WeightedPenetration, r.WeightedPenetration)
		}
	}
	assert.Equal(t, 30, states)
}

func TestInsightsUseCase_Priority(t *testing.T) {
	uc := newInsightsUseCase()

	top, err := uc.Priority(context.Background(), dto.InsightsRequest{Limit: 5})
	require.NoError(t, err)
	require.Equal(t, 5, top.Len())

	impact, err := top.Floats("potential_impact")
	require.NoError(t, err)
	for i := 1; i < len(impact); i++ {
		assert.GreaterOrEqual(t, impact[i-1], impact[i])
	}

	all, err := uc.Priority(context.Background(), dto.InsightsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 10, all.Len())
}

func TestInsightsUseCase_Growth(t *testing.T) {
	uc := newInsightsUseCase()

	growth, err := uc.Growth(context.Background(), dto.GrowthRequest{Seed: ptrUint64(3), Months: 12})
	require.NoError(t, err)

	assert.Equal(t, 12, growth.Months)
	assert.Greater(t, growth.CurrentSubscribers, growth.StartSubscribers)
	assert.InDelta(t,
		utils.GrowthRate(float64(growth.StartSubscribers), float64(growth.CurrentSubscribers), 1),
		growth.CAGR, 1e-6)
	// Окно апрель 2023 - март 2024: четыре квартала, у первого нет базы
	require.Len(t, growth.Quarterly, 3)
	assert.Equal(t, "2023Q3", growth.Quarterly[0].Quarter)
	assert.Equal(t, "2024Q1", growth.Quarterly[2].Quarter)

	full, err := uc.Growth(context.Background(), dto.GrowthRequest{Seed: ptrUint64(3)})
	require.NoError(t, err)
	assert.Equal(t, 60, full.Months)
	assert.Equal(t, growth.LatestYoY, full.LatestYoY)
}

func TestInsightsUseCase_Demographics(t *testing.T) {
	uc := newInsightsUseCase()

	demo, err := uc.Demographics(context.Background(), dto.InsightsRequest{})
	require.NoError(t, err)

	assert.Len(t, demo.GenderGap, 30)
	for _, g := range demo.GenderGap {
		assert.Greater(t, g.MalePenetration, 0.0)
		assert.Greater(t, g.FemalePenetration, 0.0)
		assert.Greater(t, g.GapRatio, 0.0)
	}

	assert.Len(t, demo.AgeGroups, len(domain.AgeGroups))

	matrix := demo.IncomeEducation
	require.NotNil(t, matrix)
	require.Len(t, matrix.Penetration, len(domain.IncomeGroups))
	for _, row := range matrix.Penetration {
		require.Len(t, row, len(domain.EducationLevels))
		for _, v := range row {
			assert.GreaterOrEqual(t, v, 0.01)
			assert.LessOrEqual(t, v, 0.95)
		}
	}
}
