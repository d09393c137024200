package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/domain/repository"
	"github.com/broadband-analytics/internal/generator"
	apperrors "github.com/broadband-analytics/internal/pkg/errors"
	"github.com/broadband-analytics/internal/pkg/metrics"
	"github.com/broadband-analytics/internal/table"
	"github.com/broadband-analytics/internal/usecase/dto"
	"go.uber.org/zap"
)

const datasetKeyPrefix = "dataset:"

// datasetLoader строит таблицу одного вида; второе значение - признак попадания в кеш
type datasetLoader func(ctx context.Context, seed *uint64) (*table.Frame, bool, error)

// DatasetUseCase генерирует таблицы и кеширует сидированные выборки
type DatasetUseCase struct {
	engine    *generator.Engine
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
	now       func() time.Time
	loaders   map[domain.DatasetKind]datasetLoader
}

// NewDatasetUseCase создает новый экземпляр DatasetUseCase
func NewDatasetUseCase(
	engine *generator.Engine,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DatasetUseCase {
	uc := &DatasetUseCase{
		engine:    engine,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}

	e := engine
	uc.loaders = map[domain.DatasetKind]datasetLoader{
		domain.DatasetStates:          loader(uc, domain.DatasetStates, e.States),
		domain.DatasetDistricts:       loader(uc, domain.DatasetDistricts, e.Districts),
		domain.DatasetTimeSeries:      monthlyLoader(uc, domain.DatasetTimeSeries, e.TimeSeries),
		domain.DatasetStateTimeSeries: monthlyLoader(uc, domain.DatasetStateTimeSeries, e.StateTimeSeries),
		domain.DatasetDemographics:    loader(uc, domain.DatasetDemographics, e.Demographics),
		domain.DatasetIncomeEducation: loader(uc, domain.DatasetIncomeEducation, e.IncomeEducation),
		domain.DatasetUsage:           loader(uc, domain.DatasetUsage, e.Usage),
		domain.DatasetConnectionMix:   loader(uc, domain.DatasetConnectionMix, e.ConnectionMix),
		domain.DatasetServices:        loader(uc, domain.DatasetServices, e.Services),
		domain.DatasetPriority:        loader(uc, domain.DatasetPriority, e.Priority),
	}

	return uc
}

// WithClock подменяет источник текущего времени (конец временных рядов)
func (uc *DatasetUseCase) WithClock(now func() time.Time) *DatasetUseCase {
	uc.now = now
	return uc
}

// ParamsVersion возвращает версию параметров моделей
func (uc *DatasetUseCase) ParamsVersion() string {
	return uc.engine.Version()
}

// Catalog возвращает справочник штатов
func (uc *DatasetUseCase) Catalog() []generator.CatalogEntry {
	return uc.engine.Catalog().Entries()
}

// CacheKey возвращает ключ кеша сидированной таблицы.
// Для временных рядов добавляется месяц окончания ряда.
func (uc *DatasetUseCase) CacheKey(kind domain.DatasetKind, seed uint64, month string) string {
	key := fmt.Sprintf("%s%s:%s:%d", datasetKeyPrefix, uc.engine.Version(), kind, seed)
	if month != "" {
		key += ":" + month
	}
	return key
}

// Frame возвращает полную таблицу вида kind
func (uc *DatasetUseCase) Frame(ctx context.Context, kind domain.DatasetKind, seed *uint64) (*table.Frame, bool, error) {
	load, ok := uc.loaders[kind]
	if !ok {
		return nil, false, apperrors.ErrUnknownDataset.WithDetails(map[string]interface{}{
			"dataset": string(kind),
		})
	}
	return load(ctx, seed)
}

// Generate возвращает таблицу с примененными фильтрами по штатам и регионам
func (uc *DatasetUseCase) Generate(ctx context.Context, req dto.DatasetRequest) (*dto.DatasetResult, error) {
	kind := domain.DatasetKind(req.Kind)

	frame, cached, err := uc.Frame(ctx, kind, req.Seed)
	if err != nil {
		return nil, err
	}

	frame, err = uc.applyFilters(kind, frame, req.States, req.Regions)
	if err != nil {
		return nil, err
	}

	return &dto.DatasetResult{
		Kind:          kind,
		Frame:         frame,
		Seed:          req.Seed,
		Cached:        cached,
		ParamsVersion: uc.engine.Version(),
	}, nil
}

// Melt возвращает таблицу в длинном формате
func (uc *DatasetUseCase) Melt(ctx context.Context, req dto.MeltRequest) (*dto.DatasetResult, error) {
	result, err := uc.Generate(ctx, req.DatasetRequest)
	if err != nil {
		return nil, err
	}

	long, err := result.Frame.Melt(req.IDVars, req.ValueVars, req.VarName, req.ValueName)
	if err != nil {
		return nil, tableError(err)
	}

	result.Frame = long
	return result, nil
}

// applyFilters сужает таблицу: регионы раскрываются в штаты по справочнику,
// затем пересекаются с явным списком штатов
func (uc *DatasetUseCase) applyFilters(kind domain.DatasetKind, frame *table.Frame, states, regions []string) (*table.Frame, error) {
	if len(states) == 0 && len(regions) == 0 {
		return frame, nil
	}

	column := kind.StateColumn()
	if column == "" {
		return nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"dataset": string(kind),
			"error":   "dataset has no state column to filter on",
		})
	}

	var err error
	if len(regions) > 0 {
		var inRegions []string
		for _, r := range regions {
			region, ok := domain.ParseRegion(r)
			if !ok {
				return nil, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
					"regions": r,
				})
			}
			inRegions = append(inRegions, uc.engine.Catalog().StatesIn(region)...)
		}
		if len(inRegions) == 0 {
			return frame.Head(0), nil
		}
		if frame, err = frame.FilterIn(column, inRegions...); err != nil {
			return nil, tableError(err)
		}
	}

	if frame, err = frame.FilterIn(column, trimAll(states)...); err != nil {
		return nil, tableError(err)
	}
	return frame, nil
}

// loader оборачивает генератор таблицы кешированием по seed
func loader[T any](uc *DatasetUseCase, kind domain.DatasetKind, gen func(*generator.Rand) []T) datasetLoader {
	return func(ctx context.Context, seed *uint64) (*table.Frame, bool, error) {
		return loadFrame(ctx, uc, kind, seed, "", gen)
	}
}

// monthlyLoader - то же для временных рядов; ряд заканчивается текущим месяцем
func monthlyLoader[T any](uc *DatasetUseCase, kind domain.DatasetKind, gen func(*generator.Rand, time.Time) []T) datasetLoader {
	return func(ctx context.Context, seed *uint64) (*table.Frame, bool, error) {
		end := uc.now().UTC()
		return loadFrame(ctx, uc, kind, seed, end.Format("2006-01"), func(rng *generator.Rand) []T {
			return gen(rng, end)
		})
	}
}

func loadFrame[T any](
	ctx context.Context,
	uc *DatasetUseCase,
	kind domain.DatasetKind,
	seed *uint64,
	month string,
	gen func(*generator.Rand) []T,
) (*table.Frame, bool, error) {
	records, cached := loadRecords(ctx, uc, kind, seed, month, gen)

	frame, err := table.FromRecords(records)
	if err != nil {
		return nil, false, fmt.Errorf("build %s frame: %w", kind, err)
	}
	return frame, cached, nil
}

// loadRecords генерирует записи. Запрос без seed всегда дает новую выборку и не
// обращается к кешу. Ошибки кеша не прерывают запрос.
func loadRecords[T any](
	ctx context.Context,
	uc *DatasetUseCase,
	kind domain.DatasetKind,
	seed *uint64,
	month string,
	gen func(*generator.Rand) []T,
) ([]T, bool) {
	if seed == nil {
		return generate(kind, generator.NewRandomRand(), gen), false
	}

	key := uc.CacheKey(kind, *seed, month)

	// 1. Проверяем кеш
	var records []T
	hit, err := uc.cacheRepo.GetDataset(ctx, key, &records)
	switch {
	case err != nil:
		metrics.CacheResult(string(kind), metrics.CacheError)
		uc.logger.Warn("Failed to get dataset from cache", zap.String("key", key), zap.Error(err))
	case hit:
		metrics.CacheResult(string(kind), metrics.CacheHit)
		uc.logger.Debug("Dataset fetched from cache", zap.String("key", key))
		return records, true
	default:
		metrics.CacheResult(string(kind), metrics.CacheMiss)
	}

	// 2. Генерируем
	records = generate(kind, generator.NewRand(*seed), gen)

	// 3. Кешируем
	if err := uc.cacheRepo.SetDataset(ctx, key, records, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache dataset", zap.String("key", key), zap.Error(err))
	}

	return records, false
}

func generate[T any](kind domain.DatasetKind, rng *generator.Rand, gen func(*generator.Rand) []T) []T {
	started := time.Now()
	defer metrics.ObserveGeneration(string(kind), started)
	return gen(rng)
}

// tableError переводит ошибки операций над таблицей в ошибки API
func tableError(err error) error {
	if errors.Is(err, table.ErrUnknownColumn) {
		return apperrors.ErrUnknownColumn.WithDetails(map[string]interface{}{
			"error": err.Error(),
		})
	}
	return err
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
