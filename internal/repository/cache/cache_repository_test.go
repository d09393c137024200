package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/domain/repository"
	"github.com/broadband-analytics/internal/repository/cache"
)

// CacheRepositoryTestSuite тестирует CacheRepository на локальном Redis (DB 1)
type CacheRepositoryTestSuite struct {
	suite.Suite
	client *redis.Client
	repo   repository.CacheRepository
	ctx    context.Context
	keys   []string
}

// SetupSuite подключается к Redis, без Redis весь набор пропускается
func (s *CacheRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.client = redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   1, // Use DB 1 for tests
	})

	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		_ = s.client.Close()
		s.client = nil
		s.T().Skipf("Redis not available for integration tests: %v", err)
	}

	s.repo = cache.NewCacheRepository(cache.NewRedisFromClient(s.client, zap.NewNop()))
}

// TearDownTest удаляет ключи, созданные тестом
func (s *CacheRepositoryTestSuite) TearDownTest() {
	if s.client != nil && len(s.keys) > 0 {
		s.client.Del(s.ctx, s.keys...)
	}
	s.keys = nil
}

// TearDownSuite закрывает соединение
func (s *CacheRepositoryTestSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
}

func (s *CacheRepositoryTestSuite) track(keys ...string) {
	s.keys = append(s.keys, keys...)
}

func (s *CacheRepositoryTestSuite) TestGetSetDelete() {
	key := "test:cache:" + uuid.NewString()
	s.track(key)

	val, err := s.repo.Get(s.ctx, key)
	s.Require().NoError(err)
	s.Nil(val)

	s.Require().NoError(s.repo.Set(s.ctx, key, []byte("payload"), time.Minute))

	exists, err := s.repo.Exists(s.ctx, key)
	s.Require().NoError(err)
	s.True(exists)

	val, err = s.repo.Get(s.ctx, key)
	s.Require().NoError(err)
	s.Equal([]byte("payload"), val)

	s.Require().NoError(s.repo.Delete(s.ctx, key))
	exists, err = s.repo.Exists(s.ctx, key)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *CacheRepositoryTestSuite) TestDataset() {
	key := "test:dataset:" + uuid.NewString()
	s.track(key)

	records := []domain.ConnectionMixRecord{
		{State: "Goa", Region: domain.RegionWest, MobileShare: 0.8, FixedShare: 0.2},
	}

	var missed []domain.ConnectionMixRecord
	found, err := s.repo.GetDataset(s.ctx, key, &missed)
	s.Require().NoError(err)
	s.False(found)

	s.Require().NoError(s.repo.SetDataset(s.ctx, key, records, time.Minute))

	var cached []domain.ConnectionMixRecord
	found, err = s.repo.GetDataset(s.ctx, key, &cached)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(records, cached)

	ttl, err := s.client.TTL(s.ctx, key).Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func (s *CacheRepositoryTestSuite) TestExportAndJob() {
	jobID := uuid.New()
	s.track(cache.ExportKey(jobID), cache.ExportJobKey(jobID))

	missing, err := s.repo.GetExport(s.ctx, jobID)
	s.Require().NoError(err)
	s.Nil(missing)

	artifact := &domain.ExportArtifact{
		JobID:       jobID,
		Kind:        domain.DatasetStates,
		Format:      domain.ExportFormatCSV,
		Filename:    "states.csv",
		ContentType: "text/csv",
		Rows:        1,
		Data:        []byte("state_name\nKerala\n"),
	}
	s.Require().NoError(s.repo.SetExport(s.ctx, artifact, time.Minute))

	got, err := s.repo.GetExport(s.ctx, jobID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(artifact.Data, got.Data)
	s.Equal("states.csv", got.Filename)

	job := &domain.ExportJob{
		JobID:     jobID,
		Kind:      domain.DatasetStates,
		Format:    domain.ExportFormatCSV,
		Status:    domain.ExportStatusQueued,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.Require().NoError(s.repo.SetExportJob(s.ctx, job, time.Minute))

	gotJob, err := s.repo.GetExportJob(s.ctx, jobID)
	s.Require().NoError(err)
	s.Require().NotNil(gotJob)
	s.Equal(domain.ExportStatusQueued, gotJob.Status)
	s.True(job.CreatedAt.Equal(gotJob.CreatedAt))

	s.Require().NoError(s.repo.DeleteExportJob(s.ctx, jobID))
	gotJob, err = s.repo.GetExportJob(s.ctx, jobID)
	s.Require().NoError(err)
	s.Nil(gotJob)
}

func TestCacheRepositorySuite(t *testing.T) {
	suite.Run(t, new(CacheRepositoryTestSuite))
}
