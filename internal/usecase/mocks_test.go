package usecase_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/broadband-analytics/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetDataset(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) SetDataset(ctx context.Context, key string, records interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, records, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetExport(ctx context.Context, jobID uuid.UUID) (*domain.ExportArtifact, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportArtifact), args.Error(1)
}

func (m *MockCacheRepository) SetExport(ctx context.Context, artifact *domain.ExportArtifact, ttl time.Duration) error {
	args := m.Called(ctx, artifact, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetExportJob(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportJob), args.Error(1)
}

func (m *MockCacheRepository) SetExportJob(ctx context.Context, job *domain.ExportJob, ttl time.Duration) error {
	args := m.Called(ctx, job, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) DeleteExportJob(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// passthroughCache - кеш, который всегда промахивается и молча принимает записи
func passthroughCache() *MockCacheRepository {
	m := &MockCacheRepository{}
	m.On("GetDataset", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	m.On("SetDataset", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return m
}

func ptrUint64(v uint64) *uint64 {
	return &v
}
