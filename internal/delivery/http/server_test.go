package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/broadband-analytics/internal/config"
	delivery "github.com/broadband-analytics/internal/delivery/http"
	"github.com/broadband-analytics/internal/delivery/http/handler"
	"github.com/broadband-analytics/internal/domain"
	"github.com/broadband-analytics/internal/generator"
	"github.com/broadband-analytics/internal/usecase"
)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) GetDataset(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) SetDataset(ctx context.Context, key string, records interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, records, ttl).Error(0)
}

func (m *mockCache) GetExport(ctx context.Context, jobID uuid.UUID) (*domain.ExportArtifact, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportArtifact), args.Error(1)
}

func (m *mockCache) SetExport(ctx context.Context, artifact *domain.ExportArtifact, ttl time.Duration) error {
	return m.Called(ctx, artifact, ttl).Error(0)
}

func (m *mockCache) GetExportJob(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportJob), args.Error(1)
}

func (m *mockCache) SetExportJob(ctx context.Context, job *domain.ExportJob, ttl time.Duration) error {
	return m.Called(ctx, job, ttl).Error(0)
}

func (m *mockCache) DeleteExportJob(ctx context.Context, jobID uuid.UUID) error {
	return m.Called(ctx, jobID).Error(0)
}

type mockStream struct {
	mock.Mock
}

func (m *mockStream) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *mockStream) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

func (m *mockStream) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *mockStream) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type frameBody struct {
	Columns []string         `json:"columns"`
	Length  int              `json:"length"`
	Data    map[string][]any `json:"data"`
}

func newTestServer(t *testing.T) (*delivery.Server, *mockCache, *mockStream) {
	t.Helper()

	logger := zap.NewNop()
	cache := &mockCache{}
	stream := &mockStream{}

	engine := generator.NewEngine(nil, nil)
	datasetUC := usecase.NewDatasetUseCase(engine, cache, logger, time.Hour)
	exportUC := usecase.NewExportUseCase(datasetUC, logger)
	exportJobUC := usecase.NewExportJobUseCase(exportUC, cache, stream, logger, time.Hour)

	srv := delivery.NewServer(
		&config.Config{},
		logger,
		handler.NewDatasetHandler(datasetUC, exportUC, logger),
		handler.NewInsightsHandler(usecase.NewInsightsUseCase(datasetUC, logger), logger),
		handler.NewChartHandler(usecase.NewChartUseCase(datasetUC, logger), logger),
		handler.NewExportHandler(exportJobUC, logger),
	)
	return srv, cache, stream
}

func do(t *testing.T, srv *delivery.Server, req *http.Request) (*http.Response, []byte) {
	t.Helper()

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestServer_Health(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"healthy"`)
}

func TestServer_Catalog(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/states", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode(t, body)
	var entries []generator.CatalogEntry
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	assert.Len(t, entries, 30)
	assert.Equal(t, float64(30), env.Meta["total"])
}

func TestServer_GetDataset(t *testing.T) {
	srv, cache, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/states", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode(t, body)
	var frame frameBody
	require.NoError(t, json.Unmarshal(env.Data, &frame))
	assert.Equal(t, 30, frame.Length)
	assert.Len(t, frame.Data["state_name"], 30)
	assert.Equal(t, "states", env.Meta["dataset"])
	assert.Equal(t, generator.ParamsVersion, env.Meta["params_version"])
	cache.AssertNotCalled(t, "GetDataset", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_GetDataset_RegionFilter(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/states?regions=South", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var frame frameBody
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &frame))
	require.NotZero(t, frame.Length)
	assert.Less(t, frame.Length, 30)
	for _, region := range frame.Data["region"] {
		assert.Equal(t, string(domain.RegionSouth), region)
	}
}

func TestServer_GetDataset_SeededUsesCache(t *testing.T) {
	srv, cache, _ := newTestServer(t)
	key := "dataset:" + generator.ParamsVersion + ":states:42"

	cache.On("GetDataset", mock.Anything, key, mock.Anything).Return(false, nil)
	cache.On("SetDataset", mock.Anything, key, mock.Anything, time.Hour).Return(nil)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/states?seed=42", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decode(t, body)
	assert.Equal(t, float64(42), env.Meta["seed"])
	cache.AssertExpectations(t)
}

func TestServer_GetDataset_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		status int
		code   string
	}{
		{"unknown kind", "/api/v1/datasets/weather", http.StatusNotFound, "UNKNOWN_DATASET"},
		{"invalid seed", "/api/v1/datasets/states?seed=abc", http.StatusBadRequest, "INVALID_SEED"},
		{"negative seed", "/api/v1/datasets/states?seed=-1", http.StatusBadRequest, "INVALID_SEED"},
		{"unknown region", "/api/v1/datasets/states?regions=Atlantis", http.StatusBadRequest, "INVALID_REQUEST"},
		{"state filter on national series", "/api/v1/datasets/time-series?states=Kerala", http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown melt column", "/api/v1/datasets/states/long?id_vars=nope", http.StatusBadRequest, "UNKNOWN_COLUMN"},
		{"unsupported format", "/api/v1/datasets/states/export?format=pdf", http.StatusBadRequest, "UNSUPPORTED_FORMAT"},
		{"unknown route", "/api/v1/nothing", http.StatusNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := newTestServer(t)

			resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.status, resp.StatusCode)
			env := decode(t, body)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestServer_GetDatasetLong(t *testing.T) {
	srv, _, _ := newTestServer(t)

	url := "/api/v1/datasets/states/long?id_vars=state_name&value_vars=population,subscribers"
	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var frame frameBody
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &frame))
	assert.Equal(t, 60, frame.Length)
	assert.Equal(t, []string{"state_name", "variable", "value"}, frame.Columns)
}

func TestServer_ExportDataset(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/datasets/states/export", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rural_broadband_states.csv")
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	assert.Len(t, lines, 31)
	assert.True(t, strings.HasPrefix(lines[0], "state_name,"))
}

func TestServer_Insights(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, path := range []string{"summary", "regions", "growth", "demographics"} {
		t.Run(path, func(t *testing.T) {
			resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/"+path, nil))
			assert.Equal(t, http.StatusOK, resp.StatusCode, string(body))
		})
	}
}

func TestServer_InsightsPriority(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/priority?limit=5", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var frame frameBody
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &frame))
	assert.Equal(t, 5, frame.Length)

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/insights/priority?limit=99", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", decode(t, body).Error.Code)
}

func TestServer_Chart(t *testing.T) {
	srv, _, _ := newTestServer(t)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/charts/device-mix.png?width=300&height=200", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(string(body), "\x89PNG"))

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/charts/pie.png", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_CHART", decode(t, body).Error.Code)

	resp, _ = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/charts/time-series.png?width=10", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_CreateExport(t *testing.T) {
	srv, cache, stream := newTestServer(t)

	cache.On("SetExportJob", mock.Anything, mock.AnythingOfType("*domain.ExportJob"), time.Hour).Return(nil)
	stream.On("PublishToStream", mock.Anything, domain.StreamExportRequest, mock.AnythingOfType("*domain.ExportRequestEvent")).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/exports",
		strings.NewReader(`{"kind":"districts","format":"xlsx","seed":7}`))
	req.Header.Set("Content-Type", "application/json")

	resp, body := do(t, srv, req)
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))

	var job struct {
		JobID     uuid.UUID `json:"job_id"`
		Status    string    `json:"status"`
		StatusURL string    `json:"status_url"`
	}
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &job))
	assert.NotEqual(t, uuid.Nil, job.JobID)
	assert.Equal(t, "queued", job.Status)
	assert.Equal(t, job.StatusURL, resp.Header.Get("Location"))
	cache.AssertExpectations(t)
	stream.AssertExpectations(t)
}

func TestServer_CreateExport_Invalid(t *testing.T) {
	srv, _, stream := newTestServer(t)

	for _, payload := range []string{
		`{"kind":"districts","format":"pdf"}`,
		`{"kind":"weather","format":"csv"}`,
		`{"format":"csv"}`,
		`not json`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/exports", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, body := do(t, srv, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
		assert.Equal(t, "INVALID_REQUEST", decode(t, body).Error.Code, payload)
	}
	stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestServer_ExportStatusAndDownload(t *testing.T) {
	srv, cache, _ := newTestServer(t)
	ready := uuid.New()
	pending := uuid.New()

	cache.On("GetExportJob", mock.Anything, ready).Return(&domain.ExportJob{
		JobID:  ready,
		Kind:   domain.DatasetStates,
		Format: domain.ExportFormatCSV,
		Status: domain.ExportStatusDone,
		Rows:   30,
	}, nil)
	cache.On("GetExport", mock.Anything, ready).Return(&domain.ExportArtifact{
		JobID:       ready,
		Filename:    "rural_broadband_states_seed7.csv",
		ContentType: "text/csv",
		Rows:        1,
		Data:        []byte("state_name\nKerala\n"),
	}, nil)
	cache.On("GetExportJob", mock.Anything, pending).Return(nil, nil)
	cache.On("GetExport", mock.Anything, pending).Return(nil, nil)

	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+ready.String()+"/status", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var job domain.ExportJob
	require.NoError(t, json.Unmarshal(decode(t, body).Data, &job))
	assert.Equal(t, domain.ExportStatusDone, job.Status)
	assert.Equal(t, 30, job.Rows)

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+ready.String(), nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "state_name\nKerala\n", string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "rural_broadband_states_seed7.csv")

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+pending.String(), nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "EXPORT_NOT_READY", decode(t, body).Error.Code)

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/exports/"+pending.String()+"/status", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "EXPORT_NOT_READY", decode(t, body).Error.Code)

	resp, body = do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/exports/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", decode(t, body).Error.Code)
}

func TestServer_Metrics(t *testing.T) {
	srv, _, _ := newTestServer(t)

	do(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	resp, body := do(t, srv, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "broadband_http_requests_total")
}
