package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobmetrics "github.com/vendordesk/vendordesk/internal/jobs"
)

type stubPurger struct {
	before  time.Time
	removed int64
	err     error
}

func (s *stubPurger) PurgeExpiredSessions(_ context.Context, before time.Time) (int64, error) {
	s.before = before
	return s.removed, s.err
}

func newTestJob(purger SessionPurger) *SessionsPurgeJob {
	job := NewSessionsPurgeJob(purger, nil, jobmetrics.NewMetrics(prometheus.NewRegistry()))
	job.clock = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return job
}

func TestSessionsPurgeAppliesGrace(t *testing.T) {
	purger := &stubPurger{removed: 4}
	task, err := NewSessionsPurgeTask(SessionsPurgePayload{GraceSeconds: 60})
	require.NoError(t, err)
	assert.Equal(t, TaskSessionsPurge, task.Type())

	require.NoError(t, newTestJob(purger).Handle(context.Background(), task))
	assert.Equal(t, time.Date(2024, 5, 1, 11, 59, 0, 0, time.UTC), purger.before)
}

func TestSessionsPurgeEmptyPayloadUsesNow(t *testing.T) {
	purger := &stubPurger{}
	require.NoError(t, newTestJob(purger).Handle(context.Background(), asynq.NewTask(TaskSessionsPurge, nil)))
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), purger.before)
}

func TestSessionsPurgeBadPayloadSkipsRetry(t *testing.T) {
	err := newTestJob(&stubPurger{}).Handle(context.Background(), asynq.NewTask(TaskSessionsPurge, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestSessionsPurgePropagatesFailure(t *testing.T) {
	boom := errors.New("db down")
	err := newTestJob(&stubPurger{err: boom}).Handle(context.Background(), asynq.NewTask(TaskSessionsPurge, nil))
	assert.ErrorIs(t, err, boom)
}

func TestSessionsPurgeWithoutPurger(t *testing.T) {
	var job *SessionsPurgeJob
	assert.Error(t, job.Handle(context.Background(), asynq.NewTask(TaskSessionsPurge, nil)))
}

type stubInspector struct {
	info *asynq.QueueInfo
	err  error
}

func (s stubInspector) GetQueueInfo(string) (*asynq.QueueInfo, error) { return s.info, s.err }

func TestHealthReportsQueue(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(stubInspector{info: &asynq.QueueInfo{Queue: QueueDefault, Pending: 3, Retry: 1}}, nil).MountRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body queueHealth
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, queueHealth{Queue: QueueDefault, Pending: 3, Retry: 1}, body)
}

func TestHealthUnavailable(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(stubInspector{err: errors.New("redis down")}, nil).MountRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsServerExposesPurgeFailures(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := jobmetrics.NewMetrics(registry)
	job := NewSessionsPurgeJob(&stubPurger{err: errors.New("db down")}, nil, metrics)
	task, err := NewSessionsPurgeTask(SessionsPurgePayload{})
	require.NoError(t, err)
	require.Error(t, job.Handle(context.Background(), task))

	srv := NewMetricsServer(":0", metrics)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vendordesk_jobs_failures_total{job="auth:sessions:purge"} 1`)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
