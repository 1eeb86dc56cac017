//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ukrserhiy/litios/internal/pkg/logger"
)

type logRecord struct {
	level  string
	msg    string
	fields []interface{}
}

// recordingLogger keeps every record, including those written by its With children.
type recordingLogger struct {
	mu      *sync.Mutex
	records *[]logRecord
	fields  []interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, records: &[]logRecord{}}
}

func (l *recordingLogger) record(level string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.records = append(*l.records, logRecord{level: level, msg: fmt.Sprint(args...), fields: l.fields})
}

func (l *recordingLogger) Debug(args ...interface{}) { l.record("debug", args) }
func (l *recordingLogger) Info(args ...interface{})  { l.record("info", args) }
func (l *recordingLogger) Warn(args ...interface{})  { l.record("warn", args) }
func (l *recordingLogger) Error(args ...interface{}) { l.record("error", args) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.record("fatal", args) }
func (l *recordingLogger) Panic(args ...interface{}) { l.record("panic", args) }

func (l *recordingLogger) With(keyValues ...interface{}) logger.Logger {
	fields := append(append([]interface{}{}, l.fields...), keyValues...)
	return &recordingLogger{mu: l.mu, records: l.records, fields: fields}
}

func (l *recordingLogger) all() []logRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logRecord(nil), *l.records...)
}

func TestRequestID_StoresTaggedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newRecordingLogger()

	r := gin.New()
	r.Use(RequestID(log))
	r.GET("/echo", func(ctx *gin.Context) {
		requestLog := RequestLogger(ctx)
		require.NotNil(t, requestLog)
		requestLog.Info("handled")
		ctx.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/echo", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))

	records := log.all()
	require.Len(t, records, 1)
	assert.Equal(t, "handled", records[0].msg)
	assert.Equal(t, []interface{}{"request_id", "req-42"}, records[0].fields)
}

func TestRequestID_GeneratedIDTagsLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newRecordingLogger()

	r := gin.New()
	r.Use(RequestID(log))
	r.GET("/echo", func(ctx *gin.Context) {
		RequestLogger(ctx).Info("handled")
		ctx.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/echo", nil)
	r.ServeHTTP(w, req)

	generated := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, generated)

	records := log.all()
	require.Len(t, records, 1)
	assert.Equal(t, []interface{}{"request_id", generated}, records[0].fields)
}

func TestRequestLogger_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, RequestLogger(c))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(nil))
	var found logger.Logger
	r.GET("/echo", func(ctx *gin.Context) {
		found = RequestLogger(ctx)
		ctx.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/echo", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, found)
}

func TestSetupRoutes_LogsFailuresWithRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := newRecordingLogger()
	mockPromptService := new(MockPromptService)
	mockPromptService.On("Get", mock.Anything).Return(nil, errors.New("disk I/O error"))

	r := gin.New()
	SetupRoutes(r, mockPromptService, new(MockModelService), new(MockAnalysisService), new(MockConnectionTester), t.TempDir(), log)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/prompts", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	records := log.all()
	require.Len(t, records, 1)
	assert.Equal(t, "error", records[0].level)
	assert.Equal(t, "GET /api/prompts: disk I/O error", records[0].msg)
	assert.Equal(t, []interface{}{"request_id", "req-7"}, records[0].fields)
}
