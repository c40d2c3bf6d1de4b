// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"habit_keep/internal/config"
	"habit_keep/internal/handlers"
	"habit_keep/internal/model"
	"habit_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// serviceMocks はハンドラテスト用のサービスモック一式
type serviceMocks struct {
	user       *mocks.UserService
	habit      *mocks.HabitService
	assignment *mocks.AssignmentService
	schedule   *mocks.ScheduleService
	completion *mocks.CompletionService
	stats      *mocks.StatsService
}

func testRouterConfig() *config.Config {
	return &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
		},
	}
}

// newTestRouter は本番と同じルーティングにモックのサービスを注入します
func newTestRouter(t *testing.T) (*chi.Mux, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		user:       mocks.NewUserService(t),
		habit:      mocks.NewHabitService(t),
		assignment: mocks.NewAssignmentService(t),
		schedule:   mocks.NewScheduleService(t),
		completion: mocks.NewCompletionService(t),
		stats:      mocks.NewStatsService(t),
	}
	router := handlers.NewRouter(testRouterConfig(), discardLogger, nil, handlers.Services{
		User:       m.user,
		Habit:      m.habit,
		Assignment: m.assignment,
		Schedule:   m.schedule,
		Completion: m.completion,
		Stats:      m.stats,
	})
	return router, m
}

// doRequest はルーターに直接リクエストを送ります。body が string の場合はそのまま送信します。
func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// decodeError はエラーレスポンスのボディを取り出します
func decodeError(t *testing.T, rr *httptest.ResponseRecorder) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "error body: %s", rr.Body.String())
	return resp.Error
}

// decodeJSON は成功レスポンスを dst にデコードします
func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dst), "body: %s", rr.Body.String())
}
