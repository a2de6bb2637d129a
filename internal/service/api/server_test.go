package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/youth-gateway/internal/config"
	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
)

// fakeInvoker 테스트용 ToolInvoker 구현입니다.
type fakeInvoker struct {
	names    []string
	result   string
	err      error
	lastName string
	lastArgs map[string]any
}

func (f *fakeInvoker) ToolNames() []string {
	return f.names
}

func (f *fakeInvoker) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	f.lastName = name
	f.lastArgs = args
	return f.result, f.err
}

func newTestAPI(invoker ToolInvoker) *Server {
	cfg := &config.AppConfig{
		Ops: config.OpsConfig{Enabled: true, ListenPort: config.DefaultOpsListenPort},
	}
	return NewServer(cfg, "test", invoker)
}

func doRequest(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doRequest(newTestAPI(&fakeInvoker{}), http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, config.AppName, body["app"])
}

func TestListTools(t *testing.T) {
	invoker := &fakeInvoker{names: []string{"search_policies", "mega_search"}}
	rec := doRequest(newTestAPI(invoker), http.MethodGet, "/api/v1/tools", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tools []string `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"search_policies", "mega_search"}, body.Tools)
}

func TestInvokeTool(t *testing.T) {
	t.Run("인자가 도구로 전달되고 결과가 반환된다", func(t *testing.T) {
		invoker := &fakeInvoker{result: "## 검색 결과"}
		server := newTestAPI(invoker)

		rec := doRequest(server, http.MethodPost, "/api/v1/tools/search_policies",
			`{"arguments": {"keyword": "주거", "region": "서울"}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "search_policies", invoker.lastName)
		assert.Equal(t, "주거", invoker.lastArgs["keyword"])

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "## 검색 결과", body["result"])
	})

	t.Run("없는 도구는 404", func(t *testing.T) {
		invoker := &fakeInvoker{err: apperrors.New(apperrors.NotFound, "등록되지 않은 도구입니다")}
		rec := doRequest(newTestAPI(invoker), http.MethodPost, "/api/v1/tools/unknown", `{}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("잘못된 인자는 400", func(t *testing.T) {
		invoker := &fakeInvoker{err: apperrors.New(apperrors.InvalidInput, "나이는 0에서 100 사이여야 합니다")}
		rec := doRequest(newTestAPI(invoker), http.MethodPost, "/api/v1/tools/recommend_policies", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("업스트림 실패는 502", func(t *testing.T) {
		invoker := &fakeInvoker{err: apperrors.New(apperrors.ExecutionFailed, "업스트림 호출 실패")}
		rec := doRequest(newTestAPI(invoker), http.MethodPost, "/api/v1/tools/search_jobs", `{}`)

		assert.Equal(t, http.StatusBadGateway, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "업스트림 호출 실패")
	})

	t.Run("빈 본문도 허용", func(t *testing.T) {
		invoker := &fakeInvoker{result: "ok"}
		rec := doRequest(newTestAPI(invoker), http.MethodPost, "/api/v1/tools/policy_stats", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
