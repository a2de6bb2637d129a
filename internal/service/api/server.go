// Package api 상태 확인과 도구 호출을 위한 운영용 REST API 서버를 제공합니다.
//
// MCP 전송 계층과 별개의 보조 표면으로, 배포 환경의 헬스체크와
// MCP 클라이언트 없이 도구를 시험 호출하는 용도로 사용됩니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/darkkaiser/youth-gateway/internal/config"
	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/youth-gateway/pkg/log"
)

const (
	defaultRequestTimeout = 60 * time.Second
	defaultMaxBodySize    = "1M"
	shutdownTimeout       = 10 * time.Second
)

// ToolInvoker 이름 기반 도구 호출 계약입니다. MCP 서버가 이를 구현합니다.
type ToolInvoker interface {
	ToolNames() []string
	Invoke(ctx context.Context, name string, args map[string]any) (string, error)
}

// Server 운영용 REST API 서버입니다.
type Server struct {
	echo       *echo.Echo
	listenPort int
	version    string
	invoker    ToolInvoker
	logger     *applog.Entry
}

// NewServer 라우트와 미들웨어가 구성된 운영 API 서버를 생성합니다.
func NewServer(cfg *config.AppConfig, version string, invoker ToolInvoker) *Server {
	e := echo.New()
	e.Debug = cfg.Debug
	e.HideBanner = true

	allowOrigins := cfg.Ops.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(defaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultRequestTimeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.Secure())

	s := &Server{
		echo:       e,
		listenPort: cfg.Ops.ListenPort,
		version:    version,
		invoker:    invoker,
		logger:     applog.WithComponent("ops-api"),
	}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.handleHealthz)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/tools", s.handleListTools)
	v1.POST("/tools/:name", s.handleInvokeTool)
}

// Run 운영 API 서버를 구동하고 컨텍스트 취소 시 정상 종료합니다.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.listenPort)
	s.logger.WithFields(applog.Fields{"addr": addr}).Info("운영 API 서버를 시작합니다")

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("종료 요청을 수신하여 운영 API 서버를 정상 종료합니다")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"app":     config.AppName,
		"version": s.version,
	})
}

func (s *Server) handleListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"tools": s.invoker.ToolNames(),
	})
}

// invokeRequest 도구 호출 요청의 본문입니다. 인자가 없는 도구는 빈 본문도 허용합니다.
type invokeRequest struct {
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleInvokeTool(c echo.Context) error {
	name := c.Param("name")

	var req invokeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "요청 본문을 해석할 수 없습니다")
	}

	text, err := s.invoker.Invoke(c.Request().Context(), name, req.Arguments)
	if err != nil {
		s.logger.WithError(err).WithFields(applog.Fields{"tool": name}).Error("도구 호출이 실패하였습니다")
		return c.JSON(statusFromError(err), map[string]string{
			"tool":  name,
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"tool":   name,
		"result": text,
	})
}

// statusFromError 도메인 에러 타입을 HTTP 상태 코드로 변환합니다.
func statusFromError(err error) int {
	switch {
	case apperrors.Is(err, apperrors.NotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.InvalidInput):
		return http.StatusBadRequest
	case apperrors.Is(err, apperrors.Timeout):
		return http.StatusGatewayTimeout
	case apperrors.Is(err, apperrors.ExecutionFailed), apperrors.Is(err, apperrors.Unavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
