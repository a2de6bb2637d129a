// Package mcp 게이트웨이의 도구들을 MCP(Model Context Protocol) 서버로 노출합니다.
//
// stdio, SSE, Streamable HTTP 세 가지 구동 모드를 지원하며, 모드는 설정으로 결정됩니다.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/darkkaiser/youth-gateway/internal/config"
	"github.com/darkkaiser/youth-gateway/internal/openapi/aggregate"
	"github.com/darkkaiser/youth-gateway/internal/openapi/policy"
	"github.com/darkkaiser/youth-gateway/internal/openapi/work24"
	applog "github.com/darkkaiser/youth-gateway/pkg/log"
)

// shutdownTimeout HTTP 계열 모드에서 종료 시 대기하는 최대 시간입니다.
const shutdownTimeout = 10 * time.Second

// Server MCP 프로토콜로 도구를 제공하는 서버입니다.
type Server struct {
	mcpServer *server.MCPServer

	// 운영 API 등 MCP 전송 계층 밖에서의 도구 호출을 위한 이름 기반 레지스트리
	toolNames    []string
	toolHandlers map[string]server.ToolHandlerFunc

	mode       string
	listenPort int

	aggregate *aggregate.Service
	policies  *policy.Client
	work24    *work24.Client

	logger *applog.Entry
}

// NewServer 모든 도구가 등록된 MCP 서버를 생성합니다.
func NewServer(cfg *config.AppConfig, version string, agg *aggregate.Service, p *policy.Client, w *work24.Client) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			config.AppName,
			version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		toolHandlers: make(map[string]server.ToolHandlerFunc),
		mode:         cfg.Server.Mode,
		listenPort:   cfg.Server.ListenPort,
		aggregate:    agg,
		policies:     p,
		work24:       w,
		logger:       applog.WithComponent("mcp-server"),
	}

	s.registerTools()

	return s
}

// Run 설정된 모드로 MCP 서버를 구동합니다.
//
// stdio 모드는 표준 입력이 닫힐 때까지 블로킹되며,
// HTTP 계열 모드는 컨텍스트가 취소되면 유예 시간 내에 정상 종료합니다.
func (s *Server) Run(ctx context.Context) error {
	s.logger.WithFields(applog.Fields{
		"mode": s.mode,
		"port": s.listenPort,
	}).Info("MCP 서버를 시작합니다")

	addr := fmt.Sprintf(":%d", s.listenPort)

	switch s.mode {
	case config.ServerModeSSE:
		sse := server.NewSSEServer(s.mcpServer)
		return s.serveHTTP(ctx, addr, sse.Start, sse.Shutdown)

	case config.ServerModeStreamableHTTP:
		streamable := server.NewStreamableHTTPServer(s.mcpServer)
		return s.serveHTTP(ctx, addr, streamable.Start, streamable.Shutdown)

	default:
		if err := server.ServeStdio(s.mcpServer); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// serveHTTP HTTP 계열 전송 서버를 구동하고 컨텍스트 취소 시 정상 종료를 수행합니다.
func (s *Server) serveHTTP(ctx context.Context, addr string, start func(string) error, shutdown func(context.Context) error) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("종료 요청을 수신하여 MCP 서버를 정상 종료합니다")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			return err
		}

		// Start()의 반환(ErrServerClosed)을 기다려 고루틴 누수를 방지합니다.
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
