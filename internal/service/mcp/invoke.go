package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
)

// ToolNames 등록된 도구 이름 목록을 등록 순서대로 반환합니다.
func (s *Server) ToolNames() []string {
	names := make([]string, len(s.toolNames))
	copy(names, s.toolNames)
	return names
}

// Invoke 이름으로 도구를 직접 실행하고 렌더링된 텍스트 결과를 반환합니다.
//
// MCP 전송 계층을 거치지 않는 호출 경로(운영 API)를 위한 진입점이며,
// 도구가 에러 결과를 반환한 경우 그 내용을 담은 에러로 변환합니다.
func (s *Server) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	handler, ok := s.toolHandlers[name]
	if !ok {
		return "", apperrors.New(apperrors.NotFound, fmt.Sprintf("등록되지 않은 도구입니다: '%s'", name))
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := handler(ctx, request)
	if err != nil {
		return "", err
	}

	text := resultText(result)
	if result.IsError {
		return "", apperrors.New(apperrors.ExecutionFailed, text)
	}
	return text, nil
}

// resultText 도구 결과의 첫 번째 텍스트 콘텐츠를 추출합니다.
func resultText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if textContent, ok := content.(mcp.TextContent); ok {
			return textContent.Text
		}
	}
	return ""
}
