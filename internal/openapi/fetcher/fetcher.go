// Package fetcher 업스트림 오픈API 호출에 사용되는 HTTP 클라이언트 계층을 제공합니다.
//
// 모든 업스트림 호출은 요청당 정확히 한 번의 GET 요청만 수행하며,
// 재시도나 백오프는 적용하지 않습니다.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	"golang.org/x/net/html/charset"
)

// defaultTimeout 업스트림 응답 대기 시간의 기본값입니다.
const defaultTimeout = 30 * time.Second

// maxResponseBodySize 응답 본문의 최대 허용 크기입니다. (10MB)
// 비정상적으로 큰 응답으로부터 메모리를 보호합니다.
const maxResponseBodySize = 10 * 1024 * 1024

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
// 테스트에서 네트워크를 대체할 수 있도록 실제 전송을 추상화합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPFetcher 기본 타임아웃(30초) 및 User-Agent 자동 추가 기능이 내장된 HTTP 클라이언트 구현체입니다.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher 기본 타임아웃 설정이 포함된 새로운 HTTPFetcher 인스턴스를 생성합니다.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Do 커스텀 HTTP 요청을 실행합니다.
// 요청 헤더에 User-Agent가 없는 경우 기본값을 추가하여 봇 차단을 방지합니다.
func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	}
	return h.client.Do(req)
}

// FetchBytes 지정된 URL에 쿼리 파라미터를 붙여 GET 요청을 보내고, 응답 본문을 UTF-8 바이트로 반환합니다.
//
// 응답 헤더의 Content-Type을 분석하여 비 UTF-8 인코딩(예: EUC-KR) 응답도
// 자동으로 UTF-8로 변환합니다. 2xx 이외의 상태 코드는 상태 코드를 포함한 에러로 처리합니다.
func FetchBytes(ctx context.Context, f Fetcher, rawURL string, query url.Values) ([]byte, error) {
	fullURL := rawURL
	if len(query) > 0 {
		fullURL = rawURL + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, fmt.Sprintf("업스트림 요청 생성에 실패했습니다 (URL: %s)", rawURL))
	}

	resp, err := f.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("업스트림(%s) 요청 전송 중 에러가 발생했습니다", rawURL))
	}
	defer resp.Body.Close() // 응답을 받은 즉시 defer 설정하여 리소스 누수 방지

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperrors.New(apperrors.ExecutionFailed, fmt.Sprintf("업스트림(%s) 요청이 실패했습니다. 상태 코드: %s", rawURL, resp.Status))
	}

	// Content-Type 헤더를 기반으로 인코딩을 UTF-8로 변환
	utf8Reader, err := charset.NewReader(io.LimitReader(resp.Body, maxResponseBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("업스트림(%s) 응답의 인코딩 변환이 실패하였습니다", rawURL))
	}

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("업스트림(%s) 응답 본문 읽기가 실패하였습니다", rawURL))
	}

	return body, nil
}

// FetchJSON GET 요청을 보내고 JSON 응답 본문을 지정된 구조체(v)로 디코딩합니다.
// 디코딩 전의 원본 본문도 함께 반환하여, 호출자가 보조 필드를 관대하게 탐색할 수 있도록 합니다.
func FetchJSON(ctx context.Context, f Fetcher, rawURL string, query url.Values, v any) ([]byte, error) {
	body, err := FetchBytes(ctx, f, rawURL, query)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("업스트림(%s) 응답의 JSON 변환이 실패하였습니다", rawURL))
	}

	return body, nil
}
