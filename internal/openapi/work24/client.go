// Package work24 고용24/HRD-Net 계열 XML 오픈API를 호출하는 클라이언트를 제공합니다.
//
// 이 계열의 API들은 동일한 질의/응답 골격(authKey 인증, returnType=XML 마커,
// 반복 item 블록)을 공유하고 item 태그명과 필드 목록만 다르므로,
// 엔드포인트 설정(Endpoint)으로 매개변수화된 하나의 제네릭 클라이언트로 처리합니다.
package work24

import (
	"context"
	"net/url"

	"github.com/darkkaiser/youth-gateway/internal/openapi/fetcher"
	"github.com/darkkaiser/youth-gateway/internal/openapi/xmlfield"
	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
)

// Endpoint XML API 하나의 질의 방언과 응답 형태를 정의합니다.
type Endpoint struct {
	Name     string     // 엔드포인트 식별자 (로깅/테스트 오버라이드용)
	BaseURL  string     // 기본 URL
	KeyParam string     // API 키 파라미터명
	Defaults url.Values // 엔드포인트별 고정 기본 파라미터
	ItemTag  string     // 반복 item 블록의 태그명
}

// Client 고용24 계열 XML API 클라이언트입니다.
type Client struct {
	apiKeys  map[string]string // 엔드포인트명 → API 키
	fetcher  fetcher.Fetcher
	baseURLs map[string]string // 엔드포인트명 → URL 오버라이드 (테스트용)
}

// Option Client 생성 옵션입니다.
type Option func(*Client)

// WithBaseURL 지정된 엔드포인트의 기본 URL을 변경합니다. (테스트용)
func WithBaseURL(endpointName, baseURL string) Option {
	return func(c *Client) {
		c.baseURLs[endpointName] = baseURL
	}
}

// NewClient 새로운 고용24 계열 XML API 클라이언트를 생성합니다.
// apiKeys는 엔드포인트명(EndpointWanted.Name 등)을 키로 하는 API 키 매핑입니다.
func NewClient(apiKeys map[string]string, f fetcher.Fetcher, opts ...Option) *Client {
	c := &Client{
		apiKeys:  apiKeys,
		fetcher:  f,
		baseURLs: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// fetchItems 엔드포인트 설정에 따라 한 번의 GET 요청을 수행하고 item 블록 목록을 반환합니다.
//
// HTTP 상태가 2xx가 아니면 하드 실패이며, item이 하나도 없는 것은 에러가 아니라 빈 목록입니다.
// XML 계열 API에는 JSON 계열과 같은 애플리케이션 수준 결과 코드가 존재하지 않습니다.
func (c *Client) fetchItems(ctx context.Context, ep Endpoint, params url.Values) ([]string, error) {
	query := url.Values{}
	for key, values := range ep.Defaults {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	for key, values := range params {
		for _, v := range values {
			query.Set(key, v)
		}
	}
	query.Set(ep.KeyParam, c.apiKeys[ep.Name])

	baseURL := ep.BaseURL
	if override, ok := c.baseURLs[ep.Name]; ok {
		baseURL = override
	}

	body, err := fetcher.FetchBytes(ctx, c.fetcher, baseURL, query)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, ep.Name+" API 호출이 실패하였습니다")
	}

	return xmlfield.Items(string(body), ep.ItemTag), nil
}
