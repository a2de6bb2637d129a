// Package center 온통청년 청년센터 오픈API(JSON)를 호출하는 클라이언트를 제공합니다.
package center

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/darkkaiser/youth-gateway/internal/openapi/fetcher"
	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL 청년센터 목록 조회 API의 기본 엔드포인트입니다.
const DefaultBaseURL = "https://www.youthcenter.go.kr/go/ythip/getCnter"

const successCode = 200

const (
	defaultPageNum  = 1
	defaultPageSize = 10
)

// Client 청년센터 API 클라이언트입니다.
type Client struct {
	baseURL string
	apiKey  string
	fetcher fetcher.Fetcher
}

// Option Client 생성 옵션입니다.
type Option func(*Client)

// WithBaseURL 기본 엔드포인트를 변경합니다. (테스트용)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// NewClient 새로운 청년센터 API 클라이언트를 생성합니다.
func NewClient(apiKey string, f fetcher.Fetcher, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		fetcher: f,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchParams 청년센터 검색 조건입니다. 모든 필드는 선택 사항입니다.
type SearchParams struct {
	ProvinceCode string // 시도 코드 (2자리)
	Keyword      string // 센터명 검색 키워드
	PageNum      int
	PageSize     int
}

// SearchResult 청년센터 검색 결과와 페이지네이션 메타데이터입니다.
type SearchResult struct {
	Centers []model.Center
	Paging  model.Paging
}

// envelope 업스트림 JSON 응답의 외곽 구조입니다.
// 결과 코드/메시지는 배포본에 따라 숫자 또는 문자열로 내려오므로
// 구조체 디코딩 대신 gjson으로 관대하게 탐색합니다.
type envelope struct {
	Result struct {
		Pagging model.Paging   `json:"pagging"`
		List    []model.Center `json:"list"`
	} `json:"result"`
}

// Search 조건에 맞는 청년센터 목록을 조회합니다.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	query := url.Values{}
	query.Set("apiKeyNm", c.apiKey)
	query.Set("rtnType", "json")

	pageNum := params.PageNum
	if pageNum <= 0 {
		pageNum = defaultPageNum
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	query.Set("pageNum", strconv.Itoa(pageNum))
	query.Set("pageSize", strconv.Itoa(pageSize))

	if params.ProvinceCode != "" {
		query.Set("ctpvCd", params.ProvinceCode)
	}
	if params.Keyword != "" {
		query.Set("cntrNm", params.Keyword)
	}

	var resp envelope
	body, err := fetcher.FetchJSON(ctx, c.fetcher, c.baseURL, query, &resp)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "청년센터 API 호출이 실패하였습니다")
	}

	resultCode := int(gjson.GetBytes(body, "resultCode").Int())
	if resultCode != successCode {
		return nil, apperrors.New(apperrors.ExecutionFailed,
			fmt.Sprintf("청년센터 API가 오류를 반환하였습니다 (코드: %d, 메시지: %s)",
				resultCode, gjson.GetBytes(body, "resultMessage").String()))
	}

	centers := resp.Result.List
	if centers == nil {
		centers = []model.Center{}
	}

	paging := resp.Result.Pagging
	if paging.TotalCount == 0 {
		paging.TotalCount = int(gjson.GetBytes(body, "result.pagging.totCount").Int())
	}

	return &SearchResult{Centers: centers, Paging: paging}, nil
}
