// Package policy 온통청년 청년정책 오픈API(JSON)를 호출하는 클라이언트를 제공합니다.
package policy

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

// DefaultBaseURL 청년정책 목록 조회 API의 기본 엔드포인트입니다.
const DefaultBaseURL = "https://www.youthcenter.go.kr/go/ythip/getPlcy"

// successCode JSON 계열 API가 정상 처리 시 반환하는 결과 코드입니다.
const successCode = 200

const (
	defaultPageNum  = 1
	defaultPageSize = 10
)

// Client 청년정책 API 클라이언트입니다.
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

// NewClient 새로운 청년정책 API 클라이언트를 생성합니다.
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

// SearchParams 정책 검색 조건입니다. 모든 필드는 선택 사항입니다.
type SearchParams struct {
	Keyword  string // 정책명 검색 키워드
	Category string // 정책 분야 (일자리/주거/교육/복지문화/참여권리)
	ZipCode  string // 지역 코드 (5자리, 시도 전체는 시도코드+"000")
	PolicyNo string // 정책 번호 (상세 조회 시)
	PageNum  int    // 페이지 번호 (기본 1)
	PageSize int    // 페이지 크기 (기본 10)
}

// SearchResult 정책 검색 결과와 페이지네이션 메타데이터입니다.
type SearchResult struct {
	Policies []model.Policy
	Paging   model.Paging
}

// envelope 업스트림 JSON 응답의 외곽 구조입니다.
// 결과 코드/메시지는 배포본에 따라 숫자 또는 문자열로 내려오므로
// 구조체 디코딩 대신 gjson으로 관대하게 탐색합니다.
type envelope struct {
	Result struct {
		Pagging model.Paging   `json:"pagging"`
		List    []model.Policy `json:"list"`
	} `json:"result"`
}

// Search 조건에 맞는 청년정책 목록을 조회합니다.
//
// 업스트림 결과 코드가 200이 아니거나 HTTP 상태가 2xx가 아니면 에러를 반환합니다.
// 업스트림이 목록 필드를 생략한 경우 빈 슬라이스로 정규화합니다.
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

	if params.Keyword != "" {
		query.Set("plcyNm", params.Keyword)
	}
	if params.Category != "" {
		query.Set("lclsfNm", params.Category)
	}
	if params.ZipCode != "" {
		query.Set("zipCd", params.ZipCode)
	}
	if params.PolicyNo != "" {
		query.Set("plcyNo", params.PolicyNo)
	}

	var resp envelope
	body, err := fetcher.FetchJSON(ctx, c.fetcher, c.baseURL, query, &resp)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "청년정책 API 호출이 실패하였습니다")
	}

	resultCode := int(gjson.GetBytes(body, "resultCode").Int())
	if resultCode != successCode {
		return nil, apperrors.New(apperrors.ExecutionFailed,
			fmt.Sprintf("청년정책 API가 오류를 반환하였습니다 (코드: %d, 메시지: %s)",
				resultCode, gjson.GetBytes(body, "resultMessage").String()))
	}

	policies := resp.Result.List
	if policies == nil {
		policies = []model.Policy{}
	}

	paging := resp.Result.Pagging
	if paging.TotalCount == 0 {
		paging.TotalCount = int(gjson.GetBytes(body, "result.pagging.totCount").Int())
	}

	return &SearchResult{Policies: policies, Paging: paging}, nil
}

// Get 정책 번호로 단일 정책을 조회합니다. 결과가 없으면 NotFound 에러를 반환합니다.
func (c *Client) Get(ctx context.Context, policyNo string) (*model.Policy, error) {
	if policyNo == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "정책 번호(plcyNo)는 필수 항목입니다")
	}

	result, err := c.Search(ctx, SearchParams{PolicyNo: policyNo, PageSize: 1})
	if err != nil {
		return nil, err
	}
	if len(result.Policies) == 0 {
		return nil, apperrors.New(apperrors.NotFound, fmt.Sprintf("정책 번호('%s')에 해당하는 정책을 찾을 수 없습니다", policyNo))
	}

	return &result.Policies[0], nil
}
