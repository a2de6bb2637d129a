package work24

import (
	"context"
	"net/url"
	"strconv"

	"github.com/darkkaiser/youth-gateway/internal/openapi/filter"
	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
	"github.com/darkkaiser/youth-gateway/internal/openapi/xmlfield"
)

const (
	defaultStartPage = 1
	defaultDisplay   = 10

	// defaultTrainingWindowDays 훈련과정 검색 기간의 기본값(오늘부터 90일)입니다.
	defaultTrainingWindowDays = 90
)

// EndpointWanted 채용정보(워크넷 구인) API입니다.
var EndpointWanted = Endpoint{
	Name:     "wanted",
	BaseURL:  "https://www.work24.go.kr/cm/openApi/call/wk/callOpenApiSvcInfo210L01.do",
	KeyParam: "authKey",
	Defaults: url.Values{
		"returnType": {"XML"},
		"callTp":     {"L"}, // 목록 조회 고정
	},
	ItemTag: "wanted",
}

// EndpointSmallGiant 강소기업 조회 API입니다.
var EndpointSmallGiant = Endpoint{
	Name:     "smallGiant",
	BaseURL:  "https://www.work24.go.kr/cm/openApi/call/wk/callOpenApiSvcInfo212L01.do",
	KeyParam: "authKey",
	Defaults: url.Values{
		"returnType": {"XML"},
	},
	ItemTag: "smallGiant",
}

// EndpointJobInfo 직업정보 조회 API입니다.
var EndpointJobInfo = Endpoint{
	Name:     "jobInfo",
	BaseURL:  "https://www.work24.go.kr/cm/openApi/call/wk/callOpenApiSvcInfo213L01.do",
	KeyParam: "authKey",
	Defaults: url.Values{
		"returnType": {"XML"},
	},
	ItemTag: "jobInfo",
}

// EndpointTraining 국민내일배움카드 훈련과정(HRD-Net) API입니다.
var EndpointTraining = Endpoint{
	Name:     "training",
	BaseURL:  "https://www.work24.go.kr/cm/openApi/call/hr/callOpenApiSvcInfo310L01.do",
	KeyParam: "authKey",
	Defaults: url.Values{
		"returnType": {"XML"},
		"outType":    {"1"}, // 목록 출력 형태 고정
		"sort":       {"ASC"},
		"sortCol":    {"TRNG_BGDE"},
	},
	ItemTag: "scn_list",
}

// EndpointEmpPgm 취업역량 강화 프로그램 API입니다.
var EndpointEmpPgm = Endpoint{
	Name:     "empPgm",
	BaseURL:  "https://www.work24.go.kr/cm/openApi/call/wk/callOpenApiSvcInfo217L01.do",
	KeyParam: "authKey",
	Defaults: url.Values{
		"returnType": {"XML"},
	},
	ItemTag: "empPgm",
}

// Endpoints 지원하는 모든 XML 엔드포인트 목록입니다.
var Endpoints = []Endpoint{
	EndpointWanted,
	EndpointSmallGiant,
	EndpointJobInfo,
	EndpointTraining,
	EndpointEmpPgm,
}

// JobSearchParams 채용정보 검색 조건입니다.
type JobSearchParams struct {
	Keyword   string // 검색 키워드
	Region    string // 근무지역 코드 (5자리)
	Education string // 최소 학력 코드
	Career    string // 경력 구분
	StartPage int
	Display   int
}

// SearchJobs 조건에 맞는 채용정보 목록을 조회합니다.
func (c *Client) SearchJobs(ctx context.Context, params JobSearchParams) ([]model.JobPosting, error) {
	query := url.Values{}
	query.Set("startPage", strconv.Itoa(pageOrDefault(params.StartPage)))
	query.Set("display", strconv.Itoa(displayOrDefault(params.Display)))

	if params.Keyword != "" {
		query.Set("keyword", params.Keyword)
	}
	if params.Region != "" {
		query.Set("region", params.Region)
	}
	if params.Education != "" {
		query.Set("education", params.Education)
	}
	if params.Career != "" {
		query.Set("career", params.Career)
	}

	items, err := c.fetchItems(ctx, EndpointWanted, query)
	if err != nil {
		return nil, err
	}

	postings := make([]model.JobPosting, 0, len(items))
	for _, item := range items {
		postings = append(postings, decodeJobPosting(item))
	}
	return postings, nil
}

func decodeJobPosting(item string) model.JobPosting {
	return model.JobPosting{
		AuthNo:       xmlfield.Value(item, "wantedAuthNo"),
		Company:      xmlfield.Value(item, "company"),
		Title:        xmlfield.Value(item, "title"),
		SalaryType:   xmlfield.Value(item, "salTpNm"),
		Salary:       xmlfield.Value(item, "sal"),
		Region:       xmlfield.Value(item, "region"),
		HolidayType:  xmlfield.Value(item, "holidayTpNm"),
		MinEducation: xmlfield.Value(item, "minEdubg"),
		Career:       xmlfield.Value(item, "career"),
		CloseDate:    xmlfield.Value(item, "closeDt"),
		DetailURL:    xmlfield.Value(item, "wantedInfoUrl"),
		JobCode:      xmlfield.Value(item, "jobsCd"),
		EmployType:   xmlfield.Value(item, "empTpNm"),
	}
}

// SmallGiantSearchParams 강소기업 검색 조건입니다.
type SmallGiantSearchParams struct {
	Region    string // 지역 코드
	Keyword   string // 회사명 검색 키워드
	StartPage int
	Display   int
}

// SearchSmallGiants 조건에 맞는 강소기업 목록을 조회합니다.
func (c *Client) SearchSmallGiants(ctx context.Context, params SmallGiantSearchParams) ([]model.SmallGiantCompany, error) {
	query := url.Values{}
	query.Set("startPage", strconv.Itoa(pageOrDefault(params.StartPage)))
	query.Set("display", strconv.Itoa(displayOrDefault(params.Display)))

	if params.Region != "" {
		query.Set("region", params.Region)
	}
	if params.Keyword != "" {
		query.Set("coNm", params.Keyword)
	}

	items, err := c.fetchItems(ctx, EndpointSmallGiant, query)
	if err != nil {
		return nil, err
	}

	companies := make([]model.SmallGiantCompany, 0, len(items))
	for _, item := range items {
		companies = append(companies, model.SmallGiantCompany{
			BusinessNo:  xmlfield.Value(item, "busiNo"),
			Name:        xmlfield.Value(item, "coNm"),
			Brand:       xmlfield.Value(item, "brandNm"),
			CEO:         xmlfield.Value(item, "reprNm"),
			Industry:    xmlfield.Value(item, "indTpNm"),
			Address:     xmlfield.Value(item, "coAddr"),
			Phone:       xmlfield.Value(item, "coTelNo"),
			Homepage:    xmlfield.Value(item, "homePg"),
			MainProduct: xmlfield.Value(item, "mainProdNm"),
			Workers:     xmlfield.Value(item, "workerCnt"),
			SelectYear:  xmlfield.Value(item, "selYear"),
		})
	}
	return companies, nil
}

// JobInfoSearchParams 직업정보 검색 조건입니다.
type JobInfoSearchParams struct {
	Keyword   string // 직업명 검색 키워드
	JobCode   string // NCS 기반 직업 분류 코드
	StartPage int
	Display   int
}

// SearchJobInfo 조건에 맞는 직업정보 목록을 조회합니다.
func (c *Client) SearchJobInfo(ctx context.Context, params JobInfoSearchParams) ([]model.JobInfo, error) {
	query := url.Values{}
	query.Set("startPage", strconv.Itoa(pageOrDefault(params.StartPage)))
	query.Set("display", strconv.Itoa(displayOrDefault(params.Display)))

	if params.Keyword != "" {
		query.Set("jobNm", params.Keyword)
	}
	if params.JobCode != "" {
		query.Set("jobCd", params.JobCode)
	}

	items, err := c.fetchItems(ctx, EndpointJobInfo, query)
	if err != nil {
		return nil, err
	}

	infos := make([]model.JobInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, model.JobInfo{
			Code:     xmlfield.Value(item, "jobCd"),
			Name:     xmlfield.Value(item, "jobNm"),
			Summary:  xmlfield.Value(item, "sumry"),
			Wage:     xmlfield.Value(item, "wage"),
			Prospect: xmlfield.Value(item, "prospect"),
			Related:  xmlfield.Value(item, "relJobNm"),
		})
	}
	return infos, nil
}

// TrainingSearchParams 훈련과정 검색 조건입니다.
type TrainingSearchParams struct {
	Keyword   string // 과정명 검색 키워드
	Region    string // 훈련 지역 코드 (2자리 시도)
	StartDate string // 훈련 시작일 범위의 시작 (YYYYMMDD, 기본: 오늘)
	EndDate   string // 훈련 시작일 범위의 끝 (YYYYMMDD, 기본: 오늘+90일)
	PageNum   int
	PageSize  int
}

// SearchTrainingCourses 조건에 맞는 훈련과정 목록을 조회합니다.
// 검색 기간이 비어있으면 오늘부터 90일 이내에 시작하는 과정을 조회합니다.
func (c *Client) SearchTrainingCourses(ctx context.Context, params TrainingSearchParams) ([]model.TrainingCourse, error) {
	startDate := params.StartDate
	if startDate == "" {
		startDate = filter.DateAfterDays(0)
	}
	endDate := params.EndDate
	if endDate == "" {
		endDate = filter.DateAfterDays(defaultTrainingWindowDays)
	}

	query := url.Values{}
	query.Set("pageNum", strconv.Itoa(pageOrDefault(params.PageNum)))
	query.Set("pageSize", strconv.Itoa(displayOrDefault(params.PageSize)))
	query.Set("srchTraStDt", startDate)
	query.Set("srchTraEndDt", endDate)

	if params.Keyword != "" {
		query.Set("srchTraProcessNm", params.Keyword)
	}
	if params.Region != "" {
		query.Set("srchTraArea1", params.Region)
	}

	items, err := c.fetchItems(ctx, EndpointTraining, query)
	if err != nil {
		return nil, err
	}

	courses := make([]model.TrainingCourse, 0, len(items))
	for _, item := range items {
		courses = append(courses, decodeTrainingCourse(item))
	}
	return courses, nil
}

func decodeTrainingCourse(item string) model.TrainingCourse {
	return model.TrainingCourse{
		ID:             xmlfield.Value(item, "trprId"),
		Name:           xmlfield.Value(item, "title"),
		Institution:    xmlfield.Value(item, "subTitle"),
		Degree:         xmlfield.Value(item, "trprDegr"),
		StartDate:      xmlfield.Value(item, "traStartDate"),
		EndDate:        xmlfield.Value(item, "traEndDate"),
		Target:         xmlfield.Value(item, "trainTarget"),
		TargetCode:     xmlfield.Value(item, "trainTargetCd"),
		Address:        xmlfield.Value(item, "address"),
		Phone:          xmlfield.Value(item, "telNo"),
		PlannedCount:   xmlfield.Value(item, "yardMan"),
		ActualCount:    xmlfield.Value(item, "courseMan"),
		AvailableCount: xmlfield.Value(item, "realMan"),
		EmployRate3M:   xmlfield.Value(item, "eiEmplRate3"),
		Satisfaction:   xmlfield.Value(item, "grade"),
		NCSApplied:     xmlfield.Value(item, "ncsYn"),
		NCSCode:        xmlfield.Value(item, "ncsCd"),
		NCSName:        xmlfield.Value(item, "ncsNm"),
	}
}

// EmpPgmSearchParams 취업역량 강화 프로그램 검색 조건입니다.
type EmpPgmSearchParams struct {
	Keyword   string // 프로그램명 검색 키워드
	Region    string // 지역 코드
	StartPage int
	Display   int
}

// SearchEmploymentPrograms 조건에 맞는 취업역량 강화 프로그램 목록을 조회합니다.
func (c *Client) SearchEmploymentPrograms(ctx context.Context, params EmpPgmSearchParams) ([]model.EmploymentProgram, error) {
	query := url.Values{}
	query.Set("startPage", strconv.Itoa(pageOrDefault(params.StartPage)))
	query.Set("display", strconv.Itoa(displayOrDefault(params.Display)))

	if params.Keyword != "" {
		query.Set("pgmNm", params.Keyword)
	}
	if params.Region != "" {
		query.Set("regionCd", params.Region)
	}

	items, err := c.fetchItems(ctx, EndpointEmpPgm, query)
	if err != nil {
		return nil, err
	}

	programs := make([]model.EmploymentProgram, 0, len(items))
	for _, item := range items {
		programs = append(programs, model.EmploymentProgram{
			OrgName:    xmlfield.Value(item, "orgNm"),
			Name:       xmlfield.Value(item, "pgmNm"),
			CourseName: xmlfield.Value(item, "pgmSubNm"),
			Target:     xmlfield.Value(item, "pgmTarget"),
			StartDate:  xmlfield.Value(item, "pgmStdt"),
			EndDate:    xmlfield.Value(item, "pgmEndt"),
			TimeRange:  xmlfield.Value(item, "openTime"),
			Hours:      xmlfield.Value(item, "totHr"),
			Venue:      xmlfield.Value(item, "openPlcCont"),
		})
	}
	return programs, nil
}

func pageOrDefault(page int) int {
	if page <= 0 {
		return defaultStartPage
	}
	return page
}

func displayOrDefault(display int) int {
	if display <= 0 {
		return defaultDisplay
	}
	return display
}
