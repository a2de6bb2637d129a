package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/darkkaiser/youth-gateway/internal/openapi/aggregate"
	"github.com/darkkaiser/youth-gateway/internal/openapi/codes"
	"github.com/darkkaiser/youth-gateway/internal/openapi/policy"
	"github.com/darkkaiser/youth-gateway/internal/openapi/work24"
	"github.com/darkkaiser/youth-gateway/internal/render"
	applog "github.com/darkkaiser/youth-gateway/pkg/log"
)

// regionDescription 지역 인자를 받는 모든 도구가 공유하는 인자 설명입니다.
const regionDescription = "지역명(예: 서울, 부산) 또는 법정동 시도 코드(예: 11, 26)"

// registerTools 게이트웨이가 제공하는 모든 도구를 MCP 서버에 등록합니다.
func (s *Server) registerTools() {
	type toolDef struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}

	tools := []toolDef{
		{
			tool: mcp.NewTool("search_policies",
				mcp.WithDescription("온통청년 청년정책을 키워드/분야/지역 조건으로 검색합니다."),
				mcp.WithString("keyword", mcp.Description("정책명 검색 키워드")),
				mcp.WithString("category", mcp.Description("정책 분야 ("+strings.Join(codes.Categories, "/")+")")),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithNumber("page_size", mcp.Description("조회할 정책 수 (기본 10)")),
			),
			handler: s.handleSearchPolicies,
		},
		{
			tool: mcp.NewTool("get_policy_detail",
				mcp.WithDescription("정책 번호로 청년정책의 상세 정보를 조회합니다."),
				mcp.WithString("policy_no", mcp.Required(), mcp.Description("정책 번호 (plcyNo)")),
			),
			handler: s.handleGetPolicyDetail,
		},
		{
			tool: mcp.NewTool("recommend_policies",
				mcp.WithDescription("나이와 지역, 분야에 맞는 청년정책을 추천합니다."),
				mcp.WithNumber("age", mcp.Required(), mcp.Description("나이 (만 나이)")),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithString("category", mcp.Description("정책 분야 ("+strings.Join(codes.Categories, "/")+")")),
			),
			handler: s.handleRecommendPolicies,
		},
		{
			tool: mcp.NewTool("search_youth_centers",
				mcp.WithDescription("청년센터(온라인청년센터 공간)를 지역/키워드로 검색합니다."),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithString("keyword", mcp.Description("센터명 검색 키워드")),
			),
			handler: s.handleSearchYouthCenters,
		},
		{
			tool: mcp.NewTool("search_jobs",
				mcp.WithDescription("고용24 채용정보를 키워드/지역/학력/경력 조건으로 검색합니다."),
				mcp.WithString("keyword", mcp.Description("검색 키워드")),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithString("education", mcp.Description("최소 학력 코드")),
				mcp.WithString("career", mcp.Description("경력 구분 (N: 신입, E: 경력, Z: 무관)")),
				mcp.WithNumber("display", mcp.Description("조회할 채용정보 수 (기본 10)")),
			),
			handler: s.handleSearchJobs,
		},
		{
			tool: mcp.NewTool("search_urgent_jobs",
				mcp.WithDescription("마감일이 임박한 채용정보를 남은 일수 순으로 조회합니다."),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithNumber("within_days", mcp.Description("마감까지 남은 일수 상한 (기본 7)")),
			),
			handler: s.handleSearchUrgentJobs,
		},
		{
			tool: mcp.NewTool("search_small_giants",
				mcp.WithDescription("고용노동부 선정 강소기업을 지역/회사명으로 검색합니다."),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithString("keyword", mcp.Description("회사명 검색 키워드")),
			),
			handler: s.handleSearchSmallGiants,
		},
		{
			tool: mcp.NewTool("search_training_courses",
				mcp.WithDescription("국민내일배움카드 훈련과정을 검색합니다. 기간 미지정 시 오늘부터 90일 이내 시작 과정을 조회합니다."),
				mcp.WithString("keyword", mcp.Description("과정명 검색 키워드")),
				mcp.WithString("region", mcp.Description(regionDescription)),
				mcp.WithString("start_date", mcp.Description("훈련 시작일 범위의 시작 (YYYYMMDD)")),
				mcp.WithString("end_date", mcp.Description("훈련 시작일 범위의 끝 (YYYYMMDD)")),
			),
			handler: s.handleSearchTrainingCourses,
		},
		{
			tool: mcp.NewTool("search_employment_programs",
				mcp.WithDescription("고용센터의 취업역량 강화 프로그램(취업특강, 집단상담 등)을 검색합니다."),
				mcp.WithString("keyword", mcp.Description("프로그램명 검색 키워드")),
				mcp.WithString("region", mcp.Description(regionDescription)),
			),
			handler: s.handleSearchEmploymentPrograms,
		},
		{
			tool: mcp.NewTool("search_job_info",
				mcp.WithDescription("한국직업사전 기반 직업정보(하는 일, 임금, 전망)를 검색합니다."),
				mcp.WithString("keyword", mcp.Description("직업명 검색 키워드")),
				mcp.WithString("job_code", mcp.Description("직업 분류 코드")),
			),
			handler: s.handleSearchJobInfo,
		},
		{
			tool: mcp.NewTool("search_all_region",
				mcp.WithDescription("한 지역의 청년정책/청년센터/채용정보/강소기업/훈련과정을 한 번에 조회합니다."),
				mcp.WithString("region", mcp.Required(), mcp.Description(regionDescription)),
			),
			handler: s.handleSearchAllRegion,
		},
		{
			tool: mcp.NewTool("mega_search",
				mcp.WithDescription("키워드 하나로 정책/채용/훈련/프로그램/직업정보 전체를 통합 검색합니다."),
				mcp.WithString("keyword", mcp.Required(), mcp.Description("검색 키워드")),
				mcp.WithNumber("age", mcp.Description("나이 (만 나이, 지정 시 정책 결과에 연령 필터 적용)")),
				mcp.WithString("region", mcp.Description(regionDescription+" (지정 시 정책 결과를 해당 지역으로 한정)")),
			),
			handler: s.handleMegaSearch,
		},
		{
			tool: mcp.NewTool("training_job_bridge",
				mcp.WithDescription("훈련과정을 검색하고 각 과정의 NCS 직무 분야에 해당하는 채용정보를 연계하여 보여줍니다."),
				mcp.WithString("keyword", mcp.Required(), mcp.Description("훈련과정 검색 키워드")),
			),
			handler: s.handleTrainingJobBridge,
		},
		{
			tool: mcp.NewTool("youth_survival_kit",
				mcp.WithDescription("나이와 지역에 맞는 정책/마감 임박 채용/훈련과정/프로그램을 하나의 꾸러미로 조회합니다."),
				mcp.WithNumber("age", mcp.Required(), mcp.Description("나이 (만 나이)")),
				mcp.WithString("region", mcp.Required(), mcp.Description(regionDescription)),
			),
			handler: s.handleYouthSurvivalKit,
		},
		{
			tool: mcp.NewTool("zero_cost_plan",
				mcp.WithDescription("무료 또는 정부지원으로 이용할 수 있는 정책과 훈련과정만 모아 보여줍니다."),
				mcp.WithString("region", mcp.Required(), mcp.Description(regionDescription)),
				mcp.WithNumber("age", mcp.Description("나이 (만 나이, 지정 시 연령 필터 적용)")),
			),
			handler: s.handleZeroCostPlan,
		},
		{
			tool: mcp.NewTool("policy_stats",
				mcp.WithDescription("정책 분야별 정책 수 통계를 조회합니다."),
				mcp.WithString("region", mcp.Description(regionDescription+" (미지정 시 전국)")),
			),
			handler: s.handlePolicyStats,
		},
	}

	for _, def := range tools {
		s.mcpServer.AddTool(def.tool, def.handler)
		s.toolNames = append(s.toolNames, def.tool.Name)
		s.toolHandlers[def.tool.Name] = def.handler
	}
}

// toolError 도구 실행 실패를 로깅하고 MCP 에러 결과로 변환합니다.
//
// 업스트림 에러는 프로토콜 에러가 아닌 도구 결과(IsError)로 전달하여,
// 호출 측이 실패 내용을 읽고 후속 판단을 할 수 있도록 합니다.
func (s *Server) toolError(toolName string, err error) (*mcp.CallToolResult, error) {
	s.logger.WithError(err).WithFields(applog.Fields{"tool": toolName}).Error("도구 실행이 실패하였습니다")
	return mcp.NewToolResultError(err.Error()), nil
}

func (s *Server) handleSearchPolicies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := policy.SearchParams{
		Keyword:  request.GetString("keyword", ""),
		Category: request.GetString("category", ""),
		PageSize: request.GetInt("page_size", 0),
	}
	if region := request.GetString("region", ""); region != "" {
		params.ZipCode = codes.ZipFromRegion(codes.RegionCode(region))
	}

	result, err := s.policies.Search(ctx, params)
	if err != nil {
		return s.toolError("search_policies", err)
	}
	return mcp.NewToolResultText(render.Policies(result.Policies)), nil
}

func (s *Server) handleGetPolicyDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	policyNo, err := request.RequireString("policy_no")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p, err := s.policies.Get(ctx, policyNo)
	if err != nil {
		return s.toolError("get_policy_detail", err)
	}
	return mcp.NewToolResultText(render.PolicyDetail(p)), nil
}

func (s *Server) handleRecommendPolicies(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	age, err := request.RequireInt("age")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if age < 0 || age > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("나이(age)는 0에서 100 사이의 값이어야 합니다: %d", age)), nil
	}

	policies, err := s.aggregate.RecommendPolicies(ctx, age, request.GetString("region", ""), request.GetString("category", ""))
	if err != nil {
		return s.toolError("recommend_policies", err)
	}
	return mcp.NewToolResultText(render.Policies(policies)), nil
}

func (s *Server) handleSearchYouthCenters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	centers, err := s.aggregate.SearchCenters(ctx, request.GetString("region", ""), request.GetString("keyword", ""))
	if err != nil {
		return s.toolError("search_youth_centers", err)
	}
	return mcp.NewToolResultText(render.Centers(centers)), nil
}

func (s *Server) handleSearchJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := work24.JobSearchParams{
		Keyword:   request.GetString("keyword", ""),
		Education: request.GetString("education", ""),
		Career:    request.GetString("career", ""),
		Display:   request.GetInt("display", 0),
	}
	if region := request.GetString("region", ""); region != "" {
		params.Region = codes.ZipFromRegion(codes.RegionCode(region))
	}

	jobs, err := s.work24.SearchJobs(ctx, params)
	if err != nil {
		return s.toolError("search_jobs", err)
	}
	return mcp.NewToolResultText(render.Jobs(jobs)), nil
}

func (s *Server) handleSearchUrgentJobs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	urgent, err := s.aggregate.UrgentJobs(ctx, request.GetString("region", ""), request.GetInt("within_days", 0))
	if err != nil {
		return s.toolError("search_urgent_jobs", err)
	}
	return mcp.NewToolResultText(render.UrgentJobs(urgent)), nil
}

func (s *Server) handleSearchSmallGiants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := work24.SmallGiantSearchParams{
		Keyword: request.GetString("keyword", ""),
	}
	if region := request.GetString("region", ""); region != "" {
		params.Region = codes.ZipFromRegion(codes.RegionCode(region))
	}

	companies, err := s.work24.SearchSmallGiants(ctx, params)
	if err != nil {
		return s.toolError("search_small_giants", err)
	}
	return mcp.NewToolResultText(render.SmallGiants(companies)), nil
}

func (s *Server) handleSearchTrainingCourses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := work24.TrainingSearchParams{
		Keyword:   request.GetString("keyword", ""),
		StartDate: request.GetString("start_date", ""),
		EndDate:   request.GetString("end_date", ""),
	}
	if region := request.GetString("region", ""); region != "" {
		params.Region = codes.RegionCode(region)
	}

	courses, err := s.work24.SearchTrainingCourses(ctx, params)
	if err != nil {
		return s.toolError("search_training_courses", err)
	}
	return mcp.NewToolResultText(render.TrainingCourses(courses)), nil
}

func (s *Server) handleSearchEmploymentPrograms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := work24.EmpPgmSearchParams{
		Keyword: request.GetString("keyword", ""),
	}
	if region := request.GetString("region", ""); region != "" {
		params.Region = codes.ZipFromRegion(codes.RegionCode(region))
	}

	programs, err := s.work24.SearchEmploymentPrograms(ctx, params)
	if err != nil {
		return s.toolError("search_employment_programs", err)
	}
	return mcp.NewToolResultText(render.Programs(programs)), nil
}

func (s *Server) handleSearchJobInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos, err := s.work24.SearchJobInfo(ctx, work24.JobInfoSearchParams{
		Keyword: request.GetString("keyword", ""),
		JobCode: request.GetString("job_code", ""),
	})
	if err != nil {
		return s.toolError("search_job_info", err)
	}
	return mcp.NewToolResultText(render.JobInfos(infos)), nil
}

func (s *Server) handleSearchAllRegion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region, err := request.RequireString("region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	pkg, err := s.aggregate.Region(ctx, region)
	if err != nil {
		return s.toolError("search_all_region", err)
	}
	return mcp.NewToolResultText(render.RegionPackage(pkg)), nil
}

func (s *Server) handleMegaSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	age := request.GetInt("age", 0)
	if age < 0 || age > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("나이(age)는 0에서 100 사이의 값이어야 합니다: %d", age)), nil
	}

	result, err := s.aggregate.MegaSearch(ctx, aggregate.MegaSearchParams{
		Keyword: keyword,
		Age:     age,
		Region:  request.GetString("region", ""),
	})
	if err != nil {
		return s.toolError("mega_search", err)
	}
	return mcp.NewToolResultText(render.MegaSearch(result)), nil
}

func (s *Server) handleTrainingJobBridge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.aggregate.TrainingJobBridge(ctx, keyword)
	if err != nil {
		return s.toolError("training_job_bridge", err)
	}
	return mcp.NewToolResultText(render.Bridge(entries)), nil
}

func (s *Server) handleYouthSurvivalKit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	age, err := request.RequireInt("age")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if age < 0 || age > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("나이(age)는 0에서 100 사이의 값이어야 합니다: %d", age)), nil
	}

	region, err := request.RequireString("region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	kit, err := s.aggregate.BuildSurvivalKit(ctx, age, region)
	if err != nil {
		return s.toolError("youth_survival_kit", err)
	}
	return mcp.NewToolResultText(render.SurvivalKit(kit)), nil
}

func (s *Server) handleZeroCostPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	region, err := request.RequireString("region")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	age := request.GetInt("age", 0)
	if age < 0 || age > 100 {
		return mcp.NewToolResultError(fmt.Sprintf("나이(age)는 0에서 100 사이의 값이어야 합니다: %d", age)), nil
	}

	plan, err := s.aggregate.BuildZeroCostPlan(ctx, region, age)
	if err != nil {
		return s.toolError("zero_cost_plan", err)
	}
	return mcp.NewToolResultText(render.ZeroCostPlan(plan)), nil
}

func (s *Server) handlePolicyStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := s.aggregate.PolicyStats(ctx, request.GetString("region", ""))
	if err != nil {
		return s.toolError("policy_stats", err)
	}
	return mcp.NewToolResultText(render.PolicyStats(counts)), nil
}
