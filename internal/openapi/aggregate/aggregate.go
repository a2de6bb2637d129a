// Package aggregate 여러 업스트림 API를 병렬로 호출하여 하나의 결과로 모으는 서비스를 제공합니다.
//
// 집계 결과의 중심이 되는 주(primary) 조회가 실패하면 전체 집계가 실패하고,
// 부가(secondary) 조회가 실패하면 해당 섹션만 빈 목록으로 대체된 채 성공합니다.
package aggregate

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/darkkaiser/youth-gateway/internal/openapi/center"
	"github.com/darkkaiser/youth-gateway/internal/openapi/codes"
	"github.com/darkkaiser/youth-gateway/internal/openapi/filter"
	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
	"github.com/darkkaiser/youth-gateway/internal/openapi/policy"
	"github.com/darkkaiser/youth-gateway/internal/openapi/work24"
	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	applog "github.com/darkkaiser/youth-gateway/pkg/log"
)

const (
	// 필터링을 전제로 하는 조회에서 사용하는 넉넉한 페이지 크기
	widePageSize = 50

	// defaultUrgentWindowDays 마감 임박 채용정보의 기본 검색 기간(일)입니다.
	defaultUrgentWindowDays = 7

	// bridgeCourseLimit 훈련과정→채용정보 연계 조회 시 대상으로 삼는 과정 수의 상한입니다.
	bridgeCourseLimit = 5
)

// Service 업스트림 클라이언트들을 묶어 집계 조회를 수행합니다.
type Service struct {
	policies *policy.Client
	centers  *center.Client
	work24   *work24.Client
	logger   *applog.Entry
}

// NewService 새로운 집계 서비스를 생성합니다.
func NewService(p *policy.Client, c *center.Client, w *work24.Client) *Service {
	return &Service{
		policies: p,
		centers:  c,
		work24:   w,
		logger:   applog.WithComponent("aggregate"),
	}
}

// task 병렬 집계의 단위 작업입니다.
type task struct {
	name    string
	primary bool
	run     func(ctx context.Context) error
}

// gather 작업들을 병렬로 실행합니다.
//
// primary 작업의 에러는 그대로 반환되어 전체 집계를 실패시키고,
// 나머지 작업의 에러는 경고 로그만 남긴 채 무시됩니다. 각 작업의 run은
// 자신이 캡처한 결과 변수에만 기록하므로 작업 간 동기화가 필요하지 않습니다.
func (s *Service) gather(ctx context.Context, tasks []task) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		t := t
		g.Go(func() error {
			err := t.run(gctx)
			if err == nil {
				return nil
			}
			if t.primary {
				return err
			}
			s.logger.WithError(err).Warnf("%s 조회가 실패하여 해당 섹션을 비웁니다", t.name)
			return nil
		})
	}
	return g.Wait()
}

// RegionPackage 특정 지역의 정책/청년센터/채용정보/강소기업/훈련과정을 모은 결과입니다.
type RegionPackage struct {
	RegionName string
	Policies   []model.Policy
	Centers    []model.Center
	Jobs       []model.JobPosting
	Companies  []model.SmallGiantCompany
	Courses    []model.TrainingCourse
}

// Region 지역명 또는 지역 코드로 해당 지역의 전체 정보 꾸러미를 조회합니다.
//
// 업스트림마다 요구하는 지역 코드 형태가 다릅니다. 청년센터/훈련과정은 2자리
// 시도 코드, 정책/채용정보는 5자리 코드, 강소기업은 입력 코드를 그대로 사용합니다.
// 정책 조회가 주 조회이며, 나머지 섹션은 실패 시 빈 목록으로 대체됩니다.
func (s *Service) Region(ctx context.Context, region string) (*RegionPackage, error) {
	provinceCode := codes.RegionCode(region)

	pkg := &RegionPackage{
		RegionName: codes.RegionName(provinceCode),
		Centers:    []model.Center{},
		Jobs:       []model.JobPosting{},
		Companies:  []model.SmallGiantCompany{},
		Courses:    []model.TrainingCourse{},
	}

	err := s.gather(ctx, []task{
		{name: "청년정책", primary: true, run: func(ctx context.Context) error {
			result, err := s.policies.Search(ctx, policy.SearchParams{ZipCode: codes.ZipFromRegion(provinceCode)})
			if err != nil {
				return err
			}
			pkg.Policies = result.Policies
			return nil
		}},
		{name: "청년센터", run: func(ctx context.Context) error {
			result, err := s.centers.Search(ctx, center.SearchParams{ProvinceCode: provinceCode})
			if err != nil {
				return err
			}
			pkg.Centers = result.Centers
			return nil
		}},
		{name: "채용정보", run: func(ctx context.Context) error {
			jobs, err := s.work24.SearchJobs(ctx, work24.JobSearchParams{Region: codes.ZipFromRegion(provinceCode)})
			if err != nil {
				return err
			}
			pkg.Jobs = jobs
			return nil
		}},
		{name: "강소기업", run: func(ctx context.Context) error {
			companies, err := s.work24.SearchSmallGiants(ctx, work24.SmallGiantSearchParams{Region: provinceCode})
			if err != nil {
				return err
			}
			pkg.Companies = companies
			return nil
		}},
		{name: "훈련과정", run: func(ctx context.Context) error {
			courses, err := s.work24.SearchTrainingCourses(ctx, work24.TrainingSearchParams{Region: provinceCode})
			if err != nil {
				return err
			}
			pkg.Courses = courses
			return nil
		}},
	})
	if err != nil {
		return nil, err
	}

	return pkg, nil
}

// MegaSearchParams 통합 검색 조건입니다. Age가 0 이하이거나 Region이 비어있으면
// 해당 조건은 적용하지 않습니다.
type MegaSearchParams struct {
	Keyword string
	Age     int
	Region  string
}

// MegaSearchResult 하나의 키워드로 모든 업스트림을 검색한 결과입니다.
type MegaSearchResult struct {
	Keyword  string
	Policies []model.Policy
	Jobs     []model.JobPosting
	Courses  []model.TrainingCourse
	Programs []model.EmploymentProgram
	JobInfos []model.JobInfo
}

// MegaSearch 키워드 하나로 정책/채용/훈련/프로그램/직업정보를 한 번에 검색합니다.
// 정책 검색이 주 조회이며, 나머지 섹션은 실패 시 빈 목록으로 대체됩니다.
// 나이와 지역 조건은 정책 섹션에만 적용됩니다.
func (s *Service) MegaSearch(ctx context.Context, params MegaSearchParams) (*MegaSearchResult, error) {
	keyword := params.Keyword

	result := &MegaSearchResult{
		Keyword:  keyword,
		Jobs:     []model.JobPosting{},
		Courses:  []model.TrainingCourse{},
		Programs: []model.EmploymentProgram{},
		JobInfos: []model.JobInfo{},
	}

	err := s.gather(ctx, []task{
		{name: "청년정책", primary: true, run: func(ctx context.Context) error {
			searchParams := policy.SearchParams{Keyword: keyword}
			if params.Region != "" {
				searchParams.ZipCode = codes.ZipFromRegion(codes.RegionCode(params.Region))
			}
			if params.Age > 0 {
				searchParams.PageSize = widePageSize
			}

			r, err := s.policies.Search(ctx, searchParams)
			if err != nil {
				return err
			}

			policies := r.Policies
			if params.Age > 0 {
				policies = filter.ByAge(policies, params.Age)
			}
			result.Policies = policies
			return nil
		}},
		{name: "채용정보", run: func(ctx context.Context) error {
			jobs, err := s.work24.SearchJobs(ctx, work24.JobSearchParams{Keyword: keyword})
			if err != nil {
				return err
			}
			result.Jobs = jobs
			return nil
		}},
		{name: "훈련과정", run: func(ctx context.Context) error {
			courses, err := s.work24.SearchTrainingCourses(ctx, work24.TrainingSearchParams{Keyword: keyword})
			if err != nil {
				return err
			}
			result.Courses = courses
			return nil
		}},
		{name: "취업역량 강화 프로그램", run: func(ctx context.Context) error {
			programs, err := s.work24.SearchEmploymentPrograms(ctx, work24.EmpPgmSearchParams{Keyword: keyword})
			if err != nil {
				return err
			}
			result.Programs = programs
			return nil
		}},
		{name: "직업정보", run: func(ctx context.Context) error {
			infos, err := s.work24.SearchJobInfo(ctx, work24.JobInfoSearchParams{Keyword: keyword})
			if err != nil {
				return err
			}
			result.JobInfos = infos
			return nil
		}},
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// BridgeEntry 훈련과정 하나와 해당 NCS 직무 분야의 채용정보를 연결한 항목입니다.
type BridgeEntry struct {
	Course  model.TrainingCourse
	NCSName string
	Jobs    []model.JobPosting
}

// TrainingJobBridge 키워드로 훈련과정을 검색한 뒤, 각 과정의 NCS 직무 분야명으로
// 채용정보를 연계 조회합니다. 훈련과정 조회가 주 조회이며, 개별 과정의
// 채용정보 조회 실패는 해당 항목의 채용 목록만 비웁니다.
//
// NCS 코드가 없는 과정은 연계 대상에서 제외하고 과정 정보만 반환합니다.
func (s *Service) TrainingJobBridge(ctx context.Context, keyword string) ([]BridgeEntry, error) {
	courses, err := s.work24.SearchTrainingCourses(ctx, work24.TrainingSearchParams{Keyword: keyword})
	if err != nil {
		return nil, err
	}

	if len(courses) > bridgeCourseLimit {
		courses = courses[:bridgeCourseLimit]
	}

	entries := make([]BridgeEntry, len(courses))
	tasks := make([]task, 0, len(courses))
	for i, course := range courses {
		i, course := i, course

		ncsName := codes.NCSName(course.NCSCode)
		entries[i] = BridgeEntry{Course: course, NCSName: ncsName, Jobs: []model.JobPosting{}}
		if course.NCSApplied != "Y" || ncsName == "" {
			continue
		}

		tasks = append(tasks, task{name: "NCS 연계 채용정보", run: func(ctx context.Context) error {
			jobs, err := s.work24.SearchJobs(ctx, work24.JobSearchParams{Keyword: ncsName})
			if err != nil {
				return err
			}
			entries[i].Jobs = jobs
			return nil
		}})
	}

	if err := s.gather(ctx, tasks); err != nil {
		return nil, err
	}

	return entries, nil
}

// SurvivalKit 나이와 지역에 맞춘 생존 꾸러미 조회 결과입니다.
type SurvivalKit struct {
	Age        int
	RegionName string
	Policies   []model.Policy
	UrgentJobs []filter.UrgentJob
	Courses    []model.TrainingCourse
	Programs   []model.EmploymentProgram
}

// BuildSurvivalKit 나이와 지역에 해당하는 정책/마감 임박 채용/훈련과정/프로그램을 모읍니다.
// 정책 조회가 주 조회이며, 정책 목록은 연령 필터를 거친 결과입니다.
func (s *Service) BuildSurvivalKit(ctx context.Context, age int, region string) (*SurvivalKit, error) {
	provinceCode := codes.RegionCode(region)

	kit := &SurvivalKit{
		Age:        age,
		RegionName: codes.RegionName(provinceCode),
		UrgentJobs: []filter.UrgentJob{},
		Courses:    []model.TrainingCourse{},
		Programs:   []model.EmploymentProgram{},
	}

	err := s.gather(ctx, []task{
		{name: "청년정책", primary: true, run: func(ctx context.Context) error {
			result, err := s.policies.Search(ctx, policy.SearchParams{
				ZipCode:  codes.ZipFromRegion(provinceCode),
				PageSize: widePageSize,
			})
			if err != nil {
				return err
			}
			kit.Policies = filter.ByAge(result.Policies, age)
			return nil
		}},
		{name: "마감 임박 채용정보", run: func(ctx context.Context) error {
			jobs, err := s.work24.SearchJobs(ctx, work24.JobSearchParams{
				Region:  codes.ZipFromRegion(provinceCode),
				Display: widePageSize,
			})
			if err != nil {
				return err
			}
			kit.UrgentJobs = filter.UrgentJobs(jobs, defaultUrgentWindowDays)
			return nil
		}},
		{name: "훈련과정", run: func(ctx context.Context) error {
			courses, err := s.work24.SearchTrainingCourses(ctx, work24.TrainingSearchParams{Region: provinceCode})
			if err != nil {
				return err
			}
			kit.Courses = courses
			return nil
		}},
		{name: "취업역량 강화 프로그램", run: func(ctx context.Context) error {
			programs, err := s.work24.SearchEmploymentPrograms(ctx, work24.EmpPgmSearchParams{Region: codes.ZipFromRegion(provinceCode)})
			if err != nil {
				return err
			}
			kit.Programs = programs
			return nil
		}},
	})
	if err != nil {
		return nil, err
	}

	return kit, nil
}

// ZeroCostPlan 무료/정부지원 항목만 모은 결과입니다.
type ZeroCostPlan struct {
	RegionName   string
	FreePolicies []model.Policy
	Centers      []model.Center
	Courses      []model.TrainingCourse
}

// BuildZeroCostPlan 지원 내용에 무료/정부지원 키워드가 포함된 정책과
// 국민내일배움카드 훈련과정(전 과정 정부지원)을 모읍니다.
// age가 0보다 크면 무료 정책 목록에 연령 필터를 추가로 적용합니다.
func (s *Service) BuildZeroCostPlan(ctx context.Context, region string, age int) (*ZeroCostPlan, error) {
	provinceCode := codes.RegionCode(region)

	plan := &ZeroCostPlan{
		RegionName: codes.RegionName(provinceCode),
		Centers:    []model.Center{},
		Courses:    []model.TrainingCourse{},
	}

	err := s.gather(ctx, []task{
		{name: "청년정책", primary: true, run: func(ctx context.Context) error {
			result, err := s.policies.Search(ctx, policy.SearchParams{
				ZipCode:  codes.ZipFromRegion(provinceCode),
				PageSize: widePageSize,
			})
			if err != nil {
				return err
			}
			policies := filter.FreeSupport(result.Policies)
			if age > 0 {
				policies = filter.ByAge(policies, age)
			}
			plan.FreePolicies = policies
			return nil
		}},
		{name: "청년센터", run: func(ctx context.Context) error {
			result, err := s.centers.Search(ctx, center.SearchParams{ProvinceCode: provinceCode})
			if err != nil {
				return err
			}
			plan.Centers = result.Centers
			return nil
		}},
		{name: "훈련과정", run: func(ctx context.Context) error {
			courses, err := s.work24.SearchTrainingCourses(ctx, work24.TrainingSearchParams{Region: provinceCode})
			if err != nil {
				return err
			}
			plan.Courses = courses
			return nil
		}},
	})
	if err != nil {
		return nil, err
	}

	return plan, nil
}

// RecommendPolicies 나이/지역/분야 조건에 맞는 정책을 조회합니다.
// 업스트림은 연령 조건 검색을 지원하지 않으므로 넉넉히 조회한 뒤 연령 필터를 적용합니다.
func (s *Service) RecommendPolicies(ctx context.Context, age int, region, category string) ([]model.Policy, error) {
	params := policy.SearchParams{
		Category: category,
		PageSize: widePageSize,
	}
	if region != "" {
		params.ZipCode = codes.ZipFromRegion(codes.RegionCode(region))
	}

	result, err := s.policies.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	return filter.ByAge(result.Policies, age), nil
}

// UrgentJobs 마감일이 withinDays일 이내인 채용정보를 남은 일수 오름차순으로 조회합니다.
// withinDays가 0 이하이면 기본값 7일을 적용합니다.
func (s *Service) UrgentJobs(ctx context.Context, region string, withinDays int) ([]filter.UrgentJob, error) {
	if withinDays <= 0 {
		withinDays = defaultUrgentWindowDays
	}

	params := work24.JobSearchParams{Display: widePageSize * 2}
	if region != "" {
		params.Region = codes.ZipFromRegion(codes.RegionCode(region))
	}

	jobs, err := s.work24.SearchJobs(ctx, params)
	if err != nil {
		return nil, err
	}

	return filter.UrgentJobs(jobs, withinDays), nil
}

// CategoryCount 정책 분야별 정책 수입니다.
type CategoryCount struct {
	Category string
	Count    int
}

// PolicyStats 지역의 정책 분야별 정책 수를 병렬로 집계하여 많은 순으로 반환합니다.
// 일부 분야의 조회 실패는 해당 분야를 0건으로 집계하지만,
// 모든 분야의 조회가 실패하면 0건 통계와 구분하기 위해 전체 집계가 실패합니다.
func (s *Service) PolicyStats(ctx context.Context, region string) ([]CategoryCount, error) {
	zipCode := ""
	if region != "" {
		zipCode = codes.ZipFromRegion(codes.RegionCode(region))
	}

	counts := make([]CategoryCount, len(codes.Categories))
	errs := make([]error, len(codes.Categories))
	tasks := make([]task, 0, len(codes.Categories))
	for i, category := range codes.Categories {
		i, category := i, category
		counts[i] = CategoryCount{Category: category}

		tasks = append(tasks, task{name: category + " 분야 정책 수", run: func(ctx context.Context) error {
			result, err := s.policies.Search(ctx, policy.SearchParams{
				Category: category,
				ZipCode:  zipCode,
				PageSize: 1, // 건수만 필요
			})
			if err != nil {
				errs[i] = err
				return err
			}
			counts[i].Count = result.Paging.TotalCount
			return nil
		}})
	}

	if err := s.gather(ctx, tasks); err != nil {
		return nil, err
	}

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	if failed == len(errs) {
		return nil, apperrors.Wrap(errs[0], apperrors.ExecutionFailed, "정책 분야별 통계 집계가 실패하였습니다")
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	return counts, nil
}

// SearchCenters 지역명 또는 코드와 키워드로 청년센터를 검색합니다.
func (s *Service) SearchCenters(ctx context.Context, region, keyword string) ([]model.Center, error) {
	params := center.SearchParams{Keyword: strings.TrimSpace(keyword)}
	if region != "" {
		params.ProvinceCode = codes.RegionCode(region)
	}

	result, err := s.centers.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	return result.Centers, nil
}
