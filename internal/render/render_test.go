package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkkaiser/youth-gateway/internal/openapi/aggregate"
	"github.com/darkkaiser/youth-gateway/internal/openapi/filter"
	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
)

func TestPolicies(t *testing.T) {
	t.Run("목록과 건수가 렌더링된다", func(t *testing.T) {
		got := Policies([]model.Policy{
			{PolicyNo: "P1", Name: "청년 월세 지원", CategoryMajor: "주거", Description: "<p>월세를 지원합니다.</p>"},
		})

		assert.Contains(t, got, "청년정책 검색 결과 (1건)")
		assert.Contains(t, got, "### 1. 청년 월세 지원")
		assert.Contains(t, got, "월세를 지원합니다.")
		assert.NotContains(t, got, "<p>", "HTML 태그는 제거되어야 합니다")
	})

	t.Run("빈 목록", func(t *testing.T) {
		got := Policies(nil)
		assert.Contains(t, got, "(0건)")
		assert.Contains(t, got, "검색 결과가 없습니다.")
	})
}

func TestPolicyDetail(t *testing.T) {
	t.Run("모든 주요 필드가 포함된다", func(t *testing.T) {
		got := PolicyDetail(&model.Policy{
			Name:          "청년도약계좌",
			PolicyNo:      "P1",
			CategoryMajor: "일자리",
			CategoryMinor: "재직자",
			MinAge:        "19",
			MaxAge:        "34",
			ApplyURL:      "https://example.go.kr/apply",
			ViewCount:     12345,
		})

		assert.Contains(t, got, "## 청년도약계좌")
		assert.Contains(t, got, "일자리 / 재직자")
		assert.Contains(t, got, "19세 ~ 34세")
		assert.Contains(t, got, "12,345")
	})

	t.Run("연령 제한 없음", func(t *testing.T) {
		got := PolicyDetail(&model.Policy{Name: "정책", AgeUnlimited: "Y"})
		assert.Contains(t, got, "제한 없음")
	})

	t.Run("빈 필드는 줄이 생략된다", func(t *testing.T) {
		got := PolicyDetail(&model.Policy{Name: "정책"})
		assert.NotContains(t, got, "신청 URL")
		assert.NotContains(t, got, "조회수")
	})
}

func TestUrgentJobs(t *testing.T) {
	got := UrgentJobs([]filter.UrgentJob{
		{Posting: model.JobPosting{Title: "오늘 마감 공고", Company: "가나다"}, DaysLeft: 0},
		{Posting: model.JobPosting{Title: "사흘 뒤 마감"}, DaysLeft: 3},
	})

	assert.Contains(t, got, "[오늘 마감] 오늘 마감 공고")
	assert.Contains(t, got, "[D-3] 사흘 뒤 마감")
}

func TestTrainingCourses(t *testing.T) {
	got := TrainingCourses([]model.TrainingCourse{
		{Name: "클라우드 과정", Institution: "한국직업전문학교", StartDate: "2026-09-15", EndDate: "2026-12-15",
			NCSApplied: "Y", NCSCode: "20010102", NCSName: "정보기술개발"},
		{Name: "일반 과정"},
	})

	assert.Contains(t, got, "(2건)")
	assert.Contains(t, got, "2026-09-15 ~ 2026-12-15")
	assert.Contains(t, got, "정보기술개발 (20010102)")
}

func TestRegionPackage(t *testing.T) {
	got := RegionPackage(&aggregate.RegionPackage{
		RegionName: "부산",
		Policies:   []model.Policy{{Name: "부산 청년 정책"}},
	})

	assert.Contains(t, got, "# 부산 지역 종합 정보")
	assert.Contains(t, got, "부산 청년 정책")
	assert.Contains(t, got, "청년센터 검색 결과 (0건)")
	assert.Contains(t, got, "강소기업 검색 결과 (0건)")
	assert.Contains(t, got, "검색 결과가 없습니다.", "비어있는 섹션에도 안내 문구가 있어야 합니다")
}

func TestBridge(t *testing.T) {
	got := Bridge([]aggregate.BridgeEntry{
		{
			Course:  model.TrainingCourse{Name: "정보보안 과정"},
			NCSName: "정보통신",
			Jobs:    []model.JobPosting{{Company: "가나다", Title: "보안 엔지니어", CloseDate: "20261001"}},
		},
		{Course: model.TrainingCourse{Name: "일반 과정"}},
	})

	assert.Contains(t, got, "관련 직무 분야(정보통신) 채용정보 (1건)")
	assert.Contains(t, got, "가나다 | 보안 엔지니어 | 마감: 20261001")
	assert.Contains(t, got, "NCS 분류 정보가 없어 채용정보를 연계하지 않았습니다.")
}

func TestPolicyStats(t *testing.T) {
	got := PolicyStats([]aggregate.CategoryCount{
		{Category: "일자리", Count: 1200},
		{Category: "주거", Count: 45},
	})

	assert.Contains(t, got, "| 일자리 | 1,200 |")
	assert.Contains(t, got, "| 주거 | 45 |")
	assert.Contains(t, got, "| **합계** | **1,245** |")
}
