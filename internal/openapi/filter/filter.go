// Package filter 정규화된 레코드에 적용되는 도메인 필터를 제공합니다.
// 모든 필터는 입력을 변경하지 않는 순수 함수이며, 실패하지 않습니다.
package filter

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
)

const (
	// 연령 필드가 없거나 숫자가 아닌 정책에 적용되는 기본 연령 범위
	defaultMinAge = 0
	defaultMaxAge = 100
)

// ByAge 주어진 나이가 지원 대상 연령 범위에 포함되는 정책만 반환합니다.
//
// 최소/최대 연령 필드가 비어있거나 숫자가 아니면 각각 0과 100으로 간주하며,
// 연령 제한 없음(sprtTrgtAgeLmtYn=Y) 정책은 항상 포함됩니다.
func ByAge(policies []model.Policy, age int) []model.Policy {
	result := make([]model.Policy, 0, len(policies))
	for _, p := range policies {
		if p.AgeUnlimited == "Y" {
			result = append(result, p)
			continue
		}

		minAge := parseAgeOrDefault(p.MinAge, defaultMinAge)
		maxAge := parseAgeOrDefault(p.MaxAge, defaultMaxAge)
		if age >= minAge && age <= maxAge {
			result = append(result, p)
		}
	}
	return result
}

func parseAgeOrDefault(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// freeSupportMarkers 무료/정부지원 정책을 식별하는 데 사용하는 키워드 목록입니다.
//
// 업스트림이 지원 내용을 구조화된 필드로 제공하지 않으므로,
// 자유 텍스트 필드에 대한 최선 노력(best-effort) 휴리스틱입니다.
var freeSupportMarkers = []string{"무료", "정부지원", "정부 지원", "전액 지원", "바우처"}

// FreeSupport 지원 내용 또는 설명에 무료/정부지원 키워드가 포함된 정책만 반환합니다.
func FreeSupport(policies []model.Policy) []model.Policy {
	result := make([]model.Policy, 0, len(policies))
	for _, p := range policies {
		text := p.SupportContent + " " + p.Description
		for _, marker := range freeSupportMarkers {
			if strings.Contains(text, marker) {
				result = append(result, p)
				break
			}
		}
	}
	return result
}

// DateAfterDays 오늘로부터 daysFromNow일 뒤의 날짜를 YYYYMMDD 문자열로 반환합니다.
func DateAfterDays(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("20060102")
}

// UrgentJob 마감이 임박한 채용정보와 남은 일수를 함께 담는 뷰입니다.
type UrgentJob struct {
	Posting  model.JobPosting
	DaysLeft int
}

// UrgentJobs 마감일이 오늘부터 daysWithin일 이내인 채용정보를 남은 일수 오름차순으로 반환합니다.
//
// 마감일(closeDt)이 8자리 날짜로 파싱되지 않는 채용정보는 제외합니다.
// 이미 마감일이 지난 채용정보도 제외합니다.
func UrgentJobs(postings []model.JobPosting, daysWithin int) []UrgentJob {
	today := time.Now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	result := make([]UrgentJob, 0, len(postings))
	for _, posting := range postings {
		closeDate, err := time.ParseInLocation("20060102", strings.TrimSpace(posting.CloseDate), today.Location())
		if err != nil {
			continue
		}

		daysLeft := int(closeDate.Sub(todayStart).Hours() / 24)
		if daysLeft < 0 || daysLeft > daysWithin {
			continue
		}

		result = append(result, UrgentJob{Posting: posting, DaysLeft: daysLeft})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysLeft < result[j].DaysLeft
	})

	return result
}
