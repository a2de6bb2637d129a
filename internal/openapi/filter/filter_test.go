package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByAge(t *testing.T) {
	policies := []model.Policy{
		{PolicyNo: "P1", MinAge: "18", MaxAge: "34"},
		{PolicyNo: "P2", MinAge: "35", MaxAge: "45"},
		{PolicyNo: "P3"}, // 연령 필드 없음 → 0~100
	}

	t.Run("25세는 P1과 P3에 해당", func(t *testing.T) {
		eligible := ByAge(policies, 25)
		require.Len(t, eligible, 2)
		assert.Equal(t, "P1", eligible[0].PolicyNo)
		assert.Equal(t, "P3", eligible[1].PolicyNo)
	})

	t.Run("40세는 P2와 P3에 해당", func(t *testing.T) {
		eligible := ByAge(policies, 40)
		require.Len(t, eligible, 2)
		assert.Equal(t, "P2", eligible[0].PolicyNo)
	})

	t.Run("연령 필드가 없는 정책은 0~100 전 범위에서 포함", func(t *testing.T) {
		unlimited := []model.Policy{{PolicyNo: "P"}}
		for _, age := range []int{0, 1, 50, 99, 100} {
			assert.Len(t, ByAge(unlimited, age), 1, "age=%d", age)
		}
	})

	t.Run("숫자가 아닌 연령 필드는 기본값으로 처리", func(t *testing.T) {
		odd := []model.Policy{{PolicyNo: "P", MinAge: "제한없음", MaxAge: "-"}}
		assert.Len(t, ByAge(odd, 70), 1)
	})

	t.Run("연령 제한 없음 플래그", func(t *testing.T) {
		flagged := []model.Policy{{PolicyNo: "P", MinAge: "18", MaxAge: "34", AgeUnlimited: "Y"}}
		assert.Len(t, ByAge(flagged, 80), 1)
	})

	t.Run("빈 입력", func(t *testing.T) {
		assert.Empty(t, ByAge(nil, 25))
	})
}

func TestFreeSupport(t *testing.T) {
	policies := []model.Policy{
		{PolicyNo: "P1", SupportContent: "전 과정 무료 교육 제공"},
		{PolicyNo: "P2", Description: "정부지원 청년 주거 프로그램"},
		{PolicyNo: "P3", SupportContent: "자부담 50%"},
	}

	filtered := FreeSupport(policies)
	require.Len(t, filtered, 2)
	assert.Equal(t, "P1", filtered[0].PolicyNo)
	assert.Equal(t, "P2", filtered[1].PolicyNo)
}

func TestDateAfterDays(t *testing.T) {
	assert.Equal(t, time.Now().Format("20060102"), DateAfterDays(0))
	assert.Equal(t, time.Now().AddDate(0, 0, 90).Format("20060102"), DateAfterDays(90))
	assert.Len(t, DateAfterDays(7), 8)
}

func TestUrgentJobs(t *testing.T) {
	closeDtAfter := func(days int) string {
		return time.Now().AddDate(0, 0, days).Format("20060102")
	}

	postings := []model.JobPosting{
		{AuthNo: "J30", CloseDate: closeDtAfter(30)},
		{AuthNo: "J3", CloseDate: closeDtAfter(3)},
		{AuthNo: "J0", CloseDate: closeDtAfter(0)},
		{AuthNo: "JPAST", CloseDate: closeDtAfter(-1)},
		{AuthNo: "JBAD", CloseDate: "상시채용"},
		{AuthNo: "JEMPTY"},
	}

	t.Run("7일 이내 마감만 남은 일수 오름차순으로 반환", func(t *testing.T) {
		urgent := UrgentJobs(postings, 7)
		require.Len(t, urgent, 2)
		assert.Equal(t, "J0", urgent[0].Posting.AuthNo)
		assert.Equal(t, 0, urgent[0].DaysLeft)
		assert.Equal(t, "J3", urgent[1].Posting.AuthNo)
		assert.Equal(t, 3, urgent[1].DaysLeft)
	})

	t.Run("30일 이내에는 J30 포함", func(t *testing.T) {
		urgent := UrgentJobs(postings, 30)
		require.Len(t, urgent, 3)
		assert.Equal(t, "J30", urgent[2].Posting.AuthNo)
	})

	t.Run("파싱 불가능한 마감일은 항상 제외", func(t *testing.T) {
		for _, u := range UrgentJobs(postings, 365) {
			assert.NotContains(t, []string{"JBAD", "JEMPTY"}, u.Posting.AuthNo,
				fmt.Sprintf("닫힌 날짜가 없는 공고(%s)가 포함되면 안 됩니다", u.Posting.AuthNo))
		}
	})
}
