// Package render 정규화된 레코드와 집계 결과를 Markdown 텍스트로 변환합니다.
//
// 모든 렌더러는 빈 입력에 대해 "검색 결과가 없습니다." 문구를 포함한 텍스트를
// 반환하며, 에러를 발생시키지 않습니다.
package render

import (
	"fmt"
	"strings"

	"github.com/darkkaiser/youth-gateway/internal/openapi/aggregate"
	"github.com/darkkaiser/youth-gateway/internal/openapi/filter"
	"github.com/darkkaiser/youth-gateway/internal/openapi/model"
	"github.com/darkkaiser/youth-gateway/pkg/strutil"
)

// noResults 결과가 비어있는 섹션에 표시되는 문구입니다.
const noResults = "검색 결과가 없습니다."

// descriptionLimit 목록 뷰에서 설명 필드를 자르는 길이입니다.
const descriptionLimit = 100

func writeField(b *strings.Builder, label, value string) {
	if value = strutil.CleanString(value); value != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, value)
	}
}

// joinNonEmpty 비어있지 않은 항목들만 구분자로 연결합니다.
func joinNonEmpty(sep string, parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, sep)
}

// Policies 정책 목록을 Markdown으로 렌더링합니다.
func Policies(policies []model.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 청년정책 검색 결과 (%d건)\n\n", len(policies))

	if len(policies) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, p := range policies {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(p.Name))
		writeField(&b, "정책번호", p.PolicyNo)
		writeField(&b, "분야", p.CategoryMajor)
		writeField(&b, "설명", strutil.Ellipsis(strutil.StripHTMLTags(p.Description), descriptionLimit))
		writeField(&b, "신청기간", p.ApplyPeriod)
		writeField(&b, "주관기관", p.OrganName)
		b.WriteString("\n")
	}
	return b.String()
}

// PolicyDetail 단일 정책의 상세 정보를 Markdown으로 렌더링합니다.
func PolicyDetail(p *model.Policy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", strutil.CleanString(p.Name))
	writeField(&b, "정책번호", p.PolicyNo)
	writeField(&b, "분야", joinNonEmpty(" / ", p.CategoryMajor, p.CategoryMinor))
	writeField(&b, "설명", strutil.StripHTMLTags(p.Description))
	writeField(&b, "지원내용", strutil.StripHTMLTags(p.SupportContent))
	writeField(&b, "지원연령", ageRange(p))
	writeField(&b, "신청기간", p.ApplyPeriod)
	writeField(&b, "신청방법", p.ApplyMethod)
	writeField(&b, "제출서류", p.Documents)
	writeField(&b, "심사방법", p.Screening)
	writeField(&b, "주관기관", p.OrganName)
	writeField(&b, "운영기관", p.OperOrganName)
	writeField(&b, "신청 URL", p.ApplyURL)
	writeField(&b, "참고 URL", p.ReferenceURL)
	if p.ViewCount > 0 {
		fmt.Fprintf(&b, "- 조회수: %s\n", strutil.FormatCommas(p.ViewCount))
	}
	return b.String()
}

func ageRange(p *model.Policy) string {
	if p.AgeUnlimited == "Y" {
		return "제한 없음"
	}
	switch {
	case p.MinAge != "" && p.MaxAge != "":
		return fmt.Sprintf("%s세 ~ %s세", p.MinAge, p.MaxAge)
	case p.MinAge != "":
		return p.MinAge + "세 이상"
	case p.MaxAge != "":
		return p.MaxAge + "세 이하"
	}
	return ""
}

// Centers 청년센터 목록을 Markdown으로 렌더링합니다.
func Centers(centers []model.Center) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 청년센터 검색 결과 (%d건)\n\n", len(centers))

	if len(centers) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, c := range centers {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(c.Name))
		writeField(&b, "주소", joinNonEmpty(" ", c.Address, c.AddressDetail))
		writeField(&b, "전화번호", c.Phone)
		writeField(&b, "홈페이지", c.URL)
		writeField(&b, "지역", joinNonEmpty(" ", c.ProvinceName, c.DistrictName))
		b.WriteString("\n")
	}
	return b.String()
}

// Jobs 채용정보 목록을 Markdown으로 렌더링합니다.
func Jobs(jobs []model.JobPosting) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 채용정보 검색 결과 (%d건)\n\n", len(jobs))

	if len(jobs) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, j := range jobs {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(j.Title))
		writeJobFields(&b, j)
		b.WriteString("\n")
	}
	return b.String()
}

func writeJobFields(b *strings.Builder, j model.JobPosting) {
	writeField(b, "회사명", j.Company)
	writeField(b, "임금", joinNonEmpty(" ", j.SalaryType, j.Salary))
	writeField(b, "근무지역", j.Region)
	writeField(b, "고용형태", j.EmployType)
	writeField(b, "경력", j.Career)
	writeField(b, "학력", j.MinEducation)
	writeField(b, "마감일", j.CloseDate)
	writeField(b, "상세보기", j.DetailURL)
}

// UrgentJobs 마감 임박 채용정보 목록을 Markdown으로 렌더링합니다.
func UrgentJobs(urgent []filter.UrgentJob) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 마감 임박 채용정보 (%d건)\n\n", len(urgent))

	if len(urgent) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, u := range urgent {
		deadline := fmt.Sprintf("D-%d", u.DaysLeft)
		if u.DaysLeft == 0 {
			deadline = "오늘 마감"
		}
		fmt.Fprintf(&b, "### %d. [%s] %s\n", i+1, deadline, strutil.CleanString(u.Posting.Title))
		writeJobFields(&b, u.Posting)
		b.WriteString("\n")
	}
	return b.String()
}

// SmallGiants 강소기업 목록을 Markdown으로 렌더링합니다.
func SmallGiants(companies []model.SmallGiantCompany) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 강소기업 검색 결과 (%d건)\n\n", len(companies))

	if len(companies) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, c := range companies {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(c.Name))
		writeField(&b, "업종", c.Industry)
		writeField(&b, "소재지", c.Address)
		writeField(&b, "주요 생산품", c.MainProduct)
		writeField(&b, "근로자 수", c.Workers)
		writeField(&b, "선정연도", c.SelectYear)
		writeField(&b, "홈페이지", c.Homepage)
		b.WriteString("\n")
	}
	return b.String()
}

// TrainingCourses 훈련과정 목록을 Markdown으로 렌더링합니다.
func TrainingCourses(courses []model.TrainingCourse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 훈련과정 검색 결과 (%d건)\n\n", len(courses))

	if len(courses) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, c := range courses {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(c.Name))
		writeField(&b, "훈련기관", c.Institution)
		writeField(&b, "훈련기간", joinNonEmpty(" ~ ", c.StartDate, c.EndDate))
		writeField(&b, "훈련대상", c.Target)
		writeField(&b, "3개월 취업률", c.EmployRate3M)
		writeField(&b, "만족도", c.Satisfaction)
		if c.NCSApplied == "Y" {
			writeField(&b, "NCS 분류", joinNonEmpty(" ", c.NCSName, "("+c.NCSCode+")"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Programs 취업역량 강화 프로그램 목록을 Markdown으로 렌더링합니다.
func Programs(programs []model.EmploymentProgram) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 취업역량 강화 프로그램 (%d건)\n\n", len(programs))

	if len(programs) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, p := range programs {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(p.Name))
		writeField(&b, "운영기관", p.OrgName)
		writeField(&b, "세부과정", p.CourseName)
		writeField(&b, "참여대상", p.Target)
		writeField(&b, "일정", joinNonEmpty(" ~ ", p.StartDate, p.EndDate))
		writeField(&b, "시간", p.TimeRange)
		writeField(&b, "장소", p.Venue)
		b.WriteString("\n")
	}
	return b.String()
}

// JobInfos 직업정보 목록을 Markdown으로 렌더링합니다.
func JobInfos(infos []model.JobInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## 직업정보 검색 결과 (%d건)\n\n", len(infos))

	if len(infos) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, info := range infos {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, strutil.CleanString(info.Name))
		writeField(&b, "직업코드", info.Code)
		writeField(&b, "개요", strutil.Ellipsis(info.Summary, descriptionLimit))
		writeField(&b, "평균임금", info.Wage)
		writeField(&b, "전망", info.Prospect)
		writeField(&b, "관련직업", info.Related)
		b.WriteString("\n")
	}
	return b.String()
}

// RegionPackage 지역 종합 정보 꾸러미를 섹션별 Markdown으로 렌더링합니다.
func RegionPackage(pkg *aggregate.RegionPackage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s 지역 종합 정보\n\n", pkg.RegionName)
	b.WriteString(Policies(pkg.Policies))
	b.WriteString(Centers(pkg.Centers))
	b.WriteString(Jobs(pkg.Jobs))
	b.WriteString(SmallGiants(pkg.Companies))
	b.WriteString(TrainingCourses(pkg.Courses))
	return b.String()
}

// MegaSearch 통합 검색 결과를 섹션별 Markdown으로 렌더링합니다.
func MegaSearch(result *aggregate.MegaSearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# '%s' 통합 검색 결과\n\n", result.Keyword)
	b.WriteString(Policies(result.Policies))
	b.WriteString(Jobs(result.Jobs))
	b.WriteString(TrainingCourses(result.Courses))
	b.WriteString(Programs(result.Programs))
	b.WriteString(JobInfos(result.JobInfos))
	return b.String()
}

// Bridge 훈련과정과 NCS 연계 채용정보를 Markdown으로 렌더링합니다.
func Bridge(entries []aggregate.BridgeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# 훈련과정 → 채용정보 연계 결과 (%d건)\n\n", len(entries))

	if len(entries) == 0 {
		b.WriteString(noResults + "\n")
		return b.String()
	}

	for i, entry := range entries {
		fmt.Fprintf(&b, "## %d. %s\n", i+1, strutil.CleanString(entry.Course.Name))
		writeField(&b, "훈련기관", entry.Course.Institution)
		writeField(&b, "훈련기간", joinNonEmpty(" ~ ", entry.Course.StartDate, entry.Course.EndDate))

		if entry.NCSName == "" {
			b.WriteString("\nNCS 분류 정보가 없어 채용정보를 연계하지 않았습니다.\n\n")
			continue
		}

		fmt.Fprintf(&b, "\n### 관련 직무 분야(%s) 채용정보 (%d건)\n", entry.NCSName, len(entry.Jobs))
		if len(entry.Jobs) == 0 {
			b.WriteString(noResults + "\n\n")
			continue
		}
		for _, j := range entry.Jobs {
			fmt.Fprintf(&b, "- %s | %s | 마감: %s\n",
				strutil.CleanString(j.Company), strutil.CleanString(j.Title), j.CloseDate)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SurvivalKit 생존 꾸러미 결과를 섹션별 Markdown으로 렌더링합니다.
func SurvivalKit(kit *aggregate.SurvivalKit) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d세 %s 청년 생존 꾸러미\n\n", kit.Age, kit.RegionName)
	b.WriteString(Policies(kit.Policies))
	b.WriteString(UrgentJobs(kit.UrgentJobs))
	b.WriteString(TrainingCourses(kit.Courses))
	b.WriteString(Programs(kit.Programs))
	return b.String()
}

// ZeroCostPlan 무료/정부지원 플랜을 섹션별 Markdown으로 렌더링합니다.
func ZeroCostPlan(plan *aggregate.ZeroCostPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s 무료/정부지원 플랜\n\n", plan.RegionName)
	b.WriteString(Policies(plan.FreePolicies))
	b.WriteString(Centers(plan.Centers))
	b.WriteString(TrainingCourses(plan.Courses))
	return b.String()
}

// PolicyStats 정책 분야별 통계를 Markdown 표로 렌더링합니다.
func PolicyStats(counts []aggregate.CategoryCount) string {
	var b strings.Builder
	b.WriteString("## 정책 분야별 통계\n\n")
	b.WriteString("| 분야 | 정책 수 |\n|---|---|\n")

	total := 0
	for _, c := range counts {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Category, strutil.FormatCommas(c.Count))
		total += c.Count
	}
	fmt.Fprintf(&b, "| **합계** | **%s** |\n", strutil.FormatCommas(total))
	return b.String()
}
