// Package model 업스트림 API 응답을 정규화한 불변 값 레코드를 정의합니다.
//
// 모든 레코드는 요청 단위로 생성되어 응답 디코딩 시점에 채워지고,
// 필터링/병합을 거쳐 프레젠테이션 계층에서 한 번 소비된 후 폐기됩니다.
// XML 출처 필드는 값이 없을 때 항상 빈 문자열이며, nil이 되는 경우는 없습니다.
package model

// Paging JSON 계열 API 응답에 포함되는 페이지네이션 메타데이터입니다.
type Paging struct {
	TotalCount int `json:"totCount"`
	PageNum    int `json:"pageNum"`
	PageSize   int `json:"pageSize"`
}

// Policy 청년 정책 레코드입니다.
type Policy struct {
	PolicyNo       string `json:"plcyNo"`           // 정책 번호
	Name           string `json:"plcyNm"`           // 정책명
	Description    string `json:"plcyExplnCn"`      // 정책 설명
	SupportContent string `json:"plcySprtCn"`       // 지원 내용 (자유 텍스트)
	CategoryMajor  string `json:"lclsfNm"`          // 정책 대분류
	CategoryMinor  string `json:"mclsfNm"`          // 정책 중분류
	MinAge         string `json:"sprtTrgtMinAge"`   // 지원 대상 최소 연령 (빈 값 가능)
	MaxAge         string `json:"sprtTrgtMaxAge"`   // 지원 대상 최대 연령 (빈 값 가능)
	AgeUnlimited   string `json:"sprtTrgtAgeLmtYn"` // 연령 제한 없음 여부 (Y/N)
	ApplyPeriod    string `json:"aplyYmd"`          // 신청 기간 (자유 텍스트 또는 시작~종료일)
	OrganName      string `json:"sprvsnInstCdNm"`   // 주관 기관명
	OperOrganName  string `json:"operInstCdNm"`     // 운영 기관명
	ApplyMethod    string `json:"plcyAplyMthdCn"`   // 신청 방법
	Documents      string `json:"sbmsnDcmntCn"`     // 제출 서류
	Screening      string `json:"srngMthdCn"`       // 심사 방법
	ApplyURL       string `json:"aplyUrlAddr"`      // 신청 URL
	ReferenceURL   string `json:"refUrlAddr1"`      // 참고 URL
	ViewCount      int    `json:"inqCnt"`           // 조회수
}

// Center 청년센터 레코드입니다.
type Center struct {
	ID            string `json:"cntrSn"`   // 센터 일련번호
	Name          string `json:"cntrNm"`   // 센터명
	Phone         string `json:"telno"`    // 전화번호
	Address       string `json:"addr"`     // 주소
	AddressDetail string `json:"daddr"`    // 상세 주소
	URL           string `json:"hmpgAddr"` // 홈페이지 URL
	ProvinceCode  string `json:"ctpvCd"`   // 시도 코드
	ProvinceName  string `json:"ctpvNm"`   // 시도명
	DistrictName  string `json:"sggNm"`    // 시군구명
}

// JobPosting 채용 정보 레코드입니다.
type JobPosting struct {
	AuthNo       string // 구인 인증 번호 (wantedAuthNo)
	Company      string // 회사명
	Title        string // 채용 제목
	SalaryType   string // 임금 형태 (연봉/월급 등)
	Salary       string // 임금액
	Region       string // 근무 지역
	HolidayType  string // 휴일 형태
	MinEducation string // 최소 학력
	Career       string // 경력 요건
	CloseDate    string // 마감일 (YYYYMMDD 8자리 문자열)
	DetailURL    string // 상세 페이지 URL
	JobCode      string // 직종 코드
	EmployType   string // 고용 형태
}

// SmallGiantCompany 강소기업 레코드입니다.
type SmallGiantCompany struct {
	BusinessNo  string // 사업자등록번호
	Name        string // 회사명
	Brand       string // 브랜드명
	CEO         string // 대표자명
	Industry    string // 업종
	Address     string // 소재지
	Phone       string // 전화번호
	Homepage    string // 홈페이지
	MainProduct string // 주요 생산품
	Workers     string // 근로자 수
	SelectYear  string // 강소기업 선정 연도
}

// TrainingCourse 국민내일배움카드 훈련 과정 레코드입니다.
type TrainingCourse struct {
	ID             string // 훈련 과정 ID (trprId)
	Name           string // 과정명
	Institution    string // 훈련 기관명
	Degree         string // 회차 (trprDegr)
	StartDate      string // 훈련 시작일
	EndDate        string // 훈련 종료일
	Target         string // 훈련 대상 설명
	TargetCode     string // 훈련 대상 코드
	Address        string // 훈련 기관 주소
	Phone          string // 전화번호
	PlannedCount   string // 정원
	ActualCount    string // 수강 신청 인원
	AvailableCount string // 잔여 수강 가능 인원
	EmployRate3M   string // 3개월 취업률
	Satisfaction   string // 만족도 등급
	NCSApplied     string // NCS 적용 여부 (Y/N)
	NCSCode        string // NCS 코드
	NCSName        string // NCS 분류명
}

// EmploymentProgram 취업역량 강화 프로그램 레코드입니다.
type EmploymentProgram struct {
	OrgName    string // 운영 기관명
	Name       string // 프로그램명
	CourseName string // 세부 과정명
	Target     string // 참여 대상
	StartDate  string // 시작일
	EndDate    string // 종료일
	TimeRange  string // 운영 시간대
	Hours      string // 총 교육 시간
	Venue      string // 장소
}

// JobInfo 직업 정보 레코드입니다.
type JobInfo struct {
	Code     string // 직업 코드
	Name     string // 직업명
	Summary  string // 직업 개요
	Wage     string // 평균 임금
	Prospect string // 직업 전망
	Related  string // 관련 직업
}
