// Package codes 업스트림 API 호출에 사용되는 정적 코드 테이블을 제공합니다.
//
// 지역명 ↔ 법정동 시도 코드, 정책 분야 목록, NCS(국가직무능력표준) 대분류 코드 테이블을
// 포함하며, 모든 조회 함수는 부작용 없는 순수 함수입니다.
// 테이블은 프로세스 시작 시점에 고정되며 이후 변경되지 않습니다.
package codes

import "strings"

// regionCodeByName 17개 시도의 한글 지역명 → 2자리 법정동 시도 코드 매핑입니다.
// 축약형("서울")과 공식 명칭("서울특별시")을 모두 수용합니다.
var regionCodeByName = map[string]string{
	"서울": "11", "서울특별시": "11",
	"부산": "26", "부산광역시": "26",
	"대구": "27", "대구광역시": "27",
	"인천": "28", "인천광역시": "28",
	"광주": "29", "광주광역시": "29",
	"대전": "30", "대전광역시": "30",
	"울산": "31", "울산광역시": "31",
	"세종": "36", "세종특별자치시": "36",
	"경기": "41", "경기도": "41",
	"충북": "43", "충청북도": "43",
	"충남": "44", "충청남도": "44",
	"전남": "46", "전라남도": "46",
	"경북": "47", "경상북도": "47",
	"경남": "48", "경상남도": "48",
	"제주": "50", "제주특별자치도": "50",
	"강원": "51", "강원특별자치도": "51",
	"전북": "52", "전북특별자치도": "52",
}

// regionNameByCode 2자리 시도 코드 → 대표 지역명 매핑입니다.
var regionNameByCode = map[string]string{
	"11": "서울",
	"26": "부산",
	"27": "대구",
	"28": "인천",
	"29": "광주",
	"30": "대전",
	"31": "울산",
	"36": "세종",
	"41": "경기",
	"43": "충북",
	"44": "충남",
	"46": "전남",
	"47": "경북",
	"48": "경남",
	"50": "제주",
	"51": "강원",
	"52": "전북",
}

// RegionCode 지역명 또는 지역 코드를 시도 코드로 변환합니다.
//
// 입력이 알려진 한글 지역명이면 해당 2자리 코드를 반환하고,
// 그 외의 입력은 이미 코드로 간주하여 그대로 반환합니다. 실패하지 않습니다.
func RegionCode(nameOrCode string) string {
	trimmed := strings.TrimSpace(nameOrCode)
	if code, ok := regionCodeByName[trimmed]; ok {
		return code
	}
	return trimmed
}

// RegionName 지역 코드의 앞 2자리(시도 코드)에 해당하는 대표 지역명을 반환합니다.
// 인식할 수 없는 코드는 입력을 그대로 반환합니다.
func RegionName(code string) string {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) >= 2 {
		if name, ok := regionNameByCode[trimmed[:2]]; ok {
			return name
		}
	}
	return trimmed
}

// ZipFromRegion 시도 단위 코드를 정책/채용정보 API가 요구하는 5자리 형태로 변환합니다.
//
// 코드 길이가 정확히 2이면 "000"을 덧붙여 시도 전체를 의미하는 값을 만들고,
// 그 외의 길이는 이미 완전한 코드로 간주하여 그대로 반환합니다.
func ZipFromRegion(code string) string {
	if len(code) == 2 {
		return code + "000"
	}
	return code
}

// RegionNames 지원하는 17개 시도의 대표 지역명 목록을 반환합니다.
func RegionNames() []string {
	names := make([]string, 0, len(regionNameByCode))
	for _, name := range regionNameByCode {
		names = append(names, name)
	}
	return names
}

// Categories 정책 API가 수용하는 5개 정책 분야 목록입니다.
var Categories = []string{"일자리", "주거", "교육", "복지문화", "참여권리"}

// IsCategory 주어진 라벨이 유효한 정책 분야인지 확인합니다.
func IsCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// ncsNameByCode NCS 대분류 코드(2자리) → 분류명 매핑입니다.
var ncsNameByCode = map[string]string{
	"01": "사업관리",
	"02": "경영·회계·사무",
	"03": "금융·보험",
	"04": "교육·자연·사회과학",
	"05": "법률·경찰·소방·교도·국방",
	"06": "보건·의료",
	"07": "사회복지·종교",
	"08": "문화·예술·디자인·방송",
	"09": "운전·운송",
	"10": "영업판매",
	"11": "경비·청소",
	"12": "이용·숙박·여행·오락·스포츠",
	"13": "음식서비스",
	"14": "건설",
	"15": "기계",
	"16": "재료",
	"17": "화학·바이오",
	"18": "섬유·의복",
	"19": "전기·전자",
	"20": "정보통신",
	"21": "식품가공",
	"22": "인쇄·목재·가구·공예",
	"23": "환경·에너지·안전",
	"24": "농림어업",
}

// NCSName NCS 코드의 앞 2자리(대분류)에 해당하는 분류명을 반환합니다.
// 인식할 수 없는 코드는 빈 문자열을 반환합니다.
func NCSName(code string) string {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) >= 2 {
		if name, ok := ncsNameByCode[trimmed[:2]]; ok {
			return name
		}
	}
	return ""
}

// NCSCategoryPrefix NCS 코드에서 2자리 대분류 코드를 추출합니다.
// 코드가 2자리 미만이면 빈 문자열을 반환합니다.
func NCSCategoryPrefix(code string) string {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) < 2 {
		return ""
	}
	return trimmed[:2]
}
