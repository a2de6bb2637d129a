// Package xmlfield 업스트림 XML 응답에서 정규식 기반으로 필드 값을 추출합니다.
//
// 고용24 계열 API의 XML은 정식 파서를 적용하기 어려운 수준의 포맷 편차가 있으나,
// 동일한 이름의 태그가 중첩되지 않고 item 블록이 평면적인 레코드 구조라는 점은 일정하므로
// 좁은 계약의 정규식 스캐닝으로 충분합니다. 범용 XML 파서로 일반화하지 않습니다.
package xmlfield

import (
	"regexp"
	"strings"
	"sync"
)

var (
	regexCacheMu sync.RWMutex
	regexCache   = make(map[string]*regexp.Regexp)
)

// compile 태그별 정규식을 컴파일하고 캐싱합니다.
// 추출 대상 태그는 API별 고정 필드 목록이므로 캐시 크기는 자연히 제한됩니다.
func compile(pattern string) *regexp.Regexp {
	regexCacheMu.RLock()
	re, ok := regexCache[pattern]
	regexCacheMu.RUnlock()
	if ok {
		return re
	}

	re = regexp.MustCompile(pattern)

	regexCacheMu.Lock()
	regexCache[pattern] = re
	regexCacheMu.Unlock()

	return re
}

// Value XML 문자열에서 지정된 태그의 첫 번째 값을 추출합니다.
//
// CDATA 형식(<tag><![CDATA[...]]></tag>)과 일반 형식(<tag>...</tag>)을 모두 처리하며,
// 두 형식이 동시에 매칭될 수 있는 경우 CDATA 형식을 우선합니다.
// 태그 이름은 대소문자를 구분하지 않고, 태그가 없거나 비어있으면 빈 문자열을 반환합니다.
func Value(xml, tag string) string {
	quoted := regexp.QuoteMeta(tag)

	cdataRe := compile(`(?is)<` + quoted + `(?:\s[^>]*)?>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + quoted + `>`)
	if m := cdataRe.FindStringSubmatch(xml); m != nil {
		return strings.TrimSpace(m[1])
	}

	plainRe := compile(`(?is)<` + quoted + `(?:\s[^>]*)?>(.*?)</` + quoted + `>`)
	if m := plainRe.FindStringSubmatch(xml); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}

// Items XML 문자열에서 지정된 item 태그의 모든 블록(자신의 태그 포함)을 문서 순서대로 반환합니다.
//
// 블록 간에는 비탐욕적으로 매칭하여 서로 다른 item이 하나로 합쳐지지 않도록 합니다.
// item이 하나도 없으면 빈 슬라이스를 반환합니다.
func Items(xml, itemTag string) []string {
	quoted := regexp.QuoteMeta(itemTag)

	re := compile(`(?is)<` + quoted + `(?:\s[^>]*)?>.*?</` + quoted + `>`)
	matches := re.FindAllString(xml, -1)
	if matches == nil {
		return []string{}
	}

	return matches
}
