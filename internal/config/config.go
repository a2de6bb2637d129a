// Package config 애플리케이션 설정의 로드와 검증을 담당합니다.
//
// 설정은 기본값 → JSON 설정 파일 → 환경 변수 순서로 로드되며, 뒤의 단계가 앞의 단계를 덮어씁니다.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	"github.com/darkkaiser/youth-gateway/pkg/strutil"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "youth-gateway"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	envPrefix = "YOUTH_"
)

// MCP 서버 구동 모드
const (
	ServerModeStdio          = "stdio"
	ServerModeSSE            = "sse"
	ServerModeStreamableHTTP = "streamable-http"
)

// 기본 설정값
const (
	DefaultServerMode    = ServerModeStdio
	DefaultListenPort    = 8281
	DefaultOpsListenPort = 8282
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug   bool          `json:"debug"`
	Server  ServerConfig  `json:"server"`
	Ops     OpsConfig     `json:"ops"`
	OpenAPI OpenAPIConfig `json:"open_api"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Server.validate(); err != nil {
		return err
	}
	return c.Ops.validate()
}

// VerifyRecommendations 서비스 운영을 위해 권장되는 설정 준수 여부를 진단합니다.
//
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: 비어있는 API 키)에
// 대한 경고 메시지를 반환합니다. API 키가 비어있는 업스트림은 구동은 가능하지만
// 해당 업스트림 호출 시점에 요청이 실패하게 됩니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	for _, missing := range c.OpenAPI.MissingKeys() {
		warnings = append(warnings, fmt.Sprintf("업스트림 API 키(%s)가 설정되지 않았습니다. 해당 업스트림을 사용하는 도구 호출은 실패하게 됩니다", missing))
	}

	if c.Server.Mode != ServerModeStdio && c.Server.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.Server.ListenPort))
	}

	return warnings
}

// ServerConfig MCP 서버의 구동 모드와 수신 포트를 정의하는 설정 구조체
type ServerConfig struct {
	Mode       string `json:"mode" validate:"oneof=stdio sse streamable-http"`
	ListenPort int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *ServerConfig) validate() error {
	if err := checkStruct(validate, c, "MCP 서버"); err != nil {
		return err
	}
	return nil
}

// OpsConfig 상태 확인용 운영 HTTP 서버 설정 구조체
type OpsConfig struct {
	Enabled      bool     `json:"enabled"`
	ListenPort   int      `json:"listen_port" validate:"min=1,max=65535"`
	AllowOrigins []string `json:"allow_origins"`
}

func (c *OpsConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	return checkStruct(validate, c, "운영 서버")
}

// normalizeOrigins 허용 오리진 목록의 각 항목을 쉼표 기준으로 분리하고 공백을 정리합니다.
// 환경 변수로는 목록을 쉼표로 구분된 하나의 문자열로 전달하게 되므로 여기서 펼칩니다.
func normalizeOrigins(origins []string) []string {
	var result []string
	for _, origin := range origins {
		result = append(result, strutil.SplitAndTrim(origin, ",")...)
	}
	return result
}

// OpenAPIConfig 업스트림 오픈API들의 인증 키를 정의하는 설정 구조체
//
// 각 키는 공공데이터포털/고용24/온통청년에서 개별 발급받으며, 비어있어도
// 구동은 가능하지만 해당 업스트림 호출은 실패합니다.
type OpenAPIConfig struct {
	YouthPolicyKey string `json:"youth_policy_key"` // 온통청년 청년정책
	YouthCenterKey string `json:"youth_center_key"` // 온통청년 청년센터
	WantedKey      string `json:"wanted_key"`       // 고용24 채용정보
	SmallGiantKey  string `json:"small_giant_key"`  // 고용24 강소기업
	JobInfoKey     string `json:"job_info_key"`     // 고용24 직업정보
	TrainingKey    string `json:"training_key"`     // HRD-Net 훈련과정
	EmpPgmKey      string `json:"emp_pgm_key"`      // 고용24 취업역량 강화 프로그램
}

// Work24Keys 고용24 계열 클라이언트가 사용하는 엔드포인트명 → API 키 매핑을 반환합니다.
func (c *OpenAPIConfig) Work24Keys() map[string]string {
	return map[string]string{
		"wanted":     c.WantedKey,
		"smallGiant": c.SmallGiantKey,
		"jobInfo":    c.JobInfoKey,
		"training":   c.TrainingKey,
		"empPgm":     c.EmpPgmKey,
	}
}

// MaskedKeys 로깅용으로 마스킹된 업스트림별 API 키 매핑을 반환합니다.
// 설정되지 않은 키는 빈 문자열로 유지되어 MissingKeys와 교차 확인할 수 있습니다.
func (c *OpenAPIConfig) MaskedKeys() map[string]string {
	return map[string]string{
		"youth_policy": strutil.MaskSensitiveData(c.YouthPolicyKey),
		"youth_center": strutil.MaskSensitiveData(c.YouthCenterKey),
		"wanted":       strutil.MaskSensitiveData(c.WantedKey),
		"small_giant":  strutil.MaskSensitiveData(c.SmallGiantKey),
		"job_info":     strutil.MaskSensitiveData(c.JobInfoKey),
		"training":     strutil.MaskSensitiveData(c.TrainingKey),
		"emp_pgm":      strutil.MaskSensitiveData(c.EmpPgmKey),
	}
}

// MissingKeys 설정되지 않은 API 키의 설정 항목명 목록을 반환합니다.
func (c *OpenAPIConfig) MissingKeys() []string {
	keys := []struct {
		name  string
		value string
	}{
		{"open_api.youth_policy_key", c.YouthPolicyKey},
		{"open_api.youth_center_key", c.YouthCenterKey},
		{"open_api.wanted_key", c.WantedKey},
		{"open_api.small_giant_key", c.SmallGiantKey},
		{"open_api.job_info_key", c.JobInfoKey},
		{"open_api.training_key", c.TrainingKey},
		{"open_api.emp_pgm_key", c.EmpPgmKey},
	}

	var missing []string
	for _, k := range keys {
		if strings.TrimSpace(k.value) == "" {
			missing = append(missing, k.name)
		}
	}
	return missing
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 설정 파일이 존재하지 않는 경우에는 에러가 아니며, 기본값과 환경 변수만으로
// 설정을 구성합니다. MCP 클라이언트가 환경 변수만으로 서버를 기동하는 배포
// 형태를 지원하기 위함입니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"server.mode":        DefaultServerMode,
		"server.listen_port": DefaultListenPort,
		"ops.listen_port":    DefaultOpsListenPort,
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if !os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: YOUTH_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: YOUTH_OPEN_API__YOUTH_POLICY_KEY -> open_api.youth_policy_key
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	appConfig.Ops.AllowOrigins = normalizeOrigins(appConfig.Ops.AllowOrigins)

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
