package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
)

// validate 패키지 전역 Validator 인스턴스입니다.
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러가 났을 때, 에러 메시지에 Go 구조체 필드명(예: ListenPort) 대신 JSON 이름(예: listen_port)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// checkStruct 구조체 인스턴스의 유효성을 태그 규칙에 따라 검증하고, 발생한 오류를 사용자 친화적인 도메인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s interface{}, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		// 첫 번째 에러만 상세히 보고
		firstErr := validationErrors[0]

		switch firstErr.StructField() {
		case "Mode":
			return apperrors.New(apperrors.InvalidInput,
				fmt.Sprintf("MCP 서버 구동 모드(mode)는 stdio, sse, streamable-http 중 하나여야 합니다: '%v'", firstErr.Value()))
		case "ListenPort":
			return apperrors.New(apperrors.InvalidInput,
				fmt.Sprintf("%s 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다", contextName))
		}

		return apperrors.New(apperrors.InvalidInput,
			fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
	}
	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
}
