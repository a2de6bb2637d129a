package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(NotFound, "정책을 찾을 수 없습니다")
	require.Error(t, err)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, NotFound, appErr.Type())
	assert.Equal(t, "정책을 찾을 수 없습니다", appErr.Message())
	assert.Equal(t, "[NotFound] 정책을 찾을 수 없습니다", err.Error())
	assert.NotEmpty(t, appErr.Stack())
}

func TestWrap(t *testing.T) {
	t.Run("nil 에러 래핑 시 nil 반환", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, Internal, "무시됨"))
	})

	t.Run("에러 체인 구성", func(t *testing.T) {
		rootErr := errors.New("connection refused")
		wrapped := Wrap(rootErr, System, "업스트림 호출 실패")

		assert.Contains(t, wrapped.Error(), "connection refused")
		assert.Contains(t, wrapped.Error(), "업스트림 호출 실패")
		assert.Equal(t, rootErr, RootCause(wrapped))
	})
}

func TestIs(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"단일 에러의 타입 일치", New(InvalidInput, "age"), InvalidInput, true},
		{"단일 에러의 타입 불일치", New(InvalidInput, "age"), NotFound, false},
		{"체인 내부 타입 탐지", Wrap(New(NotFound, "inner"), ExecutionFailed, "outer"), NotFound, true},
		{"외부 에러 래핑", Wrap(errors.New("raw"), System, "wrap"), System, true},
		{"nil 에러", nil, System, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Is(tt.err, tt.errType))
		})
	}
}

func TestFormat(t *testing.T) {
	err := Wrap(New(ParsingFailed, "closeDt 파싱 실패"), ExecutionFailed, "채용정보 처리 실패")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[ExecutionFailed] 채용정보 처리 실패")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[ParsingFailed] closeDt 파싱 실패")
	assert.Contains(t, detailed, "Stack trace:")

	quoted := fmt.Sprintf("%q", New(NotFound, "없음"))
	assert.Equal(t, `"[NotFound] 없음"`, quoted)
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "ExecutionFailed", ExecutionFailed.String())
	assert.Equal(t, "Unknown", ErrorType(999).String())
}
