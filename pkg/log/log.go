// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// 애플리케이션 시작 시 Setup()을 한 번 호출하여 초기화하며,
// 이후에는 logrus의 전역 함수(log.Info, log.WithError 등)를 그대로 사용합니다.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// 생성되는 로그 파일의 기본 확장자
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100 // 로그 파일 하나당 최대 크기 (단위: MB)
	defaultMaxBackups = 20  // 로테이션 된 로그 파일의 최대 보관 개수
)

var (
	// Setup() 함수의 중복 호출을 방지하기 위한 동기화 객체
	setupOnce sync.Once

	// 전역 로깅 리소스의 해제 객체(Closer)를 보관합니다.
	globalCloser io.Closer

	// 로깅 시스템 초기화 단계에서 발생한 에러를 보관합니다.
	// 초기화에 실패한 경우 Setup() 재호출 시에도 최초의 에러를 그대로 반환합니다.
	globalSetupErr error
)

// nopCloser 파일 출력이 비활성화된 경우 반환되는 빈 Closer입니다.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup 전역 로깅 시스템을 초기화하고 설정된 옵션에 따라 출력을 구성합니다.
//
// 애플리케이션 시작 시점(main 함수 도입부)에 호출하며,
// 반환된 Closer는 반드시 defer를 통해 리소스가 해제되도록 보장해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})

	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			file = filepath.Base(frame.File)
			return
		},
	})

	var writers []io.Writer

	// MCP stdio 모드에서 표준 출력(프로토콜 채널)이 오염되지 않도록
	// 콘솔 로그는 항상 Stderr로 출력합니다.
	if opts.EnableConsoleLog {
		writers = append(writers, os.Stderr)
	}

	var closer io.Closer = nopCloser{}
	if opts.Dir != "" {
		maxSize := opts.MaxSizeMB
		if maxSize == 0 {
			maxSize = defaultMaxSizeMB
		}
		maxBackups := opts.MaxBackups
		if maxBackups == 0 {
			maxBackups = defaultMaxBackups
		}

		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, opts.Name+"."+fileExt),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
			Compress:   false,
		}
		writers = append(writers, rotator)
		closer = rotator
	}

	switch len(writers) {
	case 0:
		logrus.SetOutput(io.Discard)
	case 1:
		logrus.SetOutput(writers[0])
	default:
		logrus.SetOutput(io.MultiWriter(writers...))
	}

	return closer, nil
}

// SetDebugMode 디버그 모드 활성화 여부에 따라 로그 레벨을 조정합니다.
// 환경설정 로드가 완료된 이후 호출하여 로그 레벨을 최종 확정합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// StandardLogger 전역 logrus.Logger 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields 고정 필드가 바인딩된 로그 Entry를 생성합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithComponent 컴포넌트 식별자가 바인딩된 로그 Entry를 생성합니다.
// 서비스/클라이언트 단위 로깅에서 로그 출처를 일관되게 표시하기 위해 사용합니다.
func WithComponent(name string) *Entry {
	return logrus.WithField("component", name)
}
