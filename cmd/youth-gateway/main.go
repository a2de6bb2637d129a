package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/darkkaiser/youth-gateway/internal/config"
	"github.com/darkkaiser/youth-gateway/internal/openapi/aggregate"
	"github.com/darkkaiser/youth-gateway/internal/openapi/center"
	"github.com/darkkaiser/youth-gateway/internal/openapi/fetcher"
	"github.com/darkkaiser/youth-gateway/internal/openapi/policy"
	"github.com/darkkaiser/youth-gateway/internal/openapi/work24"
	"github.com/darkkaiser/youth-gateway/internal/service/api"
	mcpservice "github.com/darkkaiser/youth-gateway/internal/service/mcp"
	applog "github.com/darkkaiser/youth-gateway/pkg/log"
)

// 빌드 정보 변수 (Dockerfile의 ldflags로 주입됨)
var (
	Version     = "dev"     // Git 커밋 해시
	BuildDate   = "unknown" // 빌드 날짜
	BuildNumber = "0"       // 빌드 번호
)

const (
	// 아스키아트(https://ko.rakko.tools/tools/68/, 폰트:standard)
	//
	// stdio 모드에서 표준 출력은 MCP 프로토콜 채널이므로 배너는 항상 표준 에러로 출력합니다.
	banner = `
 __   __               _    _        ____         _
 \ \ / /___   _   _  _| |_ | |__    / ___| __ _ _| |_  ___ _      __ __ _  _   _
  \ V // _ \ | | | ||_   _|| '_ \  | |  _ / _' |_   _|/ _ \ \ /\ / // _' || | | |
   | || (_) || |_| |  | |  | | | | | |_| | (_| | | | |  __/\ V  V /| (_| || |_| |
   |_| \___/  \__,_|  |_|  |_| |_|  \____|\__,_| |_|  \___| \_/\_/  \__,_| \__, |
                                                                           |___/  %s
                                                            developed by DarkKaiser
-----------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	fmt.Fprintf(os.Stderr, banner, Version)

	applog.WithComponent("main").WithFields(log.Fields{
		"version":    Version,
		"build_date": BuildDate,
		"build_no":   BuildNumber,
		"go":         runtime.Version(),
		"os_arch":    runtime.GOOS + "/" + runtime.GOARCH,
		"env":        map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 4. 권장 설정 진단 (구동은 계속한다)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	keyFields := log.Fields{}
	for name, masked := range appConfig.OpenAPI.MaskedKeys() {
		keyFields[name] = masked
	}
	applog.WithComponent("main").WithFields(keyFields).Debug("업스트림 API 키 설정 상태")

	// 5. 업스트림 클라이언트와 서비스를 생성하고 초기화한다.
	f := fetcher.NewHTTPFetcher()
	policyClient := policy.NewClient(appConfig.OpenAPI.YouthPolicyKey, f)
	centerClient := center.NewClient(appConfig.OpenAPI.YouthCenterKey, f)
	work24Client := work24.NewClient(appConfig.OpenAPI.Work24Keys(), f)

	aggregateService := aggregate.NewService(policyClient, centerClient, work24Client)
	mcpServer := mcpservice.NewServer(appConfig, Version, aggregateService, policyClient, work24Client)

	// 6. 종료 시그널(SIGINT/SIGTERM)과 연동된 컨텍스트로 서비스를 구동한다.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mcpServer.Run(gctx)
	})
	if appConfig.Ops.Enabled {
		apiServer := api.NewServer(appConfig, Version, mcpServer)
		g.Go(func() error {
			return apiServer.Run(gctx)
		})
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	if err := g.Wait(); err != nil {
		applog.WithComponent("main").WithError(err).Error("서비스 실행 중 오류가 발생했습니다")
		os.Exit(1)
	}

	applog.WithComponent("main").Info("서버가 정상 종료되었습니다")
}

// loadConfig 실행 인자로 설정 파일 경로가 주어지면 해당 파일을, 아니면 기본 파일을 로드합니다.
func loadConfig() (*config.AppConfig, error) {
	if len(os.Args) > 1 {
		return config.LoadWithFile(os.Args[1])
	}
	return config.Load()
}
