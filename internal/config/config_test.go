package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/darkkaiser/youth-gateway/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWithFile(t *testing.T) {
	t.Run("설정 파일이 없으면 기본값으로 구성", func(t *testing.T) {
		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "없는파일.json"))
		require.NoError(t, err)
		assert.Equal(t, ServerModeStdio, cfg.Server.Mode)
		assert.Equal(t, DefaultListenPort, cfg.Server.ListenPort)
		assert.Equal(t, DefaultOpsListenPort, cfg.Ops.ListenPort)
		assert.False(t, cfg.Debug)
	})

	t.Run("설정 파일이 기본값을 덮어쓴다", func(t *testing.T) {
		path := writeConfigFile(t, `{
			"debug": true,
			"server": {"mode": "sse", "listen_port": 9000},
			"open_api": {"youth_policy_key": "policy-key"}
		}`)

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.Equal(t, ServerModeSSE, cfg.Server.Mode)
		assert.Equal(t, 9000, cfg.Server.ListenPort)
		assert.Equal(t, "policy-key", cfg.OpenAPI.YouthPolicyKey)
	})

	t.Run("환경 변수가 설정 파일을 덮어쓴다", func(t *testing.T) {
		path := writeConfigFile(t, `{"open_api": {"youth_policy_key": "file-key"}}`)

		t.Setenv("YOUTH_OPEN_API__YOUTH_POLICY_KEY", "env-key")
		t.Setenv("YOUTH_SERVER__MODE", "streamable-http")

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.OpenAPI.YouthPolicyKey)
		assert.Equal(t, ServerModeStreamableHTTP, cfg.Server.Mode)
	})

	t.Run("알 수 없는 설정 필드는 에러", func(t *testing.T) {
		path := writeConfigFile(t, `{"unknown_field": true}`)

		_, err := LoadWithFile(path)
		require.Error(t, err)
	})

	t.Run("잘못된 구동 모드는 에러", func(t *testing.T) {
		path := writeConfigFile(t, `{"server": {"mode": "tcp"}}`)

		_, err := LoadWithFile(path)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.Contains(t, err.Error(), "mode")
	})

	t.Run("잘못된 포트는 에러", func(t *testing.T) {
		path := writeConfigFile(t, `{"server": {"listen_port": 70000}}`)

		_, err := LoadWithFile(path)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("손상된 JSON 파일은 에러", func(t *testing.T) {
		path := writeConfigFile(t, `{"server": `)

		_, err := LoadWithFile(path)
		require.Error(t, err)
	})

	t.Run("환경 변수의 허용 오리진은 쉼표로 구분된 목록으로 펼쳐진다", func(t *testing.T) {
		t.Setenv("YOUTH_OPS__ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")

		cfg, err := LoadWithFile(filepath.Join(t.TempDir(), "없는파일.json"))
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Ops.AllowOrigins)
	})

	t.Run("설정 파일의 허용 오리진 항목별 공백이 정리된다", func(t *testing.T) {
		path := writeConfigFile(t, `{"ops": {"allow_origins": [" https://a.example.com ", ""]}}`)

		cfg, err := LoadWithFile(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example.com"}, cfg.Ops.AllowOrigins)
	})
}

func TestOpenAPIConfig(t *testing.T) {
	t.Run("Work24Keys 매핑", func(t *testing.T) {
		cfg := OpenAPIConfig{WantedKey: "w", TrainingKey: "t"}
		keys := cfg.Work24Keys()
		assert.Equal(t, "w", keys["wanted"])
		assert.Equal(t, "t", keys["training"])
		assert.Len(t, keys, 5)
	})

	t.Run("비어있는 키 진단", func(t *testing.T) {
		cfg := OpenAPIConfig{YouthPolicyKey: "k"}
		missing := cfg.MissingKeys()
		assert.Len(t, missing, 6)
		assert.NotContains(t, missing, "open_api.youth_policy_key")
		assert.Contains(t, missing, "open_api.wanted_key")
	})

	t.Run("MaskedKeys는 키 원문을 노출하지 않는다", func(t *testing.T) {
		cfg := OpenAPIConfig{YouthPolicyKey: "abcdefghijklmnop", WantedKey: ""}
		masked := cfg.MaskedKeys()
		assert.Len(t, masked, 7)
		assert.Equal(t, "abcd***mnop", masked["youth_policy"])
		assert.NotContains(t, masked["youth_policy"], "efghijkl")
		assert.Empty(t, masked["wanted"], "설정되지 않은 키는 빈 문자열로 유지됩니다")
	})
}

func TestVerifyRecommendations(t *testing.T) {
	t.Run("비어있는 API 키마다 경고", func(t *testing.T) {
		cfg := &AppConfig{
			Server: ServerConfig{Mode: ServerModeStdio, ListenPort: DefaultListenPort},
		}
		warnings := cfg.VerifyRecommendations()
		assert.Len(t, warnings, 7)
	})

	t.Run("예약 포트 경고는 stdio 모드에서 제외", func(t *testing.T) {
		stdio := &AppConfig{Server: ServerConfig{Mode: ServerModeStdio, ListenPort: 80}}
		sse := &AppConfig{Server: ServerConfig{Mode: ServerModeSSE, ListenPort: 80}}

		assert.Len(t, stdio.VerifyRecommendations(), 7)
		assert.Len(t, sse.VerifyRecommendations(), 8)
	})
}
