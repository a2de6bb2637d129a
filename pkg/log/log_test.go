package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"정상 설정", Options{Name: "youth-gateway"}, false},
		{"Name 누락", Options{}, true},
		{"음수 MaxAge", Options{Name: "x", MaxAge: -1}, true},
		{"음수 MaxSizeMB", Options{Name: "x", MaxSizeMB: -1}, true},
		{"음수 MaxBackups", Options{Name: "x", MaxBackups: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptionsValidate_DirIsFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "occupied")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0o644))

	opts := Options{Name: "x", Dir: filePath}
	assert.Error(t, opts.Validate())
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("youth-gateway")
	assert.Equal(t, InfoLevel, prod.Level)
	assert.False(t, prod.EnableConsoleLog)
	assert.Equal(t, "logs", prod.Dir)

	dev := NewDevelopmentOptions("youth-gateway")
	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
	assert.Empty(t, dev.Dir)
}
