package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"production", gin.ReleaseMode},
		{"prod", gin.ReleaseMode},
		{"release", gin.ReleaseMode},
		{"test", gin.TestMode},
		{"development", gin.DebugMode},
		{"", gin.DebugMode},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, mapEnvToGinMode(tt.env))
		})
	}
}

func TestNewCommand_Flags(t *testing.T) {
	cmd := NewCommand()

	for _, name := range []string{"env", "config", "auto-migrate", "skip-migration-check"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "development", cmd.Flags().Lookup("env").DefValue)
}
