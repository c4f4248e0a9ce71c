package envconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	Debug = false // Reset value
	t.Setenv("CLPEEK_DEBUG", "")
	LoadConfig()
	assert.False(t, Debug)

	t.Setenv("CLPEEK_DEBUG", "false")
	LoadConfig()
	assert.False(t, Debug)

	t.Setenv("CLPEEK_DEBUG", "1")
	LoadConfig()
	assert.True(t, Debug)

	Debug = false
	t.Setenv("CLPEEK_DEBUG", "nonsense")
	LoadConfig()
	assert.True(t, Debug)
}

func TestHost(t *testing.T) {
	t.Setenv("CLPEEK_HOST", "")
	LoadConfig()
	assert.Equal(t, DefaultHost, Host)

	t.Setenv("CLPEEK_HOST", "\"0.0.0.0:9999\"")
	LoadConfig()
	assert.Equal(t, "0.0.0.0:9999", Host)
}

func TestOrigins(t *testing.T) {
	t.Setenv("CLPEEK_ORIGINS", "http://10.0.0.1")
	LoadConfig()

	assert.Contains(t, AllowOrigins, "http://10.0.0.1")
	assert.Contains(t, AllowOrigins, "http://localhost")
	assert.Contains(t, AllowOrigins, "https://127.0.0.1")
}
