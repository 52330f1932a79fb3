package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConf(t *testing.T) {
	c := New().Prefix("RAWTEST_").Prefix("LOG_")
	t.Setenv("RAWTEST_LOG_FORMAT", "  json ")
	t.Setenv("RAWTEST_LOG_CALLER", "Yes")
	t.Setenv("RAWTEST_LOG_COLOR", "0")
	t.Setenv("RAWTEST_LOG_DEBUG", "maybe")
	t.Setenv("RAWTEST_LOG_SAMPLE_EVERY", "10")
	t.Setenv("RAWTEST_LOG_BUFFER", "-1")
	t.Setenv("RAWTEST_LOG_RATE", "2x")

	assert.Equal(t, "json", c.Get("FORMAT", "console"))
	assert.Equal(t, "console", c.Get("MISSING", "console"))

	assert.True(t, c.GetBool("CALLER", false))
	assert.False(t, c.GetBool("COLOR", true))
	assert.True(t, c.GetBool("DEBUG", true))
	assert.False(t, c.GetBool("MISSING", false))

	assert.Equal(t, 10, c.GetInt("SAMPLE_EVERY", 0))
	assert.Equal(t, 5, c.GetInt("BUFFER", 5))
	assert.Equal(t, 5, c.GetInt("RATE", 5))
	assert.Equal(t, 5, c.GetInt("MISSING", 5))
}
