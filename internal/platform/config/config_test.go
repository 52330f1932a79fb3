package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrefixNests(t *testing.T) {
	assert.Equal(t, "SERVICE_PGSQL_DBURL", New().Prefix("SERVICE_").Prefix("PGSQL_").key("DBURL"))
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_DBURL", " postgres://localhost/reduce ")
	assert.Equal(t, "postgres://localhost/reduce", c.MustString("DBURL"))

	t.Setenv("CFGTEST_EMPTY", "   ")
	assert.Panics(t, func() { c.MustString("EMPTY") })
	assert.Panics(t, func() { c.MustString("UNSET") })
}

func TestMayParsers(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_ADDR", ":4000")
	t.Setenv("CFGTEST_CONNS", "8")
	t.Setenv("CFGTEST_BAD_CONNS", "eight")
	t.Setenv("CFGTEST_SWAGGER", "false")
	t.Setenv("CFGTEST_BAD_SWAGGER", "nope")
	t.Setenv("CFGTEST_TIMEOUT", "250ms")
	t.Setenv("CFGTEST_BAD_TIMEOUT", "5")

	assert.Equal(t, ":4000", c.MayString("ADDR", ":3000"))
	assert.Equal(t, ":3000", c.MayString("UNSET", ":3000"))

	assert.Equal(t, 8, c.MayInt("CONNS", 4))
	assert.Equal(t, 4, c.MayInt("BAD_CONNS", 4))

	assert.False(t, c.MayBool("SWAGGER", true))
	assert.True(t, c.MayBool("BAD_SWAGGER", true))

	assert.Equal(t, 250*time.Millisecond, c.MayDuration("TIMEOUT", time.Second))
	assert.Equal(t, time.Second, c.MayDuration("BAD_TIMEOUT", time.Second))
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_ORIGINS", " https://a.example, ,https://b.example ")
	t.Setenv("CFGTEST_COMMAS", " , ,")

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.MayCSV("ORIGINS", nil))
	assert.Equal(t, []string{"*"}, c.MayCSV("COMMAS", []string{"*"}))
	assert.Nil(t, c.MayCSV("UNSET", nil))
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_ROW_POLICY", "Strict")
	t.Setenv("CFGTEST_BAD_POLICY", "sloppy")

	assert.Equal(t, "strict", c.MayEnum("ROW_POLICY", "lenient", "lenient", "strict"))
	assert.Equal(t, "drop", c.MayEnum("UNSET", "drop", "drop", "reject"))
	assert.Panics(t, func() { c.MayEnum("BAD_POLICY", "lenient", "lenient", "strict") })
}
