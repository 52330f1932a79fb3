// Package raw reads env vars for the logger, which config itself logs through
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads keys under a prefix
type Conf struct{ prefix string }

func New() Conf { return Conf{} }

func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the value or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts strconv bools plus yes and no
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.lookup(key)); v {
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
}

// GetInt returns def for anything that is not a non-negative int
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.lookup(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
