package envvar

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// String returns the value of the environment variable named n, or the optional
// default value when it is not set.
func String(n string, args ...string) (string, bool) {
	defaultValue := ""
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	return strings.TrimSpace(str), true
}

// Int64 returns the int64 value of the environment variable named n.
func Int64(n string, args ...int64) (int64, bool) {
	defaultValue := int64(0)
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	num, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as int, incorrect format", n, str)
		return defaultValue, false
	}

	return num, true
}

func Bool(n string, args ...bool) (bool, bool) {
	defaultValue := false
	if len(args) > 0 {
		defaultValue = args[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	b, err := strconv.ParseBool(strings.TrimSpace(str))
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as bool, incorrect format", n, str)
		return defaultValue, false
	}

	return b, true
}
