package testutil

import (
	"os"
	"testing"

	"github.com/c9s/bingx/pkg/util"
)

// IntegrationTestConfigured reports whether the live api tests of prefix are
// enabled: <PREFIX>_API_KEY and <PREFIX>_API_SECRET must be set and TEST_<PREFIX>=1.
func IntegrationTestConfigured(t *testing.T, prefix string) (key, secret string, ok bool) {
	var hasKey, hasSecret bool
	key, hasKey = os.LookupEnv(prefix + "_API_KEY")
	secret, hasSecret = os.LookupEnv(prefix + "_API_SECRET")
	ok = hasKey && hasSecret && os.Getenv("TEST_"+prefix) == "1"
	if ok {
		t.Logf(prefix+" api integration test enabled, key = %s", util.MaskKey(key))
	}

	return key, secret, ok
}
