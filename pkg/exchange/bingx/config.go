package bingx

import (
	"strconv"
	"strings"

	"github.com/c9s/bingx/pkg/envvar"
	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
)

const DefaultEnvVarPrefix = "BINGX"

// Config is the client level configuration.
type Config struct {
	Key    string
	Secret string

	TimestampMode string
	RecvWindow    int64

	// Demo uses the virtual funds host
	Demo bool

	// Legacy uses the legacy swap API and its signature scheme
	Legacy bool
}

// LoadConfigFromEnv reads <PREFIX>_API_KEY, <PREFIX>_API_SECRET,
// <PREFIX>_TIMESTAMP_MODE, <PREFIX>_RECV_WINDOW, <PREFIX>_DEMO and <PREFIX>_LEGACY.
func LoadConfigFromEnv(varPrefix string) Config {
	if varPrefix == "" {
		varPrefix = DefaultEnvVarPrefix
	}

	varPrefix = strings.ToUpper(varPrefix)

	var config Config
	config.Key, _ = envvar.String(varPrefix + "_API_KEY")
	config.Secret, _ = envvar.String(varPrefix + "_API_SECRET")
	config.TimestampMode, _ = envvar.String(varPrefix+"_TIMESTAMP_MODE", string(bingxapi.TimestampModeLocal))
	config.RecvWindow, _ = envvar.Int64(varPrefix+"_RECV_WINDOW", bingxapi.DefaultRecvWindow)
	config.Demo, _ = envvar.Bool(varPrefix + "_DEMO")
	config.Legacy, _ = envvar.Bool(varPrefix + "_LEGACY")
	return config
}

// NewRestClient creates the client described by the config. Public routes work
// without a key, signed routes return a *bingxapi.SigningError until one is set.
func (c Config) NewRestClient() (*bingxapi.RestClient, error) {
	dialect := bingxapi.OpenAPIDialect
	if c.Legacy {
		dialect = bingxapi.LegacyDialect
	}

	client := bingxapi.NewClientWithDialect(dialect)

	if c.Demo {
		if err := client.UseDemo(); err != nil {
			return nil, err
		}
	}

	if c.TimestampMode != "" {
		mode, err := bingxapi.ParseTimestampMode(c.TimestampMode)
		if err != nil {
			return nil, err
		}

		if err := client.SetTimestampMode(mode); err != nil {
			return nil, err
		}
	}

	if c.RecvWindow < 0 {
		return nil, &bingxapi.ConfigurationError{Setting: "recv window", Value: strconv.FormatInt(c.RecvWindow, 10)}
	}

	if c.RecvWindow > 0 {
		client.SetRecvWindow(c.RecvWindow)
	}

	if c.Key != "" || c.Secret != "" {
		client.Auth(c.Key, c.Secret)
	}

	return client, nil
}
