package cmdutil

import (
	"github.com/spf13/viper"

	"github.com/c9s/bingx/pkg/exchange/bingx"
	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
)

// ConfigFromViper collects the client config from the bound flags and the
// environment.
func ConfigFromViper() bingx.Config {
	return bingx.Config{
		Key:           viper.GetString("bingx-api-key"),
		Secret:        viper.GetString("bingx-api-secret"),
		TimestampMode: viper.GetString("bingx-timestamp-mode"),
		RecvWindow:    viper.GetInt64("bingx-recv-window"),
		Demo:          viper.GetBool("bingx-demo"),
		Legacy:        viper.GetBool("bingx-legacy"),
	}
}

// NewRestClient constructs the rest client from viper config.
func NewRestClient() (*bingxapi.RestClient, error) {
	return ConfigFromViper().NewRestClient()
}
