package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
)

// PersistentFlags defines the flags for environments. The flag names map to the
// BINGX_* environment variables through viper.
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("bingx-api-key", "", "bingx api key")
	flags.String("bingx-api-secret", "", "bingx api secret")
	flags.String("bingx-timestamp-mode", string(bingxapi.TimestampModeLocal), "timestamp source of signed requests: local or server")
	flags.Int64("bingx-recv-window", bingxapi.DefaultRecvWindow, "recvWindow in milliseconds sent with order placement")
	flags.Bool("bingx-demo", false, "use the demo (virtual funds) host")
	flags.Bool("bingx-legacy", false, "use the legacy swap api")
}
