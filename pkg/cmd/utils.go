package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// printJSON writes v as indented json, it returns false when --json is not set.
func printJSON(cmd *cobra.Command, v interface{}) (bool, error) {
	if !viper.GetBool("json") {
		return false, nil
	}

	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return true, err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return true, nil
}

func requiredString(cmd *cobra.Command, name string) (string, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}

	if s == "" {
		return "", fmt.Errorf("--%s option is required", name)
	}

	return s, nil
}

// decimalFlag parses an optional decimal flag, ok is false when the flag is empty.
func decimalFlag(cmd *cobra.Command, name string) (d decimal.Decimal, ok bool, err error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil || s == "" {
		return decimal.Zero, false, err
	}

	d, err = decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid --%s value %q: %w", name, s, err)
	}

	return d, true, nil
}

func formatMillis(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format(time.RFC3339)
}
