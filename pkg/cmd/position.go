package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/bingx/pkg/cmd/cmdutil"
	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
	"github.com/c9s/bingx/pkg/style"
)

var leverageCmd = &cobra.Command{
	Use:   "leverage",
	Short: "query or change the leverage of a symbol",
}

// go run ./cmd/bingx leverage get --symbol=BTC-USDT
var leverageGetCmd = &cobra.Command{
	Use:          "get",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		leverage, err := client.NewGetLeverageRequest().Symbol(symbol).Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, leverage); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), symbol+" leverage", table.Row{"long", "short", "max long", "max short"})
		t.AppendRow(table.Row{leverage.LongLeverage, leverage.ShortLeverage, leverage.MaxLongLeverage, leverage.MaxShortLeverage})
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx leverage set --symbol=BTC-USDT --side=long --leverage=10
var leverageSetCmd = &cobra.Command{
	Use:          "set",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		side, err := requiredString(cmd, "side")
		if err != nil {
			return err
		}

		leverage, err := cmd.Flags().GetInt("leverage")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		result, err := client.NewSetLeverageRequest().Symbol(symbol).Side(side).Leverage(leverage).Do(context.Background())
		if err != nil {
			return err
		}

		log.Infof("%s leverage is set to %d", result.Symbol, result.Leverage)
		return nil
	},
}

var marginTypeCmd = &cobra.Command{
	Use:   "margin-type",
	Short: "query or change the margin type of a symbol",
}

// go run ./cmd/bingx margin-type get --symbol=BTC-USDT
var marginTypeGetCmd = &cobra.Command{
	Use:          "get",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		marginType, err := client.NewGetMarginTypeRequest().Symbol(symbol).Do(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", symbol, marginType)
		return nil
	},
}

// go run ./cmd/bingx margin-type set --symbol=BTC-USDT --type=ISOLATED
var marginTypeSetCmd = &cobra.Command{
	Use:          "set",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		marginType, err := requiredString(cmd, "type")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		if err := client.NewSetMarginTypeRequest().Symbol(symbol).MarginType(strings.ToUpper(marginType)).Do(context.Background()); err != nil {
			return err
		}

		log.Infof("%s margin type is set to %s", symbol, strings.ToUpper(marginType))
		return nil
	},
}

// go run ./cmd/bingx margin --symbol=BTC-USDT --amount=5 [--reduce] [--side=long]
var marginCmd = &cobra.Command{
	Use:          "margin",
	Short:        "add margin to, or remove margin from, an isolated position",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		amount, ok, err := decimalFlag(cmd, "amount")
		if err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("--amount option is required")
		}

		reduce, err := cmd.Flags().GetBool("reduce")
		if err != nil {
			return err
		}

		side, err := cmd.Flags().GetString("side")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		adjustment := bingxapi.MarginAdjustmentAdd
		if reduce {
			adjustment = bingxapi.MarginAdjustmentReduce
		}

		req := client.NewAdjustPositionMarginRequest().Symbol(symbol).Amount(amount).Adjustment(adjustment)
		if side != "" {
			req.PositionSide(side)
		}

		return req.Do(context.Background())
	},
}

func init() {
	for _, c := range []*cobra.Command{leverageGetCmd, leverageSetCmd, marginTypeGetCmd, marginTypeSetCmd, marginCmd} {
		c.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
	}

	leverageSetCmd.Flags().String("side", "", "the position side: long or short")
	leverageSetCmd.Flags().Int("leverage", 0, "the leverage")
	marginTypeSetCmd.Flags().String("type", "", "ISOLATED or CROSSED")
	marginCmd.Flags().String("amount", "", "the margin amount")
	marginCmd.Flags().Bool("reduce", false, "remove margin instead of adding it")
	marginCmd.Flags().String("side", "", "the position side: long or short")

	leverageCmd.AddCommand(leverageGetCmd, leverageSetCmd)
	marginTypeCmd.AddCommand(marginTypeGetCmd, marginTypeSetCmd)
	RootCmd.AddCommand(leverageCmd, marginTypeCmd, marginCmd)
}
