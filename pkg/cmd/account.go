package cmd

import (
	"context"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/bingx/pkg/cmd/cmdutil"
	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
	v1 "github.com/c9s/bingx/pkg/exchange/bingx/bingxapi/v1"
	"github.com/c9s/bingx/pkg/style"
)

// go run ./cmd/bingx balance
var balanceCmd = &cobra.Command{
	Use:          "balance",
	Short:        "show the perpetual account balance",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		config := cmdutil.ConfigFromViper()
		client, err := config.NewRestClient()
		if err != nil {
			return err
		}

		if config.Legacy {
			currency, err := cmd.Flags().GetString("currency")
			if err != nil {
				return err
			}

			account, err := v1.NewClientWithRestClient(client).GetBalance(ctx, currency)
			if err != nil {
				return err
			}

			if ok, err := printJSON(cmd, account); ok {
				return err
			}

			t := style.NewTableWriter(cmd.OutOrStdout(), "balance", table.Row{"currency", "balance", "equity", "available", "used", "unrealized pnl"})
			t.AppendRow(table.Row{
				account.Currency,
				account.Balance.String(),
				account.Equity.String(),
				account.AvailableMargin.String(),
				account.UsedMargin.String(),
				style.PnLString(account.UnrealizedProfit),
			})
			t.Render()
			return nil
		}

		balance, err := client.NewGetBalanceRequest().Do(ctx)
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, balance); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), "balance", table.Row{"asset", "balance", "equity", "available", "used", "unrealized pnl"})
		t.AppendRow(table.Row{
			balance.Asset,
			balance.Balance.String(),
			balance.Equity.String(),
			balance.AvailableMargin.String(),
			balance.UsedMargin.String(),
			style.PnLString(balance.UnrealizedProfit),
		})
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx positions --symbol=BTC-USDT
var positionsCmd = &cobra.Command{
	Use:          "positions",
	Short:        "show the open positions",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewGetPositionsRequest()
		if symbol != "" {
			req.Symbol(symbol)
		}

		positions, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, positions); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), "positions", table.Row{"symbol", "side", "amount", "avg price", "mark price", "liq. price", "leverage", "unrealized pnl"})
		for _, p := range positions {
			t.AppendRow(table.Row{
				p.Symbol,
				p.PositionSide,
				p.PositionAmt.String(),
				p.AvgPrice.String(),
				p.MarkPrice.String(),
				p.LiquidationPrice.String(),
				p.Leverage,
				style.PnLString(p.UnrealizedProfit),
			})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx income --type=FUNDING_FEE
var incomeCmd = &cobra.Command{
	Use:          "income",
	Short:        "show the capital flow of the perpetual account",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			return err
		}

		incomeType, err := cmd.Flags().GetString("type")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewGetIncomeRequest()
		if symbol != "" {
			req.Symbol(symbol)
		}
		if incomeType != "" {
			req.IncomeType(bingxapi.IncomeType(incomeType))
		}

		incomes, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, incomes); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), "income", table.Row{"time", "symbol", "type", "income", "asset", "info"})
		for _, i := range incomes {
			t.AppendRow(table.Row{formatMillis(i.Time), i.Symbol, i.IncomeType, i.Income.String(), i.Asset, i.Info})
		}
		t.Render()
		return nil
	},
}

func init() {
	balanceCmd.Flags().String("currency", "USDT", "the currency of the legacy account")
	positionsCmd.Flags().String("symbol", "", "the trading pair, like BTC-USDT. all positions are listed if empty")
	incomeCmd.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
	incomeCmd.Flags().String("type", "", "the income type, like FUNDING_FEE or REALIZED_PNL")

	RootCmd.AddCommand(balanceCmd, positionsCmd, incomeCmd)
}
