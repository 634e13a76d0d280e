package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c9s/bingx/pkg/cmd/cmdutil"
	"github.com/c9s/bingx/pkg/style"
)

// go run ./cmd/bingx servertime
var serverTimeCmd = &cobra.Command{
	Use:   "servertime",
	Short: "show the server time",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		ms, err := client.ServerTime(context.Background())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", ms, formatMillis(ms))
		return nil
	},
}

// go run ./cmd/bingx price --symbol=BTC-USDT
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "show the latest price of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		price, err := client.NewGetLatestPriceRequest().Symbol(symbol).Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, price); ok {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", price.Symbol, price.Price.String())
		return nil
	},
}

// go run ./cmd/bingx depth --symbol=BTC-USDT --limit=10
var depthCmd = &cobra.Command{
	Use:   "depth",
	Short: "show the order book of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewGetDepthRequest().Symbol(symbol)
		if limit > 0 {
			req.Limit(limit)
		}

		depth, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, depth); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), symbol+" depth", table.Row{"#", "bid volume", "bid", "ask", "ask volume"})
		for i := 0; i < len(depth.Bids) || i < len(depth.Asks); i++ {
			row := table.Row{i + 1, "", "", "", ""}
			if i < len(depth.Bids) {
				row[1], row[2] = depth.Bids[i].Volume.String(), depth.Bids[i].Price.String()
			}
			if i < len(depth.Asks) {
				row[3], row[4] = depth.Asks[i].Price.String(), depth.Asks[i].Volume.String()
			}
			t.AppendRow(row)
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx klines --symbol=BTC-USDT --interval=1h --limit=24
var klinesCmd = &cobra.Command{
	Use:   "klines",
	Short: "show the candles of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		interval, err := cmd.Flags().GetString("interval")
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewGetKLinesRequest().Symbol(symbol).Interval(interval)
		if limit > 0 {
			req.Limit(limit)
		}

		klines, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, klines); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), symbol+" "+interval, table.Row{"time", "open", "high", "low", "close", "volume"})
		for _, k := range klines {
			t.AppendRow(table.Row{formatMillis(k.Time), k.Open.String(), k.High.String(), k.Low.String(), k.Close.String(), k.Volume.String()})
		}
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx ticker --symbol=BTC-USDT
var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "show the 24h ticker of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		ticker, err := client.NewGetTickerRequest().Symbol(symbol).Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, ticker); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), ticker.Symbol, table.Row{"last", "change", "change %", "high", "low", "volume"})
		t.AppendRow(table.Row{
			ticker.LastPrice.String(),
			ticker.PriceChange.String(),
			ticker.PriceChangePercent,
			ticker.HighPrice.String(),
			ticker.LowPrice.String(),
			ticker.Volume.String(),
		})
		t.Render()
		return nil
	},
}

// go run ./cmd/bingx funding --symbol=BTC-USDT
var fundingCmd = &cobra.Command{
	Use:   "funding",
	Short: "show the mark price and the funding rate of a symbol",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		history, err := cmd.Flags().GetBool("history")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		ctx := context.Background()

		if history {
			rates, err := client.NewGetFundingRateHistoryRequest().Symbol(symbol).Do(ctx)
			if err != nil {
				return err
			}

			if ok, err := printJSON(cmd, rates); ok {
				return err
			}

			t := style.NewTableWriter(cmd.OutOrStdout(), symbol+" funding history", table.Row{"time", "rate"})
			for _, r := range rates {
				t.AppendRow(table.Row{formatMillis(r.FundingTime), r.FundingRate.String()})
			}
			t.Render()
			return nil
		}

		index, err := client.NewGetPremiumIndexRequest().Symbol(symbol).Do(ctx)
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, index); ok {
			return err
		}

		t := style.NewTableWriter(cmd.OutOrStdout(), index.Symbol, table.Row{"mark", "index", "funding rate", "next funding"})
		t.AppendRow(table.Row{index.MarkPrice.String(), index.IndexPrice.String(), index.LastFundingRate.String(), formatMillis(index.NextFundingTime)})
		t.Render()
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{priceCmd, depthCmd, klinesCmd, tickerCmd, fundingCmd} {
		c.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
	}

	depthCmd.Flags().Int("limit", 0, "the number of levels")
	klinesCmd.Flags().String("interval", "1h", "interval of the kline (candle), .e.g, 1m, 15m, 1h, 1d")
	klinesCmd.Flags().Int("limit", 0, "the number of candles")
	fundingCmd.Flags().Bool("history", false, "show the funding rate history")

	RootCmd.AddCommand(serverTimeCmd, priceCmd, depthCmd, klinesCmd, tickerCmd, fundingCmd)
}
