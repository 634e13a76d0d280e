package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/bingx/pkg/cmd/cmdutil"
	"github.com/c9s/bingx/pkg/exchange/bingx/bingxapi"
	"github.com/c9s/bingx/pkg/style"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "open, close or cancel orders",
}

// orderFromFlags maps the shared order flags onto a place order request and returns
// the parsed quantity.
func orderFromFlags(cmd *cobra.Command, req *bingxapi.PlaceOrderRequest) (decimal.Decimal, error) {
	symbol, err := requiredString(cmd, "symbol")
	if err != nil {
		return decimal.Zero, err
	}

	positionSide, err := requiredString(cmd, "side")
	if err != nil {
		return decimal.Zero, err
	}

	orderType, err := cmd.Flags().GetString("type")
	if err != nil {
		return decimal.Zero, err
	}

	req.Symbol(symbol).
		PositionSide(positionSide).
		OrderType(bingxapi.OrderType(strings.ToUpper(orderType)))

	quantity, ok, err := decimalFlag(cmd, "quantity")
	if err != nil {
		return decimal.Zero, err
	} else if !ok {
		return decimal.Zero, fmt.Errorf("--quantity option is required")
	}
	req.Quantity(quantity)

	if price, ok, err := decimalFlag(cmd, "price"); err != nil {
		return decimal.Zero, err
	} else if ok {
		req.Price(price)
	}

	if stopPrice, ok, err := decimalFlag(cmd, "stop-price"); err != nil {
		return decimal.Zero, err
	} else if ok {
		req.StopPrice(stopPrice)
	}

	bestPrice, err := cmd.Flags().GetBool("best-price")
	if err != nil {
		return decimal.Zero, err
	}
	if bestPrice {
		req.BestPrice()
	}

	clientOrderID, err := cmd.Flags().GetString("client-order-id")
	if err != nil {
		return decimal.Zero, err
	}
	if clientOrderID == "" {
		clientOrderID = uuid.NewString()
	}
	req.ClientOrderID(clientOrderID)
	return quantity, nil
}

// go run ./cmd/bingx order open --symbol=BTC-USDT --side=long --type=limit --price=37000 --quantity=0.01
var orderOpenCmd = &cobra.Command{
	Use:          "open",
	Short:        "open a position",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		test, err := cmd.Flags().GetBool("test")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewPlaceOrderRequest()
		if test {
			req = client.NewPlaceTestOrderRequest()
		}

		quantity, err := orderFromFlags(cmd, req.Open())
		if err != nil {
			return err
		}

		if rate, ok, err := decimalFlag(cmd, "price-rate"); err != nil {
			return err
		} else if ok {
			req.PriceRate(rate)
		}

		if tp, ok, err := decimalFlag(cmd, "take-profit"); err != nil {
			return err
		} else if ok {
			req.TakeProfit(bingxapi.NewTakeProfit(quantity, tp))
		}

		if sl, ok, err := decimalFlag(cmd, "stop-loss"); err != nil {
			return err
		} else if ok {
			req.StopLoss(bingxapi.NewStopLoss(quantity, sl))
		}

		order, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		return printOrders(cmd, "order", []bingxapi.Order{*order})
	},
}

// go run ./cmd/bingx order close --symbol=BTC-USDT --side=long --quantity=0.01
var orderCloseCmd = &cobra.Command{
	Use:          "close",
	Short:        "close a position",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		req := client.NewPlaceOrderRequest().Close()
		if _, err := orderFromFlags(cmd, req); err != nil {
			return err
		}

		order, err := req.Do(context.Background())
		if err != nil {
			return err
		}

		return printOrders(cmd, "order", []bingxapi.Order{*order})
	},
}

// go run ./cmd/bingx order cancel --symbol=BTC-USDT --order-id=123
var orderCancelCmd = &cobra.Command{
	Use:          "cancel",
	Short:        "cancel an order, or all open orders of the symbol with --all",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := requiredString(cmd, "symbol")
		if err != nil {
			return err
		}

		all, err := cmd.Flags().GetBool("all")
		if err != nil {
			return err
		}

		orderID, err := cmd.Flags().GetInt64("order-id")
		if err != nil {
			return err
		}

		clientOrderID, err := cmd.Flags().GetString("client-order-id")
		if err != nil {
			return err
		}

		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		ctx := context.Background()

		if all {
			result, err := client.NewCancelAllOrdersRequest().Symbol(symbol).Do(ctx)
			if err != nil {
				return err
			}

			for _, failed := range result.Failed {
				log.Warnf("failed to cancel order %d: %s (%d)", failed.OrderID, failed.ErrorMsg, failed.ErrorCode)
			}

			return printOrders(cmd, "canceled orders", result.Success)
		}

		req := client.NewCancelOrderRequest().Symbol(symbol)
		if orderID > 0 {
			req.OrderID(orderID)
		}
		if clientOrderID != "" {
			req.ClientOrderID(clientOrderID)
		}

		order, err := req.Do(ctx)
		if err != nil {
			return err
		}

		return printOrders(cmd, "canceled order", []bingxapi.Order{*order})
	},
}

// go run ./cmd/bingx orders --symbol=BTC-USDT [--history]
var ordersCmd = &cobra.Command{
	Use:          "orders",
	Short:        "show the open orders, or the order history with --history",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, err := cmd.Flags().GetString("symbol")
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
			if symbol == "" {
				return fmt.Errorf("--symbol option is required")
			}

			orders, err := client.NewGetOrderHistoryRequest().Symbol(symbol).Do(ctx)
			if err != nil {
				return err
			}

			return printOrders(cmd, "order history", orders)
		}

		req := client.NewGetOpenOrdersRequest()
		if symbol != "" {
			req.Symbol(symbol)
		}

		orders, err := req.Do(ctx)
		if err != nil {
			return err
		}

		return printOrders(cmd, "open orders", orders)
	},
}

// go run ./cmd/bingx close-all
var closeAllCmd = &cobra.Command{
	Use:          "close-all",
	Short:        "close every open position at market price",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := cmdutil.NewRestClient()
		if err != nil {
			return err
		}

		result, err := client.NewCloseAllPositionsRequest().Do(context.Background())
		if err != nil {
			return err
		}

		if ok, err := printJSON(cmd, result); ok {
			return err
		}

		log.Infof("closed positions: %v, failed: %v", result.Success, result.Failed)
		return nil
	},
}

func printOrders(cmd *cobra.Command, title string, orders []bingxapi.Order) error {
	if ok, err := printJSON(cmd, orders); ok {
		return err
	}

	t := style.NewTableWriter(cmd.OutOrStdout(), title, table.Row{"order id", "client order id", "symbol", "type", "side", "position side", "price", "quantity", "executed", "status"})
	for _, o := range orders {
		t.AppendRow(table.Row{
			o.OrderID,
			o.ClientOrderID,
			o.Symbol,
			o.Type,
			o.Side,
			o.PositionSide,
			o.Price.String(),
			o.OrigQty.String(),
			o.ExecutedQty.String(),
			o.Status,
		})
	}
	t.Render()
	return nil
}

func init() {
	for _, c := range []*cobra.Command{orderOpenCmd, orderCloseCmd} {
		c.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
		c.Flags().String("side", "", "the position side: long, short (bid and ask are accepted)")
		c.Flags().String("type", string(bingxapi.OrderTypeMarket), "order type: market, limit, trigger_market, trigger_limit, trailing_stop_market")
		c.Flags().String("quantity", "", "order quantity")
		c.Flags().String("price", "", "order price")
		c.Flags().Bool("best-price", false, "use the best bid/ask as the limit price")
		c.Flags().String("stop-price", "", "trigger price")
		c.Flags().String("client-order-id", "", "client order id, a uuid is generated if empty")
	}

	orderOpenCmd.Flags().String("price-rate", "", "callback rate of the trailing stop order")
	orderOpenCmd.Flags().String("take-profit", "", "take profit trigger price")
	orderOpenCmd.Flags().String("stop-loss", "", "stop loss trigger price")
	orderOpenCmd.Flags().Bool("test", false, "send the order to the test endpoint")

	orderCancelCmd.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
	orderCancelCmd.Flags().Int64("order-id", 0, "the order id")
	orderCancelCmd.Flags().String("client-order-id", "", "the client order id")
	orderCancelCmd.Flags().Bool("all", false, "cancel all open orders of the symbol")

	ordersCmd.Flags().String("symbol", "", "the trading pair, like BTC-USDT")
	ordersCmd.Flags().Bool("history", false, "show the order history instead of the open orders")

	orderCmd.AddCommand(orderOpenCmd, orderCloseCmd, orderCancelCmd)
	RootCmd.AddCommand(orderCmd, ordersCmd, closeAllCmd)
}
