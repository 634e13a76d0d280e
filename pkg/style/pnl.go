package style

import (
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

var LossEmoji = "🔥"
var ProfitEmoji = "💰"

func PnLColor(pnl decimal.Decimal) text.Colors {
	if pnl.Sign() > 0 {
		return text.Colors{text.FgGreen}
	}
	return text.Colors{text.FgRed}
}

func PnLSignString(pnl decimal.Decimal) string {
	if pnl.Sign() > 0 {
		return "+" + pnl.String()
	}
	return pnl.String()
}

func PnLEmojiSimple(pnl decimal.Decimal) string {
	if pnl.Sign() < 0 {
		return LossEmoji
	}

	if pnl.IsZero() {
		return ""
	}

	return ProfitEmoji
}

// PnLString formats the pnl with its sign, colored and tagged with the emoji.
func PnLString(pnl decimal.Decimal) string {
	s := PnLSignString(pnl)
	if pnl.IsZero() {
		return s
	}

	return PnLColor(pnl).Sprint(s) + " " + PnLEmojiSimple(pnl)
}
