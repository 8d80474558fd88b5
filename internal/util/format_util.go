package util

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatUSDPrice renders the TON/USD rate the way the page shows it.
func FormatUSDPrice(price float64) string {
	return fmt.Sprintf("$%.4f", price)
}

// FormatUSDValue renders a USD equivalent with cents.
func FormatUSDValue(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// FormatOfferAmount renders a TON amount with thousands grouping.
func FormatOfferAmount(amount float64) string {
	return printer.Sprintf("%v", number.Decimal(amount))
}

// FormatDiff splits a signed percent like "+1.20" into a direction and a
// bare magnitude. The feed uses "+", "-" and occasionally U+2212.
func FormatDiff(diff string) (positive bool, value string) {
	positive = strings.HasPrefix(diff, "+")
	value = strings.TrimLeft(diff, "+-−")
	return positive, value
}

// DiffIndicator renders a percent change with its trend arrow.
func DiffIndicator(diff string) string {
	positive, value := FormatDiff(diff)
	if positive {
		return "📈 " + value
	}
	return "📉 " + value
}

// ShortAddr abbreviates a wallet address for display: first 8 and last 8
// characters.
func ShortAddr(addr string) string {
	if len(addr) <= 16 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-8:]
}
