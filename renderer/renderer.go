// Package renderer turns ledger data into markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	stocks "github.com/nbak/stocks-overview"
)

// Positions renders the visible lots as a markdown table, one row per lot.
// Open lots show "-" in the sell date column.
func Positions(lots stocks.Ledger) string {
	if len(lots) == 0 {
		return "No positions to show.\n"
	}
	var b strings.Builder
	b.WriteString("| Instrument | Name | Quantity | Buy date | Sell date |\n")
	b.WriteString("|---|---|---:|---|---|\n")
	for _, lot := range lots {
		sell := "-"
		if !lot.SellDate.IsZero() {
			sell = lot.SellDate.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", lot.Instrument, lot.Name, lot.Quantity, lot.BuyDate, sell)
	}
	return b.String()
}

// Instruments renders the numbered picker table of all instruments known to
// the ledger, open or closed, sorted by id.
func Instruments(ledger stocks.Ledger) string {
	var b strings.Builder
	b.WriteString("| No. | Instrument | Name |\n")
	b.WriteString("|---:|---|---|\n")
	i := 0
	for instrument := range ledger.AllInstruments() {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, instrument.ID, instrument.Name)
		i++
	}
	if i == 0 {
		return "No instruments known yet.\n"
	}
	return b.String()
}
