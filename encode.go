package stocks

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"github.com/nbak/stocks-overview/date"
)

// header is the canonical column order of the backing file. Load rejects any
// file whose header does not match exactly.
var header = []string{"instrument_id", "display_name", "quantity", "buy_date", "sell_date"}

// nullMarker encodes an absent sell date. An explicit marker, not an empty
// field, to disambiguate "never sold" from "sold with empty date".
const nullMarker = "null"

// EncodeLedger writes the full ledger to w as CSV, header row first. Open
// lots carry the null marker in the sell_date column.
func EncodeLedger(w io.Writer, ledger Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: could not write header: %v", ErrStorage, err)
	}
	for _, lot := range ledger {
		sell := nullMarker
		if !lot.SellDate.IsZero() {
			sell = lot.SellDate.String()
		}
		record := []string{lot.Instrument, lot.Name, lot.Quantity.String(), lot.BuyDate.String(), sell}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%w: could not write lot: %v", ErrStorage, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// DecodeLedger reads a full ledger from CSV data. The header row must match
// the expected schema exactly; every data row must parse into a lot with a
// positive quantity. A sell_date of "null" (or an empty cell) means the lot
// is open.
func DecodeLedger(r io.Reader) (Ledger, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		// csv.Reader also reports rows with a field count different from the
		// header's, which covers missing or extra columns in data rows.
		return nil, fmt.Errorf("%w: malformed csv: %v", ErrStorage, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrStorage)
	}
	if !slices.Equal(rows[0], header) {
		return nil, fmt.Errorf("%w: unexpected columns %v, want %v", ErrStorage, rows[0], header)
	}

	ledger := make(Ledger, 0, len(rows)-1)
	for i, record := range rows[1:] {
		lot, err := decodeLot(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrStorage, i+2, err)
		}
		ledger = append(ledger, lot)
	}
	return ledger, nil
}

func decodeLot(record []string) (Lot, error) {
	quantity, err := ParseQuantity(record[2])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid quantity %q: %v", record[2], err)
	}
	if !quantity.IsPositive() {
		return Lot{}, fmt.Errorf("quantity must be positive, got %q", record[2])
	}
	buy, err := date.Parse(record[3])
	if err != nil {
		return Lot{}, fmt.Errorf("invalid buy date: %v", err)
	}
	lot := Lot{
		Instrument: record[0],
		Name:       record[1],
		Quantity:   quantity,
		BuyDate:    buy,
	}
	if s := record[4]; s != nullMarker && s != "" {
		sell, err := date.Parse(s)
		if err != nil {
			return Lot{}, fmt.Errorf("invalid sell date: %v", err)
		}
		lot.SellDate = sell
	}
	return lot, nil
}
