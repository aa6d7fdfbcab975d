package stocks

import "github.com/nbak/stocks-overview/date"

// Lot is a single purchase record: a quantity of one instrument bought on one
// date, open until it is fully matched against a sale.
type Lot struct {
	Instrument string    // opaque identifier of the instrument, e.g. a WKN; immutable once created.
	Name       string    // human-readable label for the instrument.
	Quantity   Quantity  // strictly positive while the lot is stored.
	BuyDate    date.Date // immutable once created.
	SellDate   date.Date // zero while the lot is open; closed lots are never re-mutated.
}

// Open reports whether the lot has not been sold yet.
func (l Lot) Open() bool { return l.SellDate.IsZero() }

// Equal reports whether two lots carry the same field values.
func (l Lot) Equal(o Lot) bool {
	return l.Instrument == o.Instrument &&
		l.Name == o.Name &&
		l.Quantity.Equal(o.Quantity) &&
		l.BuyDate == o.BuyDate &&
		l.SellDate == o.SellDate
}

// Instrument identifies a tradable security: an opaque id with a
// human-readable display name. It is derived from lots, never stored on its own.
type Instrument struct {
	ID   string
	Name string
}
