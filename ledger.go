package stocks

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/nbak/stocks-overview/date"
	"github.com/shopspring/decimal"
)

// CloseTolerance is the lot-closing policy: when the quantity left to sell is
// within this tolerance of a lot's quantity, the whole lot is closed instead
// of leaving a dust remainder behind. It absorbs floating-point residue from
// quantities that entered the ledger as floats.
var CloseTolerance = Q(decimal.New(1, -4)) // 0.0001 shares

// Ledger is the ordered collection of all lots, open and closed. Lots have no
// identity beyond their position; queries filter by instrument and dates.
//
// All operations take the ledger as a value and return the updated one, they
// never mutate the receiver. Persisting the result is the caller's concern.
type Ledger []Lot

// Buy appends one new open lot for the given instrument.
//
// No matching against existing lots occurs: each buy is a distinct lot, even
// if an open lot with the same instrument and buy date already exists. The
// duplicates keep the buy history auditable.
func (l Ledger) Buy(instrument, name string, quantity Quantity, on date.Date) (Ledger, error) {
	if instrument == "" {
		return nil, fmt.Errorf("%w: instrument id is missing", ErrValidation)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: buy quantity must be positive, got %s", ErrValidation, quantity)
	}
	if on.IsZero() {
		return nil, fmt.Errorf("%w: buy date is missing", ErrValidation)
	}
	return append(slices.Clone(l), Lot{
		Instrument: instrument,
		Name:       name,
		Quantity:   quantity,
		BuyDate:    on,
	}), nil
}

// Sell matches a sale of the given quantity against the open lots of the
// instrument, consuming the oldest lots first (FIFO).
//
// A lot whose quantity is within CloseTolerance of the remaining demand is
// closed whole: its sell date is set and its quantity is untouched. A strictly
// larger lot is split into a closed lot carrying the sold quantity and an open
// remainder, so the total quantity per instrument is conserved exactly. Lots
// of other instruments and lots already closed pass through unchanged.
//
// Selling more than the total open quantity (beyond CloseTolerance) fails
// with ErrValidation before any lot is touched.
func (l Ledger) Sell(instrument string, quantity Quantity, on date.Date) (Ledger, error) {
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("%w: sell quantity must be positive, got %s", ErrValidation, quantity)
	}
	if on.IsZero() {
		return nil, fmt.Errorf("%w: sell date is missing", ErrValidation)
	}

	// Partition: lots of other instruments, and lots already closed, are not
	// eligible for matching.
	var updated, open Ledger
	for _, lot := range l {
		if lot.Instrument == instrument && lot.Open() {
			open = append(open, lot)
		} else {
			updated = append(updated, lot)
		}
	}

	var held Quantity
	for _, lot := range open {
		held = held.Add(lot.Quantity)
	}
	if quantity.Sub(held).GreaterThan(CloseTolerance) {
		return nil, fmt.Errorf("%w: cannot sell %s of %s, only %s held", ErrValidation, quantity, instrument, held)
	}

	// Oldest lots are consumed first; insertion order breaks ties.
	sort.SliceStable(open, func(i, j int) bool { return open[i].BuyDate.Before(open[j].BuyDate) })

	remaining := quantity
	for _, lot := range open {
		if !remaining.IsPositive() {
			// Demand already satisfied, the lot stays open and untouched.
			updated = append(updated, lot)
			continue
		}
		n := lot.Quantity
		if n.Sub(remaining).LessThanOrEqual(CloseTolerance) {
			// The whole lot is consumed: close it, quantity unchanged.
			lot.SellDate = on
			updated = append(updated, lot)
		} else {
			// The lot is strictly larger than the demand: split it into a
			// closed lot and an open remainder.
			closed := lot
			closed.Quantity = remaining
			closed.SellDate = on

			rest := lot
			rest.Quantity = n.Sub(remaining)

			updated = append(updated, closed, rest)
		}
		remaining = remaining.Sub(n)
	}
	return updated, nil
}

// Positions returns the lots visible for display as of the given cutoff: a
// lot is visible iff it is open, or it is closed and was bought on or after
// min. The result is sorted ascending by buy date, ties keep their ledger
// order. Positions is a pure function of the ledger.
func (l Ledger) Positions(min date.Date) Ledger {
	var visible Ledger
	for _, lot := range l {
		if lot.Open() || !lot.BuyDate.Before(min) {
			visible = append(visible, lot)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool { return visible[i].BuyDate.Before(visible[j].BuyDate) })
	return visible
}

// HasInstrument reports whether at least one lot, open or closed, exists for
// the instrument.
func (l Ledger) HasInstrument(id string) bool {
	for _, lot := range l {
		if lot.Instrument == id {
			return true
		}
	}
	return false
}

// DisplayName returns the display name recorded for the instrument. Callers
// are expected to check HasInstrument first; an unknown id is ErrNotFound.
func (l Ledger) DisplayName(id string) (string, error) {
	for _, lot := range l {
		if lot.Instrument == id {
			return lot.Name, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, id)
}

// OpenQuantity returns the total quantity currently held open for the instrument.
func (l Ledger) OpenQuantity(id string) Quantity {
	var total Quantity
	for _, lot := range l {
		if lot.Instrument == id && lot.Open() {
			total = total.Add(lot.Quantity)
		}
	}
	return total
}

// AllInstruments iterates over the distinct instruments of the ledger, sorted
// by id. The display name is the one of the first lot recorded for the id.
func (l Ledger) AllInstruments() iter.Seq[Instrument] {
	return func(yield func(Instrument) bool) {
		names := make(map[string]string)
		for _, lot := range l {
			if _, ok := names[lot.Instrument]; !ok {
				names[lot.Instrument] = lot.Name
			}
		}
		ids := slices.Collect(maps.Keys(names))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(Instrument{ID: id, Name: names[id]}) {
				return
			}
		}
	}
}
