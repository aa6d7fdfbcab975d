package stocks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nbak/stocks-overview/date"
)

func TestStoreLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "stocks.csv")
	store := NewStore(path)

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(ledger) != 0 {
		t.Errorf("Load on a missing file = %v, want empty ledger", ledger)
	}

	// The file must now exist with the canonical header.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backing file was not created: %v", err)
	}
	if got, want := string(raw), "instrument_id,display_name,quantity,buy_date,sell_date\n"; got != want {
		t.Errorf("created file content %q, want %q", got, want)
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "stocks.csv"))

	ledger := Ledger{
		open("ABC", "Acme", 10, "2023-01-01"),
		closed("ABC", "Acme", 4, "2023-01-01", "2023-06-01"),
	}
	if err := store.Save(ledger); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	back, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !equalLedgers(back, ledger) {
		t.Errorf("round trip = %v, want %v", back, ledger)
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "stocks.csv"))

	if err := store.Save(Ledger{open("ABC", "Acme", 10, "2023-01-01")}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Save(Ledger{open("DEF", "Delta", 1, "2024-01-01")}); err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}

	back, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Ledger{open("DEF", "Delta", 1, "2024-01-01")}
	if !equalLedgers(back, want) {
		t.Errorf("Save must fully replace prior content, got %v", back)
	}
}

func TestStoreLoadSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocks.csv")
	if err := os.WriteFile(path, []byte("wkn,name,qty\nABC,Acme,10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewStore(path).Load()
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Load error = %v, want ErrStorage", err)
	}
}

// TestStoreEndToEnd exercises the load, mutate, save cycle the CLI performs.
func TestStoreEndToEnd(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "stocks.csv"))

	ledger, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ledger, err = ledger.Buy("ABC", "Acme", Q(10.0), date.MustParse("2023-01-01"))
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	ledger, err = ledger.Sell("ABC", Q(4.0), date.MustParse("2023-06-01"))
	if err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if err := store.Save(ledger); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := store.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := Ledger{
		closed("ABC", "Acme", 4, "2023-01-01", "2023-06-01"),
		open("ABC", "Acme", 6, "2023-01-01"),
	}
	if !equalLedgers(back, want) {
		t.Errorf("reloaded ledger = %v, want %v", back, want)
	}
}
