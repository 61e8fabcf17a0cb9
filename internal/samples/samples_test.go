package samples

import (
	"log/slog"
	"slices"
	"testing"

	"github.com/maruel/constrec/internal/consttable"
)

func TestLoad(t *testing.T) {
	c, err := Load(slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Names(); !slices.Equal(got, []string{"canadian_province", "german_province", "currency"}) {
		t.Fatalf("Names() = %v", got)
	}

	t.Run("canadian_province", func(t *testing.T) {
		tbl, _ := c.Get("canadian_province")
		if n, err := tbl.Count(); err != nil || n != 10 {
			t.Errorf("Count() = %d, %v", n, err)
		}
		r, err := tbl.FindBy("abbr", "PE")
		if err != nil || r == nil {
			t.Fatalf("FindBy(abbr, PE) = %v, %v", r, err)
		}
		if r.ID() != 8 || r.String("capital") != "Charlottetown" {
			t.Errorf("got %#v", r)
		}
		if r, err := tbl.FindBy("population", "13167894"); err != nil || r.String("name") != "Ontario" {
			t.Errorf("FindBy(population) = %v, %v", r, err)
		}
	})

	t.Run("german_province", func(t *testing.T) {
		tbl, _ := c.Get("german_province")
		if got := tbl.Last().String("name"); got != "Thüringen" {
			t.Errorf("last = %q", got)
		}
		v, err := tbl.Lookup("Berlin")
		if err != nil || v != "BE" {
			t.Errorf("Lookup(Berlin) = %v, %v", v, err)
		}
		areas, err := tbl.Pluck("areas")
		if err != nil {
			t.Fatal(err)
		}
		var total int64
		for _, a := range areas {
			total += a.(int64)
		}
		if total != 357117 {
			t.Errorf("total area = %d", total)
		}
	})

	t.Run("currency", func(t *testing.T) {
		tbl, _ := c.Get("currency")
		opts, err := tbl.OptionsForSelect(consttable.Display("description"), consttable.ValueColumn("short"))
		if err != nil {
			t.Fatal(err)
		}
		if len(opts) != 5 || opts[2] != (consttable.Option{Label: "Canadian Dollar", Value: "CAD"}) {
			t.Errorf("options = %v", opts)
		}
	})
}
