package consttable

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestOptionsForSelect(t *testing.T) {
	countries := newCountries(t)
	albums := newAlbums(t)
	currencies := newCurrencies(t)

	tests := []struct {
		name string
		got  func() ([]Option, error)
		want []Option
	}{
		{
			"default",
			func() ([]Option, error) { return countries.OptionsForSelect() },
			[]Option{{"Lithuania", 1}, {"Latvia", 2}, {"Estonia", 3}},
		},
		{
			"include null",
			func() ([]Option, error) { return countries.OptionsForSelect(IncludeNull(), NullText("n/a")) },
			[]Option{{"n/a", 0}, {"Lithuania", 1}, {"Latvia", 2}, {"Estonia", 3}},
		},
		{
			"default null text",
			func() ([]Option, error) { return countries.OptionsForSelect(IncludeNull()) },
			[]Option{{DefaultNullText, 0}, {"Lithuania", 1}, {"Latvia", 2}, {"Estonia", 3}},
		},
		{
			"nil null value",
			func() ([]Option, error) {
				return countries.OptionsForSelect(IncludeNull(), NullText("n/a"), NullValue(nil))
			},
			[]Option{{"n/a", nil}, {"Lithuania", 1}, {"Latvia", 2}, {"Estonia", 3}},
		},
		{
			"null options without include null",
			func() ([]Option, error) { return countries.OptionsForSelect(NullText("n/a"), NullValue(nil)) },
			[]Option{{"Lithuania", 1}, {"Latvia", 2}, {"Estonia", 3}},
		},
		{
			"display and value columns",
			func() ([]Option, error) {
				return currencies.OptionsForSelect(Display("description"), ValueColumn("short"), IncludeNull(), NullValue("nothn'"))
			},
			[]Option{
				{DefaultNullText, "nothn'"},
				{"Euro", "EUR"},
				{"US Dollar", "USD"},
				{"Canadian Dollar", "CAD"},
				{"British Pound sterling", "GBP"},
				{"Swiss franc", "CHF"},
			},
		},
		{
			"display func",
			func() ([]Option, error) {
				return albums.OptionsForSelect(DisplayFunc(func(a Attributes) any {
					v, _ := a.Get("album")
					return fmt.Sprintf("*%s*", v)
				}))
			},
			[]Option{{"*Sgt. Pepper*", 1}, {"*Magical Mystery Tour*", 2}, {"*Abbey Road*", 3}},
		},
		{
			"display func sees id",
			func() ([]Option, error) {
				return albums.OptionsForSelect(DisplayFunc(func(a Attributes) any { return a.ID() * 10 }))
			},
			[]Option{{10, 1}, {20, 2}, {30, 3}},
		},
		{
			"display overrides display func",
			func() ([]Option, error) {
				return currencies.OptionsForSelect(DisplayFunc(func(Attributes) any { return "x" }), Display("short"))
			},
			[]Option{{"EUR", 1}, {"USD", 2}, {"CAD", 3}, {"GBP", 4}, {"CHF", 5}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("OptionsForSelect failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("OptionsForSelect() =\n%#v\nwant\n%#v", got, tt.want)
			}
		})
	}

	t.Run("empty table", func(t *testing.T) {
		tbl := New[country]("country")
		got, err := tbl.OptionsForSelect(IncludeNull())
		if err != nil {
			t.Fatal(err)
		}
		if want := []Option{{DefaultNullText, 0}}; !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("unknown columns", func(t *testing.T) {
		if _, err := currencies.OptionsForSelect(Display("long")); !errors.Is(err, ErrUnknownColumn) {
			t.Errorf("Display(long) error = %v", err)
		}
		if _, err := currencies.OptionsForSelect(ValueColumn("code")); !errors.Is(err, ErrUnknownColumn) {
			t.Errorf("ValueColumn(code) error = %v", err)
		}
	})

	t.Run("json", func(t *testing.T) {
		got, err := currencies.OptionsForSelect(ValueColumn("short"))
		if err != nil {
			t.Fatal(err)
		}
		b, err := json.Marshal(got[:1])
		if err != nil {
			t.Fatal(err)
		}
		if want := `[{"label":"Euro","value":"EUR"}]`; string(b) != want {
			t.Errorf("json = %s, want %s", b, want)
		}
	})
}

func TestLookup(t *testing.T) {
	currencies := newCurrencies(t)

	t.Run("hit", func(t *testing.T) {
		v, err := currencies.Lookup("CAD")
		if err != nil {
			t.Fatal(err)
		}
		if v != "Canadian Dollar" {
			t.Errorf("Lookup(CAD) = %v", v)
		}
		if got := currencies.MustLookup("CHF"); got != "Swiss franc" {
			t.Errorf("MustLookup(CHF) = %v", got)
		}
	})

	t.Run("miss", func(t *testing.T) {
		_, err := currencies.Lookup("XXX")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Lookup(XXX) error = %v, want ErrNotFound", err)
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatal("not an *Error")
		}
		if e.Detail("table") != "currency" || e.Detail("key") != "XXX" {
			t.Errorf("details = %v", e.Details())
		}
		if _, err := currencies.Lookup(struct{}{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(struct) error = %v", err)
		}
	})

	t.Run("exact keys", func(t *testing.T) {
		primes := newPrimes(t)
		v, err := primes.Lookup(17)
		if err != nil || v != true {
			t.Errorf("Lookup(17) = %v, %v", v, err)
		}
		if _, err := primes.Lookup("17"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(\"17\") error = %v, want ErrNotFound", err)
		}
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		tbl, err := Define[currency]("dup", []string{"k", "v"}, []any{
			[]any{"a", 1},
			[]any{"a", 2},
		})
		if err != nil {
			t.Fatal(err)
		}
		if v := tbl.MustLookup("a"); v != int64(1) {
			t.Errorf("MustLookup(a) = %#v", v)
		}
	})

	t.Run("single column", func(t *testing.T) {
		if _, err := newCountries(t).Lookup("Latvia"); !errors.Is(err, ErrArgument) {
			t.Errorf("error = %v, want ErrArgument", err)
		}
	})

	t.Run("MustLookup panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustLookup did not panic")
			}
		}()
		currencies.MustLookup("XXX")
	})
}

func TestRecordJSON(t *testing.T) {
	r := newCurrencies(t).Get(1)
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"description":"Euro","id":1,"short":"EUR"}`; string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
	if got := fmt.Sprintf("%#v", r); got != `currency{id: 1, short: "EUR", description: "Euro"}` {
		t.Errorf("GoString = %s", got)
	}
}
