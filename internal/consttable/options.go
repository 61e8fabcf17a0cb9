// Builds label/value pairs for selection widgets.

package consttable

// DefaultNullText is the label of the synthetic "no selection" entry.
const DefaultNullText = "-"

// Option is one entry of a selection list.
type Option struct {
	Label any `json:"label"`
	Value any `json:"value"`
}

// SelectOption configures OptionsForSelect.
type SelectOption func(*selectConfig)

type selectConfig struct {
	display     string
	displayFunc func(Attributes) any
	value       string
	includeNull bool
	nullText    string
	nullValue   any
}

// Display uses a column as the option label. Defaults to the first column.
func Display(column string) SelectOption {
	return func(c *selectConfig) {
		c.display = column
		c.displayFunc = nil
	}
}

// DisplayFunc computes the option label from the record.
func DisplayFunc(fn func(Attributes) any) SelectOption {
	return func(c *selectConfig) {
		c.displayFunc = fn
		c.display = ""
	}
}

// ValueColumn uses a column as the option value. "id" (the default) uses the
// record id.
func ValueColumn(column string) SelectOption {
	return func(c *selectConfig) {
		c.value = column
	}
}

// IncludeNull prepends a "no selection" entry.
func IncludeNull() SelectOption {
	return func(c *selectConfig) {
		c.includeNull = true
	}
}

// NullText sets the label of the "no selection" entry.
func NullText(text string) SelectOption {
	return func(c *selectConfig) {
		c.nullText = text
	}
}

// NullValue sets the value of the "no selection" entry. NullValue(nil) makes
// the value nil instead of the default 0.
func NullValue(v any) SelectOption {
	return func(c *selectConfig) {
		c.nullValue = v
	}
}

// OptionsForSelect returns one option per row in dataset order, preceded by
// the "no selection" entry when IncludeNull is given.
func (t *Table[K]) OptionsForSelect(opts ...SelectOption) ([]Option, error) {
	cfg := selectConfig{
		value:     "id",
		nullText:  DefaultNullText,
		nullValue: 0,
	}
	if len(t.schema.columns) != 0 {
		cfg.display = t.schema.columns[0]
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	displayCol := -1
	if cfg.displayFunc == nil {
		i, ok := t.schema.column(cfg.display)
		if !ok {
			return nil, unknownColumnError(t.name, cfg.display)
		}
		displayCol = i
	}
	valueCol := -1
	if cfg.value != "id" {
		i, ok := t.schema.column(cfg.value)
		if !ok {
			return nil, unknownColumnError(t.name, cfg.value)
		}
		valueCol = i
	}

	out := make([]Option, 0, len(t.rows)+1)
	if cfg.includeNull {
		out = append(out, Option{Label: cfg.nullText, Value: cfg.nullValue})
	}
	for r := range t.All() {
		var o Option
		if displayCol >= 0 {
			o.Label = r.row[displayCol]
		} else {
			o.Label = cfg.displayFunc(r)
		}
		if valueCol >= 0 {
			o.Value = r.row[valueCol]
		} else {
			o.Value = r.id
		}
		out = append(out, o)
	}
	return out, nil
}
