// Parses table definition YAML files.

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Version is the only supported definition file version.
const Version = 1

var tableNameRe = regexp.MustCompile(`^[_a-zA-Z][_a-zA-Z0-9]*$`)

// File is the structure of a definition file.
type File struct {
	Version int        `yaml:"version" json:"version" jsonschema:"enum=1,description=Definition format version"`
	Tables  []TableDef `yaml:"tables" json:"tables" jsonschema:"description=Tables declared by this file"`
}

// TableDef declares one table.
type TableDef struct {
	Name        string   `yaml:"name" json:"name" jsonschema:"pattern=^[_a-zA-Z][_a-zA-Z0-9]*$,description=Table name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty" jsonschema:"description=Free-form description"`
	Columns     []string `yaml:"columns,omitempty" json:"columns,omitempty" jsonschema:"description=Column names; defaults to a single name column"`
	// Each row is a list of scalars or a bare scalar for one-column tables.
	Data []any `yaml:"data" json:"data" jsonschema:"description=Rows in declaration order"`
}

// Parse reads and parses a definition file.
// The path is provided by the CLI user, so file inclusion is expected.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-specified definition path
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions: %w", err)
	}
	f, err := ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseBytes parses a definition file from bytes.
func ParseBytes(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definitions: %w", err)
	}
	return &f, nil
}

// Validate checks the file structure. Column and row checks are left to the
// table builder.
func (f *File) Validate() error {
	if f.Version != Version {
		return fmt.Errorf("unsupported definitions version: %d", f.Version)
	}
	seen := make(map[string]bool, len(f.Tables))
	for i := range f.Tables {
		td := &f.Tables[i]
		if td.Name == "" {
			return fmt.Errorf("table %d: name is required", i)
		}
		if !tableNameRe.MatchString(td.Name) {
			return fmt.Errorf("table %d: invalid name %q", i, td.Name)
		}
		if seen[td.Name] {
			return fmt.Errorf("table %q: declared twice", td.Name)
		}
		seen[td.Name] = true
		if td.Columns != nil && len(td.Columns) == 0 {
			return fmt.Errorf("table %q: columns must not be empty", td.Name)
		}
	}
	return nil
}

// JSONSchema returns the JSON Schema of the definition format.
func JSONSchema() ([]byte, error) {
	r := jsonschema.Reflector{Anonymous: true, DoNotReference: true}
	s := r.Reflect(&File{})
	s.Title = "constrec table definitions"
	return json.MarshalIndent(s, "", "  ")
}
