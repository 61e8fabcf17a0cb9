// Package samples provides the embedded sample definitions.
package samples

import (
	_ "embed"

	"github.com/maruel/constrec/internal/catalog"
	"github.com/maruel/constrec/internal/consttable"
)

// Definitions is the embedded definition file.
//
//go:embed samples.yaml
var Definitions []byte

// Load builds a catalog from the embedded definitions.
func Load(logger consttable.Logger) (*catalog.Catalog, error) {
	f, err := catalog.ParseBytes(Definitions)
	if err != nil {
		return nil, err
	}
	return catalog.Build(f, logger)
}
