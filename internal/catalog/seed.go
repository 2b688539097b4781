// Package catalog loads the sample catalog that seeds the shop at startup.
// The default seed is embedded in the binary; an external JSON file, plain
// or gzip-compressed, can be supplied instead.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
)

//go:embed seed.json
var embeddedSeed []byte

// SeedProduct is one catalog entry in a seed file.
type SeedProduct struct {
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// SeedBundle references its member products by name; names are resolved
// against the seeded inventory during app wiring.
type SeedBundle struct {
	Name               string          `json:"name"`
	Products           []string        `json:"products"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// Seed is the full startup catalog.
type Seed struct {
	Products []SeedProduct `json:"products"`
	Bundles  []SeedBundle  `json:"bundles"`
}

// Load reads a seed catalog. An empty path selects the embedded sample
// catalog. Files ending in .gz are decompressed with pgzip.
func Load(path string) (*Seed, error) {
	var r io.Reader
	if path == "" {
		r = bytes.NewReader(embeddedSeed)
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open seed file")
		}
		defer f.Close()
		r = f

		if strings.HasSuffix(path, ".gz") {
			gz, err := pgzip.NewReader(f)
			if err != nil {
				return nil, errors.Wrap(err, "open gzip seed")
			}
			defer gz.Close()
			r = gz
		}
	}

	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return nil, errors.Wrap(err, "decode seed")
	}

	if err := validate(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func validate(seed *Seed) error {
	names := make(map[string]struct{}, len(seed.Products))
	for _, p := range seed.Products {
		if p.Name == "" {
			return errors.New("seed product with empty name")
		}
		if p.Price.IsNegative() {
			return errors.Errorf("seed product %q has negative price", p.Name)
		}
		if p.Stock < 0 {
			return errors.Errorf("seed product %q has negative stock", p.Name)
		}
		names[p.Name] = struct{}{}
	}
	for _, b := range seed.Bundles {
		for _, member := range b.Products {
			if _, ok := names[member]; !ok {
				return errors.Errorf("bundle %q references unknown product %q", b.Name, member)
			}
		}
	}
	return nil
}
