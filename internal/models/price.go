package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Price is a raw decimal odds value as received from a bookmaker feed.
// Feeds send prices either as JSON numbers or as strings, so the raw text is
// kept and parsed once at the boundary.
type Price string

// NewPrice formats a float multiplier as a Price.
func NewPrice(f float64) Price {
	return Price(strconv.FormatFloat(f, 'f', -1, 64))
}

// UnmarshalJSON accepts numbers, strings and null.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	*p = Price(data)
	return nil
}

// MarshalJSON writes parseable prices as numbers and anything else as a string.
func (p Price) MarshalJSON() ([]byte, error) {
	if d, err := p.Decimal(); err == nil {
		return []byte(d.String()), nil
	}
	return json.Marshal(string(p))
}

// UnmarshalYAML accepts any scalar node.
func (p *Price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("price must be a scalar, got yaml kind %d", node.Kind)
	}
	*p = Price(node.Value)
	return nil
}

// Decimal parses the price.
func (p Price) Decimal() (decimal.Decimal, error) {
	raw := strings.TrimSpace(string(p))
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: empty price", ErrMalformedOdds)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrMalformedOdds, raw, err)
	}
	return d, nil
}

// Multiplier returns the usable decimal multiplier. Values at or below 1.0
// pay nothing back and are rejected, as are values a float64 cannot hold.
func (p Price) Multiplier() (float64, error) {
	d, err := p.Decimal()
	if err != nil {
		return 0, err
	}
	if d.LessThanOrEqual(decimal.NewFromInt(1)) {
		return 0, fmt.Errorf("%w: multiplier %s must exceed 1.0", ErrMalformedOdds, d.String())
	}
	m := d.InexactFloat64()
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return 0, fmt.Errorf("%w: multiplier %s out of range", ErrMalformedOdds, d.String())
	}
	return m, nil
}
