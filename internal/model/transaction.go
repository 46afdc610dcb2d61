// Package model defines the core domain models used throughout the application.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spendsense/spendsense/internal/common"
)

// Amount is a signed transaction amount. Callers send amounts as JSON
// numbers or numeric strings; anything else present in the payload is
// rejected as invalid input. A missing amount decodes to 0.
type Amount float64

// UnmarshalJSON accepts numbers, numeric strings, and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = 0
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: amount is not coercible to a number", common.ErrInvalidInput)
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*a = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: amount %q is not coercible to a number", common.ErrInvalidInput, s)
		}
		*a = Amount(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%w: amount is not coercible to a number", common.ErrInvalidInput)
	}
	*a = Amount(f)
	return nil
}

// Transaction represents a single financial transaction supplied by a caller.
// All fields are optional on the wire; missing fields take their zero values.
type Transaction struct {
	Name     string `json:"name"`
	Amount   Amount `json:"amount"`
	Date     string `json:"date,omitempty"`
	Category string `json:"category,omitempty"`
}
