package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a float64 that also accepts a numeric JSON string. Admin forms
// historically posted prices as strings ("590"), so both shapes are valid on
// the wire.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", str)
		}
		*p = Price(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid price %s", s)
	}
	*p = Price(f)
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}
