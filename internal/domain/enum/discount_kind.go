package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountKind represents how a discount reduces the sale subtotal
type DiscountKind int

const (
	DiscountKindUnknown     DiscountKind = 0
	DiscountKindPercentage  DiscountKind = 1
	DiscountKindFixedAmount DiscountKind = 2
)

func (k DiscountKind) String() string {
	names := [...]string{"Unknown", "Percentage", "FixedAmount"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Unknown"
	}
	return names[k]
}

// IsKnown reports whether the kind is one the sale knows how to apply
func (k DiscountKind) IsKnown() bool {
	return k == DiscountKindPercentage || k == DiscountKindFixedAmount
}

func (k DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DiscountKind(i)
		return nil
	}
	*k = ParseDiscountKind(str)
	return nil
}

// ParseDiscountKind maps a name to a kind. "Amount" is accepted as an alias
// for FixedAmount; anything unrecognised is Unknown.
func ParseDiscountKind(s string) DiscountKind {
	switch s {
	case "Percentage", "percentage":
		return DiscountKindPercentage
	case "FixedAmount", "Amount", "fixed", "amount":
		return DiscountKindFixedAmount
	default:
		return DiscountKindUnknown
	}
}

func (k DiscountKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DiscountKind) Scan(value interface{}) error {
	if value == nil {
		*k = DiscountKindUnknown
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DiscountKind(v)
	case int:
		*k = DiscountKind(v)
	default:
		return fmt.Errorf("enum: cannot scan %T into DiscountKind", value)
	}
	return nil
}
