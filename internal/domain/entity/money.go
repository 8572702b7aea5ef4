package entity

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is an immutable amount in major currency units.
// Every arithmetic operation returns a new value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a float amount, e.g. 15.00
func NewMoney(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromDecimal wraps an existing decimal value
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// ParseMoney parses a decimal string such as "50.00"
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustParseMoney is like ParseMoney but panics on malformed input
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns an amount of zero
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Plus(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Minus(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times scales the amount by an integer quantity
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns amount × percentage / 100
func (m Money) Percent(percentage int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(percentage))).Div(hundred)}
}

// Equal compares amounts by numeric value, so 7.5 equals 7.50
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Decimal exposes the underlying decimal value
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimals, e.g. "15.50"
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return err
		}
		*m = NewMoney(f)
		return nil
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
