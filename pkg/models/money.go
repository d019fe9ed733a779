package models

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// Money is an exact decimal currency amount. All price comparisons in the
// auction engine go through this type so that no binary floating-point
// rounding can creep into bid validation.
type Money struct {
	decimal.Decimal
}

// NewMoney parses a decimal string (e.g. "10.50") into a Money value.
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{d}, nil
}

// MustMoney is NewMoney that panics on invalid input. For constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// MulRate multiplies by a rate (e.g. a fee percentage) and rounds half-up to
// cents.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate).Round(2)}
}

// Cmp compares two amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.Decimal.Cmp(other.Decimal)
}

// GreaterThanOrEqual reports whether m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.Cmp(other) >= 0
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.Cmp(other) < 0
}

// MarshalDynamoDBAttributeValue stores the amount as a DynamoDB number so
// condition expressions can compare prices natively.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.Decimal.String()}, nil
}

// UnmarshalDynamoDBAttributeValue accepts both number and string attributes.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	var raw string
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		raw = v.Value
	case *types.AttributeValueMemberS:
		raw = v.Value
	default:
		return fmt.Errorf("cannot unmarshal %T into Money", av)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid money attribute %q: %w", raw, err)
	}
	m.Decimal = d
	return nil
}
