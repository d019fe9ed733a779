package models

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoneyComparisons(t *testing.T) {
	t.Run("Threshold Is Inclusive", func(t *testing.T) {
		current := MustMoney("10")
		increment := MustMoney("1")
		minimum := current.Add(increment)

		assert.True(t, MustMoney("11").GreaterThanOrEqual(minimum))
		assert.True(t, MustMoney("11.01").GreaterThanOrEqual(minimum))
		assert.False(t, MustMoney("10.99").GreaterThanOrEqual(minimum))
	})

	t.Run("No Float Drift", func(t *testing.T) {
		// 0.1 + 0.2 must equal exactly 0.3.
		sum := MustMoney("0.1").Add(MustMoney("0.2"))
		assert.Equal(t, 0, sum.Cmp(MustMoney("0.3")))
	})
}

func TestMoneyMulRate(t *testing.T) {
	fee := MustMoney("100").MulRate(decimal.RequireFromString("0.05"))
	assert.Equal(t, "5", fee.String())

	// Rounds half-up to cents.
	vat := MustMoney("10.33").MulRate(decimal.RequireFromString("0.2"))
	assert.Equal(t, "2.07", vat.String())
}

func TestMoneyDynamoDBRoundTrip(t *testing.T) {
	av, err := MustMoney("12.50").MarshalDynamoDBAttributeValue()
	assert.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberN{Value: "12.5"}, av)

	var m Money
	assert.NoError(t, m.UnmarshalDynamoDBAttributeValue(av))
	assert.Equal(t, 0, m.Cmp(MustMoney("12.50")))

	// Legacy rows stored amounts as strings.
	assert.NoError(t, m.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberS{Value: "7.25"}))
	assert.Equal(t, 0, m.Cmp(MustMoney("7.25")))

	assert.Error(t, m.UnmarshalDynamoDBAttributeValue(&types.AttributeValueMemberBOOL{Value: true}))
}

func TestNewMoneyRejectsGarbage(t *testing.T) {
	_, err := NewMoney("not-a-price")
	assert.Error(t, err)
}
