package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscountKindJSON(t *testing.T) {
	data, err := json.Marshal(DiscountKindPercentage)
	require.NoError(t, err)
	assert.Equal(t, `"Percentage"`, string(data))

	var k DiscountKind
	require.NoError(t, json.Unmarshal([]byte(`"Amount"`), &k))
	assert.Equal(t, DiscountKindFixedAmount, k)

	require.NoError(t, json.Unmarshal([]byte(`1`), &k))
	assert.Equal(t, DiscountKindPercentage, k)

	require.NoError(t, json.Unmarshal([]byte(`"Voucher"`), &k))
	assert.Equal(t, DiscountKindUnknown, k)
	assert.False(t, k.IsKnown())
}

func TestDiscountKindScan(t *testing.T) {
	var k DiscountKind
	require.NoError(t, k.Scan(int64(2)))
	assert.Equal(t, DiscountKindFixedAmount, k)

	require.NoError(t, k.Scan(nil))
	assert.Equal(t, DiscountKindUnknown, k)

	k = DiscountKindPercentage
	for _, v := range []interface{}{"Percentage", []byte("1"), 1.0} {
		err := k.Scan(v)
		assert.Error(t, err, "%T", v)
		assert.Equal(t, DiscountKindPercentage, k, "failed scan must not change the value")
	}

	v, err := DiscountKindPercentage.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestSaleStateString(t *testing.T) {
	assert.Equal(t, "SaleOpen", SaleStateOpen.String())
	assert.Equal(t, "SalePaid", SaleStatePaid.String())
	assert.Equal(t, "NoSale", SaleState(42).String())
}
