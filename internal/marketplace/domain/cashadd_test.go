package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestComputeCashAdd_EqualValues(t *testing.T) {
	got := ComputeCashAdd(fptr(400), fptr(400))
	assert.NotNil(t, got)
	assert.Equal(t, int64(0), got.Amount)
	assert.Equal(t, CashAddEven, got.Direction)
}

func TestComputeCashAdd_ViewerAdds(t *testing.T) {
	got := ComputeCashAdd(fptr(650), fptr(300))
	assert.NotNil(t, got)
	assert.Equal(t, int64(350), got.Amount)
	assert.Equal(t, CashAddYou, got.Direction)
}

func TestComputeCashAdd_OwnerAdds(t *testing.T) {
	got := ComputeCashAdd(fptr(300), fptr(650))
	assert.NotNil(t, got)
	assert.Equal(t, int64(350), got.Amount)
	assert.Equal(t, CashAddThey, got.Direction)
}

func TestComputeCashAdd_MissingValues(t *testing.T) {
	assert.Nil(t, ComputeCashAdd(fptr(400), nil))
	assert.Nil(t, ComputeCashAdd(nil, fptr(400)))
	assert.Nil(t, ComputeCashAdd(nil, nil))
}

func TestComputeCashAdd_RoundsHalfAwayFromZero(t *testing.T) {
	got := ComputeCashAdd(fptr(100.5), fptr(100))
	assert.Equal(t, int64(1), got.Amount)
	assert.Equal(t, CashAddYou, got.Direction)

	got = ComputeCashAdd(fptr(100), fptr(100.5))
	assert.Equal(t, int64(1), got.Amount)
	assert.Equal(t, CashAddThey, got.Direction)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"laptop", "macbook", "gaming laptop"}, SplitTags("laptop, macbook ,gaming laptop,"))
	assert.Empty(t, SplitTags(""))
}
