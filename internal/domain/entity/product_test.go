package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRCP(t *testing.T) {
	cases := []struct {
		mrp  int64
		want int64
	}{
		{120000, 84000}, // 1200.00 -> 840.00
		{180000, 126000},
		{60000, 42000},
		{250000, 175000},
		{99, 69},  // 0.99 -> 0.693 rounds to 0.69
		{15, 11},  // 0.15 -> 0.105 rounds up
		{1, 1},    // never below a cent for a priced item
		{0, 0},
	}

	for _, tc := range cases {
		got := DeriveRCP(tc.mrp)
		assert.Equal(t, tc.want, got, "DeriveRCP(%d)", tc.mrp)
		assert.LessOrEqual(t, got, tc.mrp)
	}
}

func TestSetMRPFromDecimal(t *testing.T) {
	var p Product
	p.SetMRPFromDecimal(1200)

	assert.Equal(t, int64(120000), p.MRP)
	assert.Equal(t, int64(84000), p.RCP)
}

func TestProductJSONUsesDecimals(t *testing.T) {
	p := Product{
		ID:       uuid.New(),
		Name:     "Cotton Shirt",
		Size:     "M",
		ScanCode: "abc",
	}
	p.SetMRPFromDecimal(1200)

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 1200.0, out["mrp"])
	assert.Equal(t, 840.0, out["rcp"])
}
