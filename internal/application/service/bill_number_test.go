package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillNumberFormat(t *testing.T) {
	gen := NewBillNumberGenerator(42)
	ts := time.Date(2026, time.August, 30, 11, 30, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		number := gen.Next(ts)
		require.Len(t, number, 13)
		assert.True(t, strings.HasPrefix(number, "INV260830"), "got %q", number)

		suffix, err := strconv.Atoi(number[9:])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1000)
		assert.LessOrEqual(t, suffix, 9999)
	}
}

func TestBillNumberEncodesDate(t *testing.T) {
	gen := NewBillNumberGenerator(1)

	newYear := gen.Next(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(newYear, "INV270101"), "got %q", newYear)
}

func TestBillNumberDeterministicForSeed(t *testing.T) {
	ts := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	a := NewBillNumberGenerator(7)
	b := NewBillNumberGenerator(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Next(ts), b.Next(ts))
	}
}
