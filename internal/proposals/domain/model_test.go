package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFee(t *testing.T) {
	cases := []struct {
		in    string
		cents int64
	}{
		{"0", 0},
		{"12", 1200},
		{"12.5", 1250},
		{"12.50", 1250},
		{"12.05", 1205},
		{".75", 75},
		{" 3.10 ", 310},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			fee, err := ParseFee(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.cents, fee.Cents())
		})
	}
}

func TestParseFee_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "1.", "1.234", "1,50", "1e3", "1.+5", "+1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseFee(in)
			assert.ErrorIs(t, err, ErrInvalidFee)
		})
	}

	_, err := ParseFee("-1.00")
	assert.ErrorIs(t, err, ErrNegativeFee)
}

func TestFeeFromFloat(t *testing.T) {
	fee, err := FeeFromFloat(19.99)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), fee.Cents())

	fee, err = FeeFromFloat(0.1 + 0.2)
	require.NoError(t, err)
	assert.Equal(t, int64(30), fee.Cents())

	_, err = FeeFromFloat(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidFee)

	_, err = FeeFromFloat(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidFee)

	_, err = FeeFromFloat(-0.5)
	assert.True(t, errors.Is(err, ErrNegativeFee))
}

func TestFee_Rendering(t *testing.T) {
	assert.Equal(t, "12.50", NewFee(1250).String())
	assert.Equal(t, "0.05", NewFee(5).String())
	assert.Equal(t, "-1.25", NewFee(-125).String())
	assert.InDelta(t, 12.5, NewFee(1250).Float64(), 1e-9)
	assert.True(t, NewFee(0).IsZero())
	assert.False(t, NewFee(1).IsZero())
}
