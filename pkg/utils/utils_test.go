package utils

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 85.714285, want: 85.71},
		{in: 14.285714, want: 14.29},
		{in: -0.001, want: 0},
		{in: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
	}

	assert.True(t, math.IsInf(RoundWithTwoDecimalPlace(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
	assert.False(t, math.Signbit(RoundWithTwoDecimalPlace(-0.001)))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, runIDLength)
	assert.Regexp(t, "^[0-9a-z]+$", first)
	assert.NotEqual(t, first, second)
}

func TestWriteIndentedJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteIndentedJSON(&buf, map[string]int{"total": 3}))
	assert.Equal(t, "{\n\t\"total\": 3\n}\n", buf.String())
}
