package props

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"42", 42},
		{" 4.5 ", 4.5},
		{"-0.25", -0.25},
		{"1e3", 1000},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumber(tt.in), "ParseNumber(%q)", tt.in)
	}
	assert.True(t, math.IsNaN(ParseNumber("abc")))
	assert.True(t, math.IsNaN(ParseNumber("12px")))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-3.5, "-3.5"},
		{0.1, "0.1"},
		{1e6, "1000000"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{-1.5e-7, "-1.5e-7"},
		{2.5e100, "2.5e+100"},
		{1e-300, "1e-300"},
		{0.000001, "0.000001"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in), "FormatNumber(%v)", tt.in)
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "3", Stringify(3))
	assert.Equal(t, "2.5", Stringify(float32(2.5)))
	assert.Equal(t, "7", Stringify(uint16(7)))
	assert.Equal(t, "x", Stringify("x"))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "null", Stringify(nil))
	assert.Equal(t, "1s", Stringify(time.Second))
	assert.Equal(t, "[1 2]", Stringify([]int{1, 2}))
	assert.True(t, IsNumber(int64(1)))
	assert.False(t, IsNumber("1"))
}
