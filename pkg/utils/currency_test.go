package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{1, "$0.01"},
		{99, "$0.99"},
		{100, "$1.00"},
		{666, "$6.66"},
		{15795, "$157.95"},
		{99999, "$999.99"},
		{100000, "$1,000.00"},
		{100626, "$1,006.26"},
		{125632, "$1,256.32"},
		{123456789, "$1,234,567.89"},
		{-100, "-$1.00"},
		{-123456, "-$1,234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.cents))
		})
	}
}

func TestCentsToDollars(t *testing.T) {
	assert.Equal(t, 157.95, CentsToDollars(15795))
	assert.Equal(t, 0.0, CentsToDollars(0))
	assert.Equal(t, 5.0, CentsToDollars(500))
	assert.Equal(t, 0.01, CentsToDollars(1))
}
