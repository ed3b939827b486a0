package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportName(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{symbol: "greet", want: "Greet"},
		{symbol: "Greet", want: "Greet"},
		{symbol: "add_numbers", want: "Add_numbers"},
		{symbol: "éclair", want: "Éclair"},
		{symbol: "_private", want: "_private"},
		{symbol: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, exportName(tt.symbol))
		})
	}
}
