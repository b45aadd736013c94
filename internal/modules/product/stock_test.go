package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckStock(t *testing.T) {
	p := &Product{Stock: 5}

	tests := []struct {
		name      string
		qty       int
		ok        bool
		available int
	}{
		{"over stock", 6, false, 5},
		{"exactly stock", 5, true, 0},
		{"under stock", 1, true, 0},
		{"zero stock item", 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check := CheckStock(p, tt.qty)
			require.Equal(t, tt.ok, check.OK)
			require.Equal(t, tt.available, check.Available)
		})
	}
}

func TestCheckStock_EmptyShelf(t *testing.T) {
	p := &Product{Stock: 0}
	check := CheckStock(p, 1)
	require.False(t, check.OK)
	require.Zero(t, check.Available)
}
