package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReconcileItems(t *testing.T) {
	testCases := []struct {
		name         string
		current      []uint
		requested    []uint
		wantToAdd    []uint
		wantToRemove []uint
	}{
		{
			name:         "identical sets is a no-op",
			current:      []uint{1, 2, 3},
			requested:    []uint{1, 2, 3},
			wantToAdd:    []uint{},
			wantToRemove: []uint{},
		},
		{
			name:         "full replacement",
			current:      []uint{1, 2, 3},
			requested:    []uint{4, 5, 6},
			wantToAdd:    []uint{4, 5, 6},
			wantToRemove: []uint{1, 2, 3},
		},
		{
			name:         "partial overlap keeps intersection untouched",
			current:      []uint{1, 2},
			requested:    []uint{2, 3},
			wantToAdd:    []uint{3},
			wantToRemove: []uint{1},
		},
		{
			name:         "empty current adds everything",
			current:      []uint{},
			requested:    []uint{7, 8},
			wantToAdd:    []uint{7, 8},
			wantToRemove: []uint{},
		},
		{
			name:         "order of input does not matter",
			current:      []uint{3, 1, 2},
			requested:    []uint{2, 3, 1},
			wantToAdd:    []uint{},
			wantToRemove: []uint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toAdd, toRemove := ReconcileItems(tc.current, tc.requested)
			require.ElementsMatch(t, tc.wantToAdd, toAdd)
			require.ElementsMatch(t, tc.wantToRemove, toRemove)
		})
	}
}

func TestReconcileItemsIdempotent(t *testing.T) {
	current := []uint{10, 20, 30}
	toAdd, toRemove := ReconcileItems(current, current)
	require.Empty(t, toAdd)
	require.Empty(t, toRemove)
}
