package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpreads(t *testing.T) {
	tests := []struct {
		name      string
		pageCount int
		want      []Spread
	}{
		{
			name:      "no pages still has a cover",
			pageCount: 0,
			want:      []Spread{{Index: 0, Cover: true, Left: NoPage, Right: NoPage}},
		},
		{
			name:      "single page sits beside the cover",
			pageCount: 1,
			want:      []Spread{{Index: 0, Cover: true, Left: NoPage, Right: 0}},
		},
		{
			name:      "last spread half empty",
			pageCount: 4,
			want: []Spread{
				{Index: 0, Cover: true, Left: NoPage, Right: 0},
				{Index: 1, Left: 1, Right: 2},
				{Index: 2, Left: 3, Right: NoPage},
			},
		},
		{
			name:      "last spread full",
			pageCount: 3,
			want: []Spread{
				{Index: 0, Cover: true, Left: NoPage, Right: 0},
				{Index: 1, Left: 1, Right: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Spreads(tt.pageCount))
		})
	}
}

func TestSpread_Pages(t *testing.T) {
	spreads := Spreads(4)
	require.Len(t, spreads, 3)

	assert.Equal(t, []int{0}, spreads[0].Pages())
	assert.Equal(t, []int{1, 2}, spreads[1].Pages())
	assert.Equal(t, []int{3}, spreads[2].Pages())
}

func TestSpreadOf(t *testing.T) {
	spreads := Spreads(9)
	for _, s := range spreads {
		for _, p := range s.Pages() {
			if got := SpreadOf(p); got != s.Index {
				t.Errorf("SpreadOf(%d) = %d, want %d", p, got, s.Index)
			}
		}
	}
}
