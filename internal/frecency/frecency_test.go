package frecency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanks(t *testing.T) {
	tests := []struct {
		name        string
		frequencies map[string]int
		want        map[string]int
	}{
		{
			name:        "ties share a rank and the next group is dense",
			frequencies: map[string]int{"A": 3, "B": 3, "C": 1},
			want:        map[string]int{"A": 1, "B": 1, "C": 2},
		},
		{
			name:        "distinct frequencies rank in order",
			frequencies: map[string]int{"A": 5, "B": 2, "C": 9},
			want:        map[string]int{"C": 1, "A": 2, "B": 3},
		},
		{
			name:        "single account",
			frequencies: map[string]int{"A": 7},
			want:        map[string]int{"A": 1},
		},
		{
			name:        "all tied",
			frequencies: map[string]int{"A": 2, "B": 2, "C": 2},
			want:        map[string]int{"A": 1, "B": 1, "C": 1},
		},
		{
			name:        "no history yields no ranks",
			frequencies: map[string]int{},
			want:        map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ranks(tt.frequencies))
		})
	}
}
