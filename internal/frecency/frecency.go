// Package frecency turns usage counts into display ranks. The ranking is a
// dense competition rank over usage frequency: the most-used accounts share
// rank 1, and each less-used frequency group takes the next rank.
package frecency

import "sort"

// Ranks computes a rank per account from usage frequencies. Equal
// frequencies tie at the same rank and the next distinct frequency group
// takes rank+1, so {A:3, B:3, C:1} yields {A:1, B:1, C:2}. Accounts with no
// history are absent from both input and output.
func Ranks(frequencies map[string]int) map[string]int {
	if len(frequencies) == 0 {
		return map[string]int{}
	}

	distinct := make([]int, 0, len(frequencies))
	seen := make(map[int]struct{}, len(frequencies))
	for _, freq := range frequencies {
		if _, ok := seen[freq]; !ok {
			seen[freq] = struct{}{}
			distinct = append(distinct, freq)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(distinct)))

	rankOf := make(map[int]int, len(distinct))
	for i, freq := range distinct {
		rankOf[freq] = i + 1
	}

	ranks := make(map[string]int, len(frequencies))
	for account, freq := range frequencies {
		ranks[account] = rankOf[freq]
	}
	return ranks
}
