package widget

// LayoutLinearly splits available cells along one axis between the
// given demands. separatorWidth cells are reserved between every
// adjacent pair. weights steer how surplus beyond the minimums is
// shared; a missing weight counts as 1 and a zero weight pins the
// child to its minimum. The result always has len(demands) entries.
//
// When even the minimums do not fit, every child is cut
// proportionally to its minimum instead of starving the back of the
// list. When they do fit, the leftover flows to weighted children up
// to their maximums. Whole-cell rounding remainders go to the
// earliest eligible children, so equal inputs still produce a
// deterministic split.
func LayoutLinearly(available, separatorWidth int, demands []Demand, weights []float64) []int {
	sizes := make([]int, len(demands))
	if len(demands) == 0 {
		return sizes
	}

	diff := available - separatorWidth*(len(demands)-1)
	if diff <= 0 {
		return sizes
	}

	minSum := 0
	for _, d := range demands {
		minSum += d.Min
	}

	if minSum >= diff {
		layoutShortfall(sizes, demands, diff, minSum)
	} else {
		layoutSurplus(sizes, demands, weights, diff, minSum)
	}
	return sizes
}

// layoutShortfall cuts every child below its minimum, keeping the
// cuts proportional to the minimums. diff ≥ 1 and minSum ≥ diff.
func layoutShortfall(sizes []int, demands []Demand, diff, minSum int) {
	assigned := 0
	for i, d := range demands {
		sizes[i] = int(int64(d.Min) * int64(diff) / int64(minSum))
		assigned += sizes[i]
	}
	for rem := diff - assigned; rem > 0; {
		progress := false
		for i, d := range demands {
			if rem == 0 {
				break
			}
			if sizes[i] < d.Min {
				sizes[i]++
				rem--
				progress = true
			}
		}
		if !progress {
			break
		}
	}
}

// layoutSurplus starts every child at its minimum and water-fills the
// rest proportionally to weight, capping each child at its maximum.
func layoutSurplus(sizes []int, demands []Demand, weights []float64, diff, minSum int) {
	weightAt := func(i int) float64 {
		if i < len(weights) {
			return weights[i]
		}
		return 1
	}
	// A child can never use more than the whole budget, which also
	// keeps Unbounded out of the arithmetic below.
	maxAt := func(i int) int {
		return min(demands[i].Max, diff)
	}

	eligible := make([]bool, len(demands))
	for i, d := range demands {
		sizes[i] = d.Min
		eligible[i] = weightAt(i) > 0 && sizes[i] < maxAt(i)
	}

	surplus := diff - minSum
	for surplus > 0 {
		totalWeight := 0.0
		for i, on := range eligible {
			if on {
				totalWeight += weightAt(i)
			}
		}
		if totalWeight == 0 {
			// Everyone is capped or pinned. The leftover stays
			// unassigned rather than overflowing a maximum.
			return
		}

		moved := 0
		for i, on := range eligible {
			if !on {
				continue
			}
			share := int(float64(surplus) * weightAt(i) / totalWeight)
			if room := maxAt(i) - sizes[i]; share > room {
				share = room
			}
			sizes[i] += share
			moved += share
			if sizes[i] >= maxAt(i) {
				eligible[i] = false
			}
		}
		if moved == 0 {
			break
		}
		surplus -= moved
	}

	// Whole-cell remainder too small for a proportional round.
	for surplus > 0 {
		progress := false
		for i, on := range eligible {
			if surplus == 0 {
				break
			}
			if !on {
				continue
			}
			sizes[i]++
			surplus--
			progress = true
			if sizes[i] >= maxAt(i) {
				eligible[i] = false
			}
		}
		if !progress {
			break
		}
	}
}
