package types

import "math"

// HealthScore computes the weighted 0-100 dashboard score from a set of
// categories and the logs under consideration (typically a recent window).
// Each category contributes its average rating normalized to [0,1], scaled
// by its weight; the total is divided by the weight sum. Categories with
// no logs contribute zero, which drags the score down rather than being
// skipped. No categories yields zero.
func HealthScore(categories []Category, logs []Log) int {
	if len(categories) == 0 {
		return 0
	}

	totalWeight := 0.0
	for _, c := range categories {
		totalWeight += c.Weight
	}
	if totalWeight == 0 {
		totalWeight = 1
	}

	byCategory := make(map[int64][]int)
	for _, l := range logs {
		byCategory[l.CategoryID] = append(byCategory[l.CategoryID], l.Rating)
	}

	sum := 0.0
	for _, c := range categories {
		ratings := byCategory[c.ID]
		avg := 0.0
		if len(ratings) > 0 {
			total := 0
			for _, r := range ratings {
				total += r
			}
			avg = float64(total) / float64(len(ratings))
		}
		sum += (avg / 10) * c.Weight
	}

	return int(math.Round(sum / totalWeight * 100))
}
