package evaluation

// PrecisionAtK is the fraction of the first k retrieved items that are
// relevant. retrieved holds catalog positions in rank order, relevant the
// set of relevant positions.
func PrecisionAtK(retrieved []int, relevant map[int]struct{}, k int) float64 {
	if k <= 0 {
		return 0
	}
	if k > len(retrieved) {
		k = len(retrieved)
	}
	if k == 0 {
		return 0
	}
	hits := 0
	for _, pos := range retrieved[:k] {
		if _, ok := relevant[pos]; ok {
			hits++
		}
	}
	return float64(hits) / float64(k)
}

// RecallAtK is the fraction of all relevant items found in the first k
// retrieved items. Returns 0 when there are no relevant items.
func RecallAtK(retrieved []int, relevant map[int]struct{}, k int) float64 {
	if len(relevant) == 0 || k <= 0 {
		return 0
	}
	if k > len(retrieved) {
		k = len(retrieved)
	}
	hits := 0
	for _, pos := range retrieved[:k] {
		if _, ok := relevant[pos]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(relevant))
}

// AveragePrecision averages precision at each rank where a relevant item
// appears, over the number of relevant items. Returns 0 when there are no
// relevant items.
func AveragePrecision(retrieved []int, relevant map[int]struct{}) float64 {
	if len(relevant) == 0 {
		return 0
	}
	hits := 0
	sum := 0.0
	for i, pos := range retrieved {
		if _, ok := relevant[pos]; ok {
			hits++
			sum += float64(hits) / float64(i+1)
		}
	}
	return sum / float64(len(relevant))
}

// MeanAveragePrecision averages AveragePrecision over a set of queries.
// Returns 0 for an empty set.
func MeanAveragePrecision(perQuery []float64) float64 {
	if len(perQuery) == 0 {
		return 0
	}
	sum := 0.0
	for _, ap := range perQuery {
		sum += ap
	}
	return sum / float64(len(perQuery))
}
