package chart

// Totalizer is an immutable snapshot of chart totals.
// Stacked totals only include visible datasets; series totals include every
// present value of the dataset. Missing points count as zero.
type Totalizer struct {
	stackTotals  []float64
	seriesTotals []float64
}

func newTotalizer(datasets []Dataset, points int) *Totalizer {
	t := &Totalizer{
		stackTotals:  make([]float64, points),
		seriesTotals: make([]float64, len(datasets)),
	}

	for i, d := range datasets {
		for p := range d.Values {
			v, ok := d.Value(p)
			if !ok {
				continue
			}
			t.seriesTotals[i] += v
			if !d.Hidden && p < points {
				t.stackTotals[p] += v
			}
		}
	}

	return t
}

// StackedTotal returns the sum of visible datasets at pointIndex.
func (t *Totalizer) StackedTotal(pointIndex int) (float64, bool) {
	if pointIndex < 0 || pointIndex >= len(t.stackTotals) {
		return 0, false
	}
	return t.stackTotals[pointIndex], true
}

// SeriesTotal returns the sum of all values of dataset seriesIndex.
func (t *Totalizer) SeriesTotal(seriesIndex int) (float64, bool) {
	if seriesIndex < 0 || seriesIndex >= len(t.seriesTotals) {
		return 0, false
	}
	return t.seriesTotals[seriesIndex], true
}

// StackTotals returns a copy of the per-point stacked totals.
func (t *Totalizer) StackTotals() []float64 {
	out := make([]float64, len(t.stackTotals))
	copy(out, t.stackTotals)
	return out
}
