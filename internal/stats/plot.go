package stats

const defaultPlotBuckets = 50

type PlotPoint struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// BuildErrorPlot downsamples an error trajectory into bucket averages.
// Each point carries the first step index of its bucket. Histories no
// longer than the bucket count pass through one point per step.
func BuildErrorPlot(history []float64, buckets int) []PlotPoint {
	if buckets <= 0 {
		buckets = defaultPlotBuckets
	}
	if len(history) == 0 {
		return []PlotPoint{}
	}

	size := (len(history) + buckets - 1) / buckets
	points := make([]PlotPoint, 0, buckets)
	for start := 0; start < len(history); start += size {
		end := start + size
		if end > len(history) {
			end = len(history)
		}
		sum := 0.0
		for _, value := range history[start:end] {
			sum += value
		}
		points = append(points, PlotPoint{Index: start, Value: sum / float64(end-start)})
	}
	return points
}
