package domain

import "math"

// Stats summarises the finite values of a numeric column.
// StdDev is the sample standard deviation and is NaN for fewer than two values.
// All fields are NaN when Count is zero.
type Stats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes Stats over values, skipping NaN.
func Summarize(values []float64) Stats {
	st := Stats{
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
	}

	var sum float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if st.Count == 0 || v < st.Min {
			st.Min = v
		}
		if st.Count == 0 || v > st.Max {
			st.Max = v
		}
		sum += v
		st.Count++
	}
	if st.Count == 0 {
		return st
	}
	st.Mean = sum / float64(st.Count)

	if st.Count < 2 {
		return st
	}
	var sq float64
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		d := v - st.Mean
		sq += d * d
	}
	st.StdDev = math.Sqrt(sq / float64(st.Count-1))
	return st
}

// Downsample reduces values to at most maxPoints while keeping each bucket's
// minimum and maximum in their original order, so the overall range survives.
// NaN values are dropped. maxPoints <= 0 disables reduction and 1 is treated as 2;
// config validation rejects 1.
func Downsample(values []float64, maxPoints int) []float64 {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if maxPoints <= 0 || len(finite) <= maxPoints {
		return finite
	}
	if maxPoints < 2 {
		maxPoints = 2
	}

	buckets := maxPoints / 2
	out := make([]float64, 0, buckets*2)
	size := float64(len(finite)) / float64(buckets)
	for b := range buckets {
		lo := int(float64(b) * size)
		hi := int(float64(b+1) * size)
		if b == buckets-1 {
			hi = len(finite)
		}
		if hi <= lo {
			continue
		}
		minIdx, maxIdx := lo, lo
		for i := lo + 1; i < hi; i++ {
			if finite[i] < finite[minIdx] {
				minIdx = i
			}
			if finite[i] > finite[maxIdx] {
				maxIdx = i
			}
		}
		switch {
		case minIdx == maxIdx:
			out = append(out, finite[minIdx])
		case minIdx < maxIdx:
			out = append(out, finite[minIdx], finite[maxIdx])
		default:
			out = append(out, finite[maxIdx], finite[minIdx])
		}
	}
	return out
}
