package cvparse

// personalInfoExpected are the sub-fields a complete personal-info block
// is expected to yield; the category confidence is penalized for each one
// missing.
var personalInfoExpected = []string{"name", "email", "phone"}

// personalInfoConfidence is the mean of the found sub-field confidences,
// scaled by the fraction of expected sub-fields that were found.
func personalInfoConfidence(found map[string]float64) float64 {
	if len(found) == 0 {
		return 0
	}

	sum := 0.0
	for _, conf := range found {
		sum += conf
	}
	mean := sum / float64(len(found))

	expectedFound := 0
	for _, field := range personalInfoExpected {
		if _, ok := found[field]; ok {
			expectedFound++
		}
	}
	scale := float64(expectedFound) / float64(len(personalInfoExpected))
	return clamp01(mean * scale)
}

// meanConfidence averages per-entry confidences, returning 0 for an
// empty category.
func meanConfidence(confidences []float64) float64 {
	if len(confidences) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range confidences {
		sum += c
	}
	return clamp01(sum / float64(len(confidences)))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
