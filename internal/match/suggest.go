package match

// DefaultThreshold is the similarity Closest requires unless told otherwise.
const DefaultThreshold = 0.6

// Closest returns the candidate most similar to name, if any reaches
// threshold. A name without a package qualifier is compared with the
// unqualified candidates. Ties go to the earlier candidate.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	query := Normalize(name)
	qualified := baseName(query) != query

	best, bestScore := "", -1.0

	for _, c := range candidates {
		norm := Normalize(c)
		if !qualified {
			norm = baseName(norm)
		}

		if score := Similarity(query, norm); score > bestScore {
			best, bestScore = c, score
		}
	}

	if best == "" || bestScore < threshold {
		return "", false
	}

	return best, true
}
