package framework

// Dominates checks if objective vector a Pareto-dominates objective vector b:
// a is no worse than b in every objective and strictly better in at least one.
// Vectors of different lengths are not comparable and never dominate each other.
func Dominates(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}
