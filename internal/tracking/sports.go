package tracking

type SportKey string

const (
	SportHiit      SportKey = "hiit"
	SportCardio    SportKey = "cardio"
	SportGym       SportKey = "gym"
	SportSchwimmen SportKey = "schwimmen"
	SportSoccer    SportKey = "soccer"
	SportRest      SportKey = "rest"
)

var SportKeys = []SportKey{
	SportHiit, SportCardio, SportGym, SportSchwimmen, SportSoccer, SportRest,
}

// CountActiveSports counts the known sport keys marked active. A rest day
// counts like any other sport.
func CountActiveSports(sports map[SportKey]SportEntry) int {
	count := 0
	for _, key := range SportKeys {
		if sports[key].Active {
			count++
		}
	}
	return count
}

// NormalizeSports returns an entry for every known sport key, inactive
// where the input has none. Unknown keys are dropped.
func NormalizeSports(sports map[SportKey]SportEntry) map[SportKey]SportEntry {
	normalized := make(map[SportKey]SportEntry, len(SportKeys))
	for _, key := range SportKeys {
		normalized[key] = sports[key]
	}
	return normalized
}
