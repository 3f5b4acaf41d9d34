package smartnotes

import (
	"fmt"
	"math"
	"strconv"
)

// MergeEvents folds incoming events (llm or manual imports) into the
// heuristic candidates. An incoming event replaces the candidate with the
// same fingerprint, or failing that the first similar one, when its
// confidence is at least as high. Unmatched incoming events are appended.
func MergeEvents(candidates, incoming []Event) []Event {
	keys := make([]string, 0, len(candidates)+len(incoming))
	merged := make(map[string]Event, len(candidates)+len(incoming))

	set := func(key string, e Event) {
		if _, ok := merged[key]; !ok {
			keys = append(keys, key)
		}
		merged[key] = e
	}

	for _, c := range candidates {
		set(fingerprint(c), c)
	}

	for _, e := range incoming {
		key := resolveKey(keys, merged, e)
		existing, ok := merged[key]
		if !ok || e.Confidence >= existing.Confidence {
			set(key, e)
		}
	}

	result := make([]Event, 0, len(keys))
	for _, key := range keys {
		result = append(result, merged[key])
	}
	return result
}

func resolveKey(keys []string, merged map[string]Event, e Event) string {
	exactKey := fingerprint(e)
	if _, ok := merged[exactKey]; ok {
		return exactKey
	}
	for _, key := range keys {
		if isSimilarEvent(merged[key], e) {
			return key
		}
	}
	return exactKey
}

func fingerprint(e Event) string {
	switch e.Kind {
	case KindDrink:
		return fmt.Sprintf("%s:%s:%d", e.Kind, e.Beverage, e.VolumeMl)
	case KindProtein:
		return fmt.Sprintf("%s:%d", e.Kind, e.Grams)
	case KindPushups:
		return fmt.Sprintf("%s:%d", e.Kind, e.Count)
	case KindWorkout:
		duration := "na"
		if e.DurationMin != nil {
			duration = strconv.Itoa(*e.DurationMin)
		}
		intensity := "na"
		if e.Intensity != "" {
			intensity = string(e.Intensity)
		}
		return fmt.Sprintf("%s:%s:%s:%s", e.Kind, e.Sport, duration, intensity)
	case KindRest:
		return fmt.Sprintf("%s:%s", e.Kind, e.Reason)
	case KindWeight:
		return fmt.Sprintf("%s:%s", e.Kind, formatNumber(e.Kg))
	case KindBfp:
		return fmt.Sprintf("%s:%s", e.Kind, formatNumber(e.Percent))
	case KindFood:
		return fmt.Sprintf("%s:%s", e.Kind, e.Label)
	default:
		return fmt.Sprintf("%s:%s", e.Kind, e.ID)
	}
}

func isSimilarEvent(a, b Event) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindDrink:
		return a.Beverage == b.Beverage && absInt(a.VolumeMl-b.VolumeMl) <= 60
	case KindProtein:
		return absInt(a.Grams-b.Grams) <= 6
	case KindPushups:
		return absInt(a.Count-b.Count) <= 2
	case KindWorkout:
		if a.Sport != b.Sport {
			return false
		}
		if a.DurationMin != nil && b.DurationMin != nil && absInt(*a.DurationMin-*b.DurationMin) > 10 {
			return false
		}
		return a.Intensity == b.Intensity || a.Intensity == "" || b.Intensity == ""
	case KindRest:
		return true
	case KindWeight:
		return math.Abs(a.Kg-b.Kg) <= 0.2
	case KindBfp:
		return math.Abs(a.Percent-b.Percent) <= 0.3
	case KindFood:
		return a.Label == b.Label
	default:
		return false
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
