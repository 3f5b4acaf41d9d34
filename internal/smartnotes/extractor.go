package smartnotes

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	drinkRegex        = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?(ml|l)\b`)
	proteinRegex      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?(g|gramm|grams?)\b`)
	pushupsRegex      = regexp.MustCompile(`(?i)(\d+)\s?(liegestütze|liegestuetze|push[- ]?ups?)\b`)
	durationRegex     = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(min|minutes?|mins?|h|stunden?|hours?)`)
	restRegex         = regexp.MustCompile(`(?i)(ausruhen|rest ?day|pause)`)
	restReasonRegex   = regexp.MustCompile(`(?i)wegen\s+([^.,;]+)`)
	weightRegex       = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s?kg\b`)
	bodyFatRegex      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s?%`)
	foodCaloriesRegex = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(kcal|cal(?:orien)?)\b`)
	foodProteinRegex  = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(g|gramm|grams?)\b.*(protein|eiweiß)`)
)

const proteinShakeDefaultGrams = 25

type ExtractResult struct {
	Raw        string  `json:"raw"`
	Candidates []Event `json:"candidates"`
}

// Extract scans a raw note for drinks, protein, pushups, a workout, rest,
// weight, body fat and food. It never fails: unmatched or unparseable text
// yields fewer candidates.
func Extract(raw string) ExtractResult {
	normalized := strings.ReplaceAll(raw, ",", ".")
	lower := strings.ToLower(normalized)
	candidates := make([]Event, 0)

	for _, m := range drinkRegex.FindAllStringSubmatch(normalized, -1) {
		value, ok := parseNumber(m[1])
		if !ok {
			continue
		}
		if strings.ToLower(m[2]) == "l" {
			value *= 1000
		}
		volumeMl, ok := roundInt(value)
		if !ok {
			continue
		}
		candidates = append(candidates, NewDrinkEvent(volumeMl, detectBeverage(lower), DefaultConfidence))
	}

	foundProteinValue := false
	for _, m := range proteinRegex.FindAllStringSubmatch(normalized, -1) {
		grams, ok := parseNumber(m[1])
		if !ok {
			continue
		}
		sourceLabel := ""
		if strings.Contains(lower, "shake") || strings.Contains(lower, "protein") {
			sourceLabel = "protein"
		}
		roundedGrams, ok := roundInt(grams)
		if !ok {
			continue
		}
		candidates = append(candidates, NewProteinEvent(roundedGrams, sourceLabel, DefaultConfidence))
		foundProteinValue = true
	}
	if !foundProteinValue && strings.Contains(lower, "proteinshake") {
		candidates = append(candidates, NewProteinEvent(proteinShakeDefaultGrams, "proteinshake", 0.5))
	}

	for _, m := range pushupsRegex.FindAllStringSubmatch(lower, -1) {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		candidates = append(candidates, NewPushupsEvent(count, DefaultConfidence))
	}

	if sport, ok := detectSport(lower); ok {
		candidates = append(candidates, NewWorkoutEvent(
			sport,
			findDuration(lower),
			findIntensity(lower),
			raw,
			DefaultConfidence,
		))
	}

	if restRegex.MatchString(lower) {
		reason := ""
		if m := restReasonRegex.FindStringSubmatch(normalized); m != nil {
			reason = strings.TrimSpace(m[1])
		}
		candidates = append(candidates, NewRestEvent(reason, DefaultConfidence))
	}

	if m := weightRegex.FindStringSubmatch(normalized); m != nil {
		if kg, ok := parseNumber(m[1]); ok {
			candidates = append(candidates, NewWeightEvent(kg, DefaultConfidence))
		}
	}

	if m := bodyFatRegex.FindStringSubmatch(normalized); m != nil {
		if percent, ok := parseNumber(m[1]); ok {
			candidates = append(candidates, NewBfpEvent(percent, DefaultConfidence))
		}
	}

	if food, ok := detectFood(lower); ok {
		candidates = append(candidates, food)
	}

	return ExtractResult{
		Raw:        raw,
		Candidates: candidates,
	}
}

func detectBeverage(lower string) Beverage {
	for _, kw := range beverageKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.beverage
		}
	}
	if strings.Contains(lower, "protein") {
		return BeverageProtein
	}
	return BeverageOther
}

func detectSport(lower string) (Sport, bool) {
	for _, kw := range workoutKeywords {
		if containsKeyword(lower, kw.keyword) {
			return kw.sport, true
		}
	}
	return "", false
}

func findDuration(lower string) *int {
	m := durationRegex.FindStringSubmatch(lower)
	if m == nil {
		return nil
	}
	value, ok := parseNumber(m[1])
	if !ok {
		return nil
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		value *= 60
	}
	minutes, ok := roundInt(value)
	if !ok {
		return nil
	}
	return &minutes
}

func findIntensity(lower string) Intensity {
	for _, kw := range intensityKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.intensity
		}
	}
	return ""
}

func detectFood(lower string) (Event, bool) {
	for _, keyword := range foodKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}

		var calories, proteinG *float64
		if m := foodCaloriesRegex.FindStringSubmatch(lower); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				rounded := math.Round(v)
				calories = &rounded
			}
		}
		if m := foodProteinRegex.FindStringSubmatch(lower); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				rounded := math.Round(v)
				proteinG = &rounded
			}
		}
		return NewFoodEvent(keyword, calories, proteinG, DefaultConfidence), true
	}
	return Event{}, false
}

// containsKeyword reports whether keyword occurs in text without being
// glued to letters on both sides, so "run" matches "run," or "morning-run"
// but not "getrunken".
func containsKeyword(text, keyword string) bool {
	offset := 0
	for offset <= len(text) {
		idx := strings.Index(text[offset:], keyword)
		if idx == -1 {
			return false
		}
		start := offset + idx
		end := start + len(keyword)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !(isKeywordLetter(before) && isKeywordLetter(after)) {
			return true
		}
		offset = end
	}
	return false
}

func isKeywordLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == 'ä', r == 'ö', r == 'ü', r == 'ß', r == 'Ä', r == 'Ö', r == 'Ü':
		return true
	default:
		return false
	}
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// roundInt rounds v to a non-negative int32-sized value; anything outside
// that range is not a usable capture.
func roundInt(v float64) (int, bool) {
	rounded := math.Round(v)
	if rounded < 0 || rounded > math.MaxInt32 {
		return 0, false
	}
	return int(rounded), true
}
