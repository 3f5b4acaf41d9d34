package smartnotes

import (
	"fmt"
	"regexp"
	"strings"
)

type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

const (
	optimisticSummaryMaxLen = 120
	optimisticSummaryCut    = 117
)

var (
	germanSignals  = regexp.MustCompile(`wasser|gramm|ausruhen|pause|resttag|liegestütz|km|min\.|heute|kg|tee|laufen|training`)
	englishSignals = regexp.MustCompile(`water|protein|push ?up|rest day|run|gym|workout|swim|today|lbs|weight|cardio|tea|coffee`)
)

// OptimisticSummary is the raw note, cut to 117 characters plus "..." once
// it reaches 120 characters.
func OptimisticSummary(raw string) string {
	runes := []rune(raw)
	if len(runes) < optimisticSummaryMaxLen {
		return raw
	}
	return string(runes[:optimisticSummaryCut]) + "..."
}

func DetectLanguage(raw string) Language {
	sample := strings.ToLower(raw)
	german := germanSignals.MatchString(sample)
	english := englishSignals.MatchString(sample)

	switch {
	case german && !english:
		return LanguageGerman
	case english && !german:
		return LanguageEnglish
	case strings.ContainsAny(sample, "ßäöü"):
		return LanguageGerman
	case english:
		return LanguageEnglish
	default:
		return LanguageGerman
	}
}

// BuildSummary describes the extracted events in the language of the note,
// e.g. "Logged: 500 ml water, 25 g protein.". Notes without events fall back
// to the optimistic summary.
func BuildSummary(raw string, events []Event) string {
	if len(events) == 0 {
		return OptimisticSummary(raw)
	}

	lang := DetectLanguage(raw)
	descriptions := make([]string, 0, len(events))
	for _, e := range events {
		if d := describeEvent(e, lang); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	if len(descriptions) == 0 {
		return OptimisticSummary(raw)
	}

	prefix := "Logged: "
	if lang == LanguageGerman {
		prefix = "Notiert: "
	}
	return prefix + strings.Join(descriptions, ", ") + "."
}

func describeEvent(e Event, lang Language) string {
	de := lang == LanguageGerman
	pick := func(german, english string) string {
		if de {
			return german
		}
		return english
	}

	switch e.Kind {
	case KindDrink:
		var beverage string
		switch e.Beverage {
		case BeverageWater:
			beverage = pick("Wasser", "water")
		case BeverageProtein:
			beverage = pick("Proteinshake", "protein shake")
		case BeverageCoffee:
			beverage = pick("Kaffee", "coffee")
		case BeverageTea:
			beverage = pick("Tee", "tea")
		default:
			beverage = pick("Drink", "drink")
		}
		return fmt.Sprintf("%d ml %s", e.VolumeMl, beverage)
	case KindProtein:
		return fmt.Sprintf("%d g %s", e.Grams, pick("Protein", "protein"))
	case KindPushups:
		return fmt.Sprintf("%d %s", e.Count, pick("Liegestütze", "push-ups"))
	case KindWorkout:
		parts := []string{describeSport(e.Sport, pick)}
		if e.DurationMin != nil && *e.DurationMin != 0 {
			parts = append(parts, fmt.Sprintf("· %d min", *e.DurationMin))
		}
		switch e.Intensity {
		case IntensityEasy:
			parts = append(parts, "· "+pick("locker", "easy"))
		case IntensityModerate:
			parts = append(parts, "· "+pick("moderat", "moderate"))
		case IntensityHard:
			parts = append(parts, "· "+pick("hart", "hard"))
		}
		return strings.Join(parts, " ")
	case KindRest:
		return pick("Ruhetag", "rest day")
	case KindWeight:
		return formatNumber(e.Kg) + " kg"
	case KindBfp:
		return fmt.Sprintf("%s %% %s", formatNumber(e.Percent), pick("Körperfett", "body fat"))
	case KindFood:
		details := make([]string, 0, 2)
		if e.Calories != nil {
			details = append(details, formatNumber(*e.Calories)+" kcal")
		}
		if e.ProteinG != nil {
			details = append(details, fmt.Sprintf("%s g %s", formatNumber(*e.ProteinG), pick("Protein", "protein")))
		}
		if len(details) == 0 {
			return e.Label
		}
		return fmt.Sprintf("%s (%s)", e.Label, strings.Join(details, ", "))
	default:
		return ""
	}
}

func describeSport(sport Sport, pick func(german, english string) string) string {
	switch sport {
	case SportHiitHyrox:
		return "Hyrox/HIIT"
	case SportCardio:
		return pick("Cardio", "cardio")
	case SportGym:
		return pick("Gym", "gym")
	case SportSwimming:
		return pick("Schwimmen", "swimming")
	case SportFootball:
		return pick("Fußball", "football")
	default:
		return string(sport)
	}
}
