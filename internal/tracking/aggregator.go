package tracking

import (
	"time"

	"github.com/2beens/smarttrack/internal/smartnotes"
)

const (
	dateKeyLayout         = "2006-01-02"
	dateKeyFallbackLayout = "1/2/2006"
)

var workoutIntensityScale = map[smartnotes.Intensity]float64{
	smartnotes.IntensityEasy:     3,
	smartnotes.IntensityModerate: 6,
	smartnotes.IntensityHard:     8,
}

// DateKey is the calendar date of ts (epoch ms) in loc. Years that do not
// fit four digits get a locale style date instead.
func DateKey(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t := time.UnixMilli(ts).In(loc)
	if y := t.Year(); y < 0 || y > 9999 {
		return t.Format(dateKeyFallbackLayout)
	}
	return t.Format(dateKeyLayout)
}

// CollectContributions folds the events of all non pending notes into per
// day contributions keyed by DateKey. Events below the minimum confidence
// are ignored and days left without any value are dropped.
func CollectContributions(notes []smartnotes.SmartNote, loc *time.Location) map[string]*Contribution {
	contributions := make(map[string]*Contribution)

	for _, note := range notes {
		if note.Pending {
			continue
		}

		dateKey := DateKey(note.Ts, loc)
		contribution, ok := contributions[dateKey]
		if !ok {
			contribution = &Contribution{}
		}

		for _, event := range note.Events {
			if !event.Counts() {
				continue
			}
			applyEvent(contribution, event)
		}

		if contribution.IsEmpty() {
			delete(contributions, dateKey)
		} else {
			contributions[dateKey] = contribution
		}
	}

	return contributions
}

func applyEvent(c *Contribution, e smartnotes.Event) {
	switch e.Kind {
	case smartnotes.KindDrink:
		c.Water = addFloat(c.Water, float64(e.VolumeMl))
	case smartnotes.KindProtein:
		c.Protein = addFloat(c.Protein, float64(e.Grams))
	case smartnotes.KindFood:
		if e.ProteinG != nil {
			c.Protein = addFloat(c.Protein, *e.ProteinG)
		}
		if e.CarbsG != nil {
			c.CarbsG = addFloat(c.CarbsG, *e.CarbsG)
		}
		if e.FatG != nil {
			c.FatG = addFloat(c.FatG, *e.FatG)
		}
		if e.Calories != nil {
			c.Calories = addFloat(c.Calories, *e.Calories)
		}
	case smartnotes.KindPushups:
		total := e.Count
		if c.Pushups != nil {
			total += *c.Pushups
		}
		c.Pushups = &total
	case smartnotes.KindWorkout:
		entry := SportEntry{Active: true}
		if e.DurationMin != nil {
			duration := float64(*e.DurationMin)
			entry.Duration = &duration
		}
		if intensity, ok := workoutIntensityScale[e.Intensity]; ok {
			entry.Intensity = &intensity
		}
		if c.Sports == nil {
			c.Sports = make(map[SportKey]SportEntry)
		}
		key := SportKeyForWorkout(e.Sport)
		existing, ok := c.Sports[key]
		if ok {
			c.Sports[key] = MergeSportEntries(&existing, entry)
		} else {
			c.Sports[key] = MergeSportEntries(nil, entry)
		}
	case smartnotes.KindRest:
		if c.Sports == nil {
			c.Sports = make(map[SportKey]SportEntry)
		}
		c.Sports[SportRest] = SportEntry{Active: true}
	case smartnotes.KindWeight:
		if c.Weight == nil {
			c.Weight = &WeightEntry{}
		}
		kg := e.Kg
		c.Weight.Value = &kg
	case smartnotes.KindBfp:
		if c.Weight == nil {
			c.Weight = &WeightEntry{}
		}
		percent := e.Percent
		c.Weight.BodyFat = &percent
	}
}

// SportKeyForWorkout maps an extracted workout sport onto the tracking
// sport keys. Unknown sports count as gym.
func SportKeyForWorkout(sport smartnotes.Sport) SportKey {
	switch sport {
	case smartnotes.SportHiitHyrox:
		return SportHiit
	case smartnotes.SportCardio:
		return SportCardio
	case smartnotes.SportGym:
		return SportGym
	case smartnotes.SportSwimming:
		return SportSchwimmen
	case smartnotes.SportFootball:
		return SportSoccer
	default:
		return SportGym
	}
}

// MergeSportEntries combines two entries of the same sport. Durations add
// up, intensities keep the higher value. A zero or missing value on one
// side yields the other side.
func MergeSportEntries(existing *SportEntry, incoming SportEntry) SportEntry {
	if existing == nil {
		return incoming
	}

	return SportEntry{
		Active: true,
		Duration: mergeOptional(existing.Duration, incoming.Duration, func(a, b float64) float64 {
			return a + b
		}),
		Intensity: mergeOptional(existing.Intensity, incoming.Intensity, func(a, b float64) float64 {
			return max(a, b)
		}),
	}
}

func mergeOptional(a, b *float64, combine func(a, b float64) float64) *float64 {
	av, bv := valueOrZero(a), valueOrZero(b)
	switch {
	case av == 0 && bv == 0:
		return nil
	case av == 0:
		return &bv
	case bv == 0:
		return &av
	default:
		v := combine(av, bv)
		return &v
	}
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func addFloat(current *float64, delta float64) *float64 {
	sum := delta
	if current != nil {
		sum += *current
	}
	return &sum
}
