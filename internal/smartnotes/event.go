package smartnotes

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDrink   Kind = "drink"
	KindProtein Kind = "protein"
	KindFood    Kind = "food"
	KindPushups Kind = "pushups"
	KindWorkout Kind = "workout"
	KindRest    Kind = "rest"
	KindWeight  Kind = "weight"
	KindBfp     Kind = "bfp"
)

var AllKinds = []Kind{
	KindDrink, KindProtein, KindFood, KindPushups,
	KindWorkout, KindRest, KindWeight, KindBfp,
}

func (k Kind) IsValid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

type Source string

const (
	SourceHeuristic Source = "heuristic"
	SourceLLM       Source = "llm"
	SourceManual    Source = "manual"
)

type Beverage string

const (
	BeverageWater   Beverage = "water"
	BeverageProtein Beverage = "protein"
	BeverageCoffee  Beverage = "coffee"
	BeverageTea     Beverage = "tea"
	BeverageOther   Beverage = "other"
)

type Sport string

const (
	SportHiitHyrox Sport = "hiit_hyrox"
	SportCardio    Sport = "cardio"
	SportGym       Sport = "gym"
	SportSwimming  Sport = "swimming"
	SportFootball  Sport = "football"
	SportOther     Sport = "other"
)

type Intensity string

const (
	IntensityEasy     Intensity = "easy"
	IntensityModerate Intensity = "moderate"
	IntensityHard     Intensity = "hard"
)

const (
	DefaultConfidence = 0.6
	// MinConfidence is the lowest confidence an event needs to count towards a day.
	MinConfidence = 0.5
)

var ErrInvalidEvent = errors.New("invalid event")

// Event is one structured fact extracted from a note. Kind decides which
// of the payload fields are meaningful.
type Event struct {
	ID         string  `json:"id"`
	Ts         int64   `json:"ts"`
	Kind       Kind    `json:"kind"`
	Confidence float64 `json:"confidence"`
	Source     Source  `json:"source"`

	// drink
	VolumeMl int      `json:"volumeMl,omitempty"`
	Beverage Beverage `json:"beverage,omitempty"`

	// protein
	Grams       int    `json:"grams,omitempty"`
	SourceLabel string `json:"sourceLabel,omitempty"`

	// food
	Label    string   `json:"label,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
	ProteinG *float64 `json:"proteinG,omitempty"`
	CarbsG   *float64 `json:"carbsG,omitempty"`
	FatG     *float64 `json:"fatG,omitempty"`

	// pushups
	Count int `json:"count,omitempty"`

	// workout
	Sport       Sport     `json:"sport,omitempty"`
	DurationMin *int      `json:"durationMin,omitempty"`
	Intensity   Intensity `json:"intensity,omitempty"`
	Notes       string    `json:"notes,omitempty"`

	// rest
	Reason string `json:"reason,omitempty"`

	// weight
	Kg float64 `json:"kg,omitempty"`

	// bfp
	Percent float64 `json:"percent,omitempty"`
}

func newEvent(kind Kind, confidence float64) Event {
	return Event{
		ID:         uuid.NewString(),
		Ts:         time.Now().UnixMilli(),
		Kind:       kind,
		Confidence: confidence,
		Source:     SourceHeuristic,
	}
}

func NewDrinkEvent(volumeMl int, beverage Beverage, confidence float64) Event {
	e := newEvent(KindDrink, confidence)
	e.VolumeMl = volumeMl
	e.Beverage = beverage
	return e
}

func NewProteinEvent(grams int, sourceLabel string, confidence float64) Event {
	e := newEvent(KindProtein, confidence)
	e.Grams = grams
	e.SourceLabel = sourceLabel
	return e
}

func NewFoodEvent(label string, calories, proteinG *float64, confidence float64) Event {
	e := newEvent(KindFood, confidence)
	e.Label = label
	e.Calories = calories
	e.ProteinG = proteinG
	return e
}

func NewPushupsEvent(count int, confidence float64) Event {
	e := newEvent(KindPushups, confidence)
	e.Count = count
	return e
}

func NewWorkoutEvent(sport Sport, durationMin *int, intensity Intensity, notes string, confidence float64) Event {
	e := newEvent(KindWorkout, confidence)
	e.Sport = sport
	e.DurationMin = durationMin
	e.Intensity = intensity
	e.Notes = notes
	return e
}

func NewRestEvent(reason string, confidence float64) Event {
	e := newEvent(KindRest, confidence)
	e.Reason = reason
	return e
}

func NewWeightEvent(kg float64, confidence float64) Event {
	e := newEvent(KindWeight, confidence)
	e.Kg = kg
	return e
}

func NewBfpEvent(percent float64, confidence float64) Event {
	e := newEvent(KindBfp, confidence)
	e.Percent = percent
	return e
}

// Counts reports whether the event is confident enough to be aggregated.
func (e Event) Counts() bool {
	return e.Confidence >= MinConfidence
}

func (e Event) Validate() error {
	if !e.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind [%s]", ErrInvalidEvent, e.Kind)
	}
	if math.IsNaN(e.Confidence) || e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v out of range", ErrInvalidEvent, e.Confidence)
	}

	switch e.Kind {
	case KindDrink:
		if e.VolumeMl < 0 {
			return fmt.Errorf("%w: negative volume", ErrInvalidEvent)
		}
	case KindProtein:
		if e.Grams < 0 {
			return fmt.Errorf("%w: negative grams", ErrInvalidEvent)
		}
	case KindPushups:
		if e.Count < 0 {
			return fmt.Errorf("%w: negative pushups count", ErrInvalidEvent)
		}
	case KindFood:
		if e.Label == "" {
			return fmt.Errorf("%w: food label empty", ErrInvalidEvent)
		}
	case KindWorkout:
		if e.Sport == "" {
			return fmt.Errorf("%w: workout sport empty", ErrInvalidEvent)
		}
		if e.DurationMin != nil && *e.DurationMin < 0 {
			return fmt.Errorf("%w: negative workout duration", ErrInvalidEvent)
		}
	case KindWeight:
		if math.IsNaN(e.Kg) || math.IsInf(e.Kg, 0) {
			return fmt.Errorf("%w: weight not finite", ErrInvalidEvent)
		}
	case KindBfp:
		if math.IsNaN(e.Percent) || math.IsInf(e.Percent, 0) {
			return fmt.Errorf("%w: body fat not finite", ErrInvalidEvent)
		}
	}

	return nil
}
