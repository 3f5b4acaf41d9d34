package smartnotes

// Keyword tables are scanned in slice order and the first hit wins,
// regardless of where the keyword appears in the note.

type beverageKeyword struct {
	keyword  string
	beverage Beverage
}

var beverageKeywords = []beverageKeyword{
	{"protein", BeverageProtein},
	{"proteinshake", BeverageProtein},
	{"shake", BeverageProtein},
	{"wasser", BeverageWater},
	{"water", BeverageWater},
	{"stilles wasser", BeverageWater},
	{"sparkling water", BeverageWater},
	{"kaffee", BeverageCoffee},
	{"coffee", BeverageCoffee},
	{"espresso", BeverageCoffee},
	{"tee", BeverageTea},
	{"tea", BeverageTea},
}

type workoutKeyword struct {
	keyword string
	sport   Sport
}

var workoutKeywords = []workoutKeyword{
	{"hiit", SportHiitHyrox},
	{"hyrox", SportHiitHyrox},
	{"cardio", SportCardio},
	{"laufen", SportCardio},
	{"joggen", SportCardio},
	{"run", SportCardio},
	{"running", SportCardio},
	{"jog", SportCardio},
	{"cycling", SportCardio},
	{"rad", SportCardio},
	{"bike", SportCardio},
	{"radfahren", SportCardio},
	{"schwimmen", SportSwimming},
	{"swimming", SportSwimming},
	{"schwimm", SportSwimming},
	{"gym", SportGym},
	{"kraft", SportGym},
	{"krafttraining", SportGym},
	{"workout", SportGym},
	{"training", SportGym},
	{"fußball", SportFootball},
	{"fussball", SportFootball},
	{"football", SportFootball},
	{"soccer", SportFootball},
}

var foodKeywords = []string{
	"porridge",
	"oatmeal",
	"haferbrei",
	"tofu",
	"reis",
	"rice",
	"nudeln",
	"pasta",
	"salat",
	"salad",
	"smoothie",
	"burger",
	"sandwich",
	"wrap",
	"quark",
	"yogurt",
	"joghurt",
}

type intensityKeyword struct {
	keyword   string
	intensity Intensity
}

var intensityKeywords = []intensityKeyword{
	{"locker", IntensityEasy},
	{"leicht", IntensityEasy},
	{"easy", IntensityEasy},
	{"moderat", IntensityModerate},
	{"moderate", IntensityModerate},
	{"hart", IntensityHard},
	{"streng", IntensityHard},
	{"hard", IntensityHard},
	{"intense", IntensityHard},
}
