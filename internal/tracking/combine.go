package tracking

// CombineTrackingWithSmart merges manually tracked days with the smart note
// contributions into one view keyed by date. Water, protein and pushups add
// up. Active smart sports override the manual duration and intensity where
// they carry one. Manually logged weight wins over the smart value.
func CombineTrackingWithSmart(tracking map[string]DailyTracking, contributions map[string]*Contribution) map[string]DailyTracking {
	combined := make(map[string]DailyTracking, len(tracking)+len(contributions))

	dateKeys := make(map[string]struct{}, len(tracking)+len(contributions))
	for dateKey := range tracking {
		dateKeys[dateKey] = struct{}{}
	}
	for dateKey := range contributions {
		dateKeys[dateKey] = struct{}{}
	}

	for dateKey := range dateKeys {
		manual, hasManual := tracking[dateKey]
		smart := contributions[dateKey]
		if smart == nil {
			smart = &Contribution{}
		}

		day := DailyTracking{
			Date:      dateKey,
			Water:     manual.Water + valueOrZero(smart.Water),
			Protein:   manual.Protein + valueOrZero(smart.Protein),
			Sports:    mergeSmartSports(NormalizeSports(manual.Sports), smart.Sports),
			Pushups:   combinePushups(manual.Pushups, smart.Pushups),
			Weight:    combineWeight(manual.Weight, smart.Weight),
			Completed: manual.Completed,
		}
		if hasManual && manual.Date != "" {
			day.Date = manual.Date
		}

		combined[dateKey] = day
	}

	return combined
}

func mergeSmartSports(manual map[SportKey]SportEntry, smart map[SportKey]SportEntry) map[SportKey]SportEntry {
	for key, entry := range smart {
		if !entry.Active {
			continue
		}
		manualEntry := manual[key]
		merged := SportEntry{
			Active:    true,
			Duration:  manualEntry.Duration,
			Intensity: manualEntry.Intensity,
		}
		if entry.Duration != nil {
			merged.Duration = entry.Duration
		}
		if entry.Intensity != nil {
			merged.Intensity = entry.Intensity
		}
		manual[key] = merged
	}
	return manual
}

func combinePushups(manual *PushupsTracking, smart *int) *PushupsTracking {
	total := 0.0
	if manual != nil && manual.Total != nil {
		total = *manual.Total
	}
	if smart != nil {
		total += float64(*smart)
	}

	if manual == nil && total <= 0 {
		return nil
	}

	combined := &PushupsTracking{Total: &total}
	if manual != nil {
		combined.Workout = manual.Workout
	}
	return combined
}

func combineWeight(manual *BodyWeight, smart *WeightEntry) *BodyWeight {
	var value, bodyFat, bmi *float64
	if manual != nil {
		value, bodyFat, bmi = manual.Value, manual.BodyFat, manual.BMI
	}
	if smart != nil {
		if value == nil {
			value = smart.Value
		}
		if bodyFat == nil {
			bodyFat = smart.BodyFat
		}
	}

	if value == nil && bodyFat == nil && bmi == nil {
		return nil
	}
	return &BodyWeight{
		Value:   value,
		BodyFat: bodyFat,
		BMI:     bmi,
	}
}
