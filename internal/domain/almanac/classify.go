package almanac

// Category is the favorability badge assigned to a day number.
type Category string

const (
	CategoryBest    Category = "best"
	CategoryGood    Category = "good"
	CategoryNeutral Category = "neutral"
	CategoryBad     Category = "bad"
	CategoryNone    Category = "none"
)

// ClassifyDay maps a day number to its badge using the month meta sets.
// Precedence is fixed: most_favorable wins over favorable, favorable over
// neutral, neutral over most_unfavorable. Fixtures violating the disjointness
// assumption still classify deterministically.
func ClassifyDay(day int, meta MonthMeta) Category {
	switch {
	case containsDay(meta.MostFavorable, day):
		return CategoryBest
	case containsDay(meta.Favorable, day):
		return CategoryGood
	case containsDay(meta.Neutral, day):
		return CategoryNeutral
	case containsDay(meta.MostUnfavorable, day):
		return CategoryBad
	default:
		return CategoryNone
	}
}

// DisplayCategory applies the presentation override on top of ClassifyDay:
// a day with an unknown phase and no meta classification renders as neutral.
func DisplayCategory(day int, lunar LunarDay, meta MonthMeta) Category {
	category := ClassifyDay(day, meta)
	if category == CategoryNone && lunar.Phase == PhaseUnknown {
		return CategoryNeutral
	}
	return category
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
