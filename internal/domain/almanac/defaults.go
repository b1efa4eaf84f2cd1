package almanac

import (
	"fmt"
	"time"
)

// DefaultLunarDay is the synthesized card used when no lunar fixture covers
// the requested date.
func DefaultLunarDay(date string) LunarDay {
	moonDay := 8
	return LunarDay{
		Date:      date,
		MoonDay:   &moonDay,
		Phase:     PhaseWaxing,
		IsGoodFor: []string{},
		IsBadFor:  []string{},
		Notes:     "Хороший день ухаживать за грядками.",
	}
}

// DefaultGardenTip fills in when the tip list is missing or empty.
func DefaultGardenTip() GardenTip {
	return GardenTip{
		Culture:    "общее",
		Title:      "Пройдитесь по грядкам",
		Steps:      []string{"Осмотрите растения", "Уберите сорняки, если появились"},
		Difficulty: "easy",
	}
}

// DefaultNotice fills in when the notice list is missing or empty.
func DefaultNotice() ImportantNotice {
	return ImportantNotice{
		Topic:   "отдых",
		Title:   "Отдохните и выпейте воды",
		Summary: "Сегодня нет срочных дел. Берегите себя.",
		CTA:     &CTA{Action: Done{}},
	}
}

// PlaceholderMonth synthesizes a month document with one unknown-phase entry
// per real calendar day of the month, leap years included.
func PlaceholderMonth(month string) MonthDocument {
	total := daysInMonth(month)
	days := make([]LunarDay, 0, total)
	for day := 1; day <= total; day++ {
		days = append(days, LunarDay{
			Date:  fmt.Sprintf("%s-%02d", month, day),
			Phase: PhaseUnknown,
		})
	}
	return MonthDocument{
		Month: month,
		Meta: MonthMeta{
			MostFavorable:   []int{},
			Favorable:       []int{},
			Neutral:         []int{},
			MostUnfavorable: []int{},
			Notes:           "Заглушка: нет реальных лунных данных.",
		},
		Days: days,
	}
}

// EmptyGuides synthesizes a guide document with no entries.
func EmptyGuides(month string) GuideDocument {
	return GuideDocument{
		Month: month,
		Planting: PlantingGuide{
			Vegetables: []PlantingItem{},
			Flowers:    []PlantingItem{},
		},
		Works:       []WorkItem{},
		Unfavorable: []int{},
	}
}

func daysInMonth(month string) int {
	start, err := time.Parse(monthLayout, month)
	if err != nil {
		return 0
	}
	// Day zero of the following month is the last day of this one.
	return time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
