package almanac

const (
	labelVegetables = "Овощи"
	labelFlowers    = "Цветы"
)

// DayGuides lists what a single day is good for according to the guide
// document.
type DayGuides struct {
	PlantingItems []string `json:"plantingItems"`
	Works         []string `json:"works"`
}

// CollectDayGuides gathers the planting items and works scheduled on the
// given day number. Vegetables come before flowers, works keep document
// order, and items are not de-duplicated across categories.
func CollectDayGuides(day int, guides GuideDocument) DayGuides {
	collected := DayGuides{
		PlantingItems: []string{},
		Works:         []string{},
	}
	for _, item := range guides.Planting.Vegetables {
		if containsDay(item.Dates, day) {
			collected.PlantingItems = append(collected.PlantingItems, labelVegetables+": "+item.Name)
		}
	}
	for _, item := range guides.Planting.Flowers {
		if containsDay(item.Dates, day) {
			collected.PlantingItems = append(collected.PlantingItems, labelFlowers+": "+item.Name)
		}
	}
	for _, work := range guides.Works {
		if containsDay(work.Dates, day) {
			collected.Works = append(collected.Works, work.Name)
		}
	}
	return collected
}
