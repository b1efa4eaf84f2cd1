package almanac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectDayGuidesOrdersVegetablesBeforeFlowers(t *testing.T) {
	guides := GuideDocument{
		Month: "2025-12",
		Planting: PlantingGuide{
			Vegetables: []PlantingItem{
				{Name: "Морковь", Dates: []int{5, 14}},
				{Name: "Свёкла", Dates: []int{9}},
			},
			Flowers: []PlantingItem{
				{Name: "Тюльпан", Dates: []int{5}},
			},
		},
		Works: []WorkItem{
			{Name: "Полив", Dates: []int{5, 6}},
			{Name: "Прополка", Dates: []int{5}},
		},
	}

	day := CollectDayGuides(5, guides)
	require.Equal(t, []string{"Овощи: Морковь", "Цветы: Тюльпан"}, day.PlantingItems)
	require.Equal(t, []string{"Полив", "Прополка"}, day.Works)
}

func TestCollectDayGuidesKeepsDuplicateNames(t *testing.T) {
	guides := GuideDocument{
		Planting: PlantingGuide{
			Vegetables: []PlantingItem{{Name: "Базилик", Dates: []int{3}}},
			Flowers:    []PlantingItem{{Name: "Базилик", Dates: []int{3}}},
		},
	}

	day := CollectDayGuides(3, guides)
	require.Equal(t, []string{"Овощи: Базилик", "Цветы: Базилик"}, day.PlantingItems)
}

func TestCollectDayGuidesEmptyDay(t *testing.T) {
	day := CollectDayGuides(28, GuideDocument{})
	require.Empty(t, day.PlantingItems)
	require.Empty(t, day.Works)
	require.NotNil(t, day.PlantingItems)
	require.NotNil(t, day.Works)
}
