package almanac

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyDayPrecedence(t *testing.T) {
	meta := MonthMeta{
		MostFavorable:   []int{5, 14},
		Favorable:       []int{5, 6},
		Neutral:         []int{6, 9},
		MostUnfavorable: []int{9, 20},
	}

	// day 5 sits in two sets; the stronger badge wins
	require.Equal(t, CategoryBest, ClassifyDay(5, meta))
	require.Equal(t, CategoryGood, ClassifyDay(6, meta))
	require.Equal(t, CategoryNeutral, ClassifyDay(9, meta))
	require.Equal(t, CategoryBad, ClassifyDay(20, meta))
	require.Equal(t, CategoryNone, ClassifyDay(3, meta))
}

func TestClassifyDayEmptyMeta(t *testing.T) {
	require.Equal(t, CategoryNone, ClassifyDay(15, MonthMeta{}))
}

func TestDisplayCategoryUnknownPhaseRendersNeutral(t *testing.T) {
	unknown := LunarDay{Phase: PhaseUnknown}
	require.Equal(t, CategoryNeutral, DisplayCategory(15, unknown, MonthMeta{}))

	// the override never outranks an explicit classification
	meta := MonthMeta{MostUnfavorable: []int{15}}
	require.Equal(t, CategoryBad, DisplayCategory(15, unknown, meta))

	// a known phase keeps the none badge
	waxing := LunarDay{Phase: PhaseWaxing}
	require.Equal(t, CategoryNone, DisplayCategory(15, waxing, MonthMeta{}))
}
