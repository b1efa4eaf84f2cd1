package almanac

// Phase names the lunar phase of a calendar day.
type Phase string

const (
	PhaseWaxing  Phase = "waxing"
	PhaseWaning  Phase = "waning"
	PhaseFull    Phase = "full"
	PhaseNew     Phase = "new"
	PhaseUnknown Phase = "unknown"
)

// LunarDay describes a single calendar day of the lunar month document.
// Date uniquely keys the day within its owning month.
type LunarDay struct {
	Date      string   `json:"date"`
	MoonDay   *int     `json:"moon_day"`
	Phase     Phase    `json:"phase"`
	IsGoodFor []string `json:"is_good_for,omitempty"`
	IsBadFor  []string `json:"is_bad_for,omitempty"`
	Zodiac    string   `json:"zodiac,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// MonthMeta groups day numbers by favorability. The four sets are assumed
// pairwise disjoint; classification precedence resolves violations.
type MonthMeta struct {
	MostFavorable   []int  `json:"most_favorable"`
	Favorable       []int  `json:"favorable"`
	Neutral         []int  `json:"neutral"`
	MostUnfavorable []int  `json:"most_unfavorable"`
	Notes           string `json:"notes,omitempty"`
}

// MonthDocument is the lunar fixture for one ISO month ("YYYY-MM").
type MonthDocument struct {
	Month string     `json:"month"`
	Meta  MonthMeta  `json:"meta"`
	Days  []LunarDay `json:"days"`
}

// PlantingItem names a culture and the day numbers suited to planting it.
type PlantingItem struct {
	Name  string `json:"name"`
	Dates []int  `json:"dates"`
}

// WorkItem names a garden work and the day numbers it is scheduled on.
type WorkItem struct {
	Name  string `json:"name"`
	Dates []int  `json:"dates"`
}

// PlantingGuide splits planting items by category.
type PlantingGuide struct {
	Vegetables []PlantingItem `json:"vegetables"`
	Flowers    []PlantingItem `json:"flowers"`
}

// GuideDocument is the planting/works fixture for one ISO month.
type GuideDocument struct {
	Month       string        `json:"month"`
	Planting    PlantingGuide `json:"planting"`
	Works       []WorkItem    `json:"works"`
	Unfavorable []int         `json:"unfavorable"`
}

// GardenTip is one entry of the month-independent tip rotation.
type GardenTip struct {
	Culture    string   `json:"culture"`
	Title      string   `json:"title"`
	Steps      []string `json:"steps"`
	Difficulty string   `json:"difficulty"`
}

// ImportantNotice is one entry of the notice rotation shown on the home screen.
type ImportantNotice struct {
	Topic   string `json:"topic,omitempty"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	CTA     *CTA   `json:"cta,omitempty"`
}

// HomeView is the resolved answer for one date: the three home screen cards.
type HomeView struct {
	Lunar     LunarDay        `json:"lunar"`
	Garden    GardenTip       `json:"garden"`
	Important ImportantNotice `json:"important"`
}

// CalendarView is a month document with its guides attached. The month fields
// stay at the top level of the JSON body, guides under the "guides" key.
type CalendarView struct {
	MonthDocument
	Guides GuideDocument `json:"guides"`
}

// Request carries the home view query parameters.
type Request struct {
	Date   string
	Region string
}
