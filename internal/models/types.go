package models

// Shared column types persisted as JSON (gorm serializer).

type StringList []string

type JSONMap map[string]any

// DayHours is one weekday's opening window ("09:00" / "18:00").
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// WorkingHours maps lowercase weekday names to opening windows.
type WorkingHours map[string]DayHours

// Availability maps lowercase weekday names to ordered,
// non-overlapping "HH:MM-HH:MM" ranges.
type Availability map[string][]string

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
