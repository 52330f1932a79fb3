// Package domain defines the types and ports of the time-report service
package domain

import (
	"time"

	"reduce/internal/core/clock"
)

// Project is a named category time is reported against
type Project struct {
	ID   int32  `json:"id"   example:"1"`
	Name string `json:"name" example:"Work"`
}

// ProjectInfo is a project resolved for a day, with the comment already stored
// for that day if any
type ProjectInfo struct {
	ID      int32
	Name    string
	Comment *string
}

// Entry is one persisted time entry as read back for a day
type Entry struct {
	Project string      `json:"project"       example:"Work"`
	Start   clock.Time  `json:"start"         swaggertype:"string" example:"09:15"`
	End     *clock.Time `json:"end,omitempty" swaggertype:"string" example:"10:30"`
}

// DayComment is the stored comment of a project for a day
type DayComment struct {
	Project string
	Content string
}

// InsertResult is returned by a successful submission
// comment upserts are not counted
type InsertResult struct {
	Day      time.Time `json:"day"               example:"2024-01-31T00:00:00Z"`
	Inserted int       `json:"inserted"          example:"3"`
	Dropped  []string  `json:"dropped,omitempty" example:"Archived"`
}

// DeleteResult is returned by a successful deletion
type DeleteResult struct {
	Day     time.Time `json:"day"     example:"2024-01-31T00:00:00Z"`
	Deleted int       `json:"deleted" example:"2"`
}

// PickerProject groups the entries and comment of one project
type PickerProject struct {
	Name    string  `json:"name"              example:"Work"`
	Entries []Entry `json:"entries"`
	Comment string  `json:"comment,omitempty" example:"standup"`
}

// Picker is the day view used to select entries for removal
type Picker struct {
	Day      time.Time       `json:"day"      example:"2024-01-31T00:00:00Z"`
	Projects []PickerProject `json:"projects"`
}

// Index is everything the time-report page needs for a day
type Index struct {
	Day      time.Time `json:"day"`
	Projects []string  `json:"projects"`
	Picker   Picker    `json:"picker"`
}
