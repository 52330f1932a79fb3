package domain

// RowInput is one row of a JSON submission
type RowInput struct {
	Project   string `json:"project"            validate:"required,max=200" example:"Work"`
	StartTime string `json:"start_time"         validate:"required,max=5"   example:"0915"`
	EndTime   string `json:"end_time,omitempty" validate:"omitempty,max=5"  example:"10:30"`
	Comment   string `json:"comment,omitempty"  validate:"omitempty,max=2000" example:"standup;review"`
}

// SubmitInput is the JSON body of a time-report submission
type SubmitInput struct {
	Date string     `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-31"`
	Rows []RowInput `json:"rows" validate:"required,min=1,max=100,dive"`
}

// DeleteInput is the JSON body of a time-entry removal
type DeleteInput struct {
	Date       string   `json:"date"        validate:"required,datetime=2006-01-02" example:"2024-01-31"`
	StartTimes []string `json:"start_times" validate:"required,min=1,dive,datetime=15:04:05" example:"09:15:00"`
}

// ProjectInput is the JSON body for creating a project
type ProjectInput struct {
	Name string `json:"name" validate:"required,min=1,max=200" example:"Reading"`
}
