package domain

// AddInput is the bound body of an add request, form or JSON
type AddInput struct {
	Description  string `json:"description"   validate:"required,min=1,max=500"  example:"Descale kettle"`
	CooldownDays int    `json:"cooldown_days" validate:"required,min=1,max=3650" example:"30"`
	// Due defaults to today when empty
	Due string `json:"due" validate:"omitempty,datetime=2006-01-02" example:"2024-03-10"`
}
