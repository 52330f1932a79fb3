// Package domain holds the upkeep types and service contract
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Item is a recurring chore that becomes due again CooldownDays after completion
type Item struct {
	ID           uuid.UUID `json:"id"            swaggertype:"string" format:"uuid" example:"0b7c4c8a-3f0e-4b8e-9e55-52f1f0d5b6a1"`
	Description  string    `json:"description"   example:"Descale kettle"`
	CooldownDays int       `json:"cooldown_days" example:"30"`
	Due          time.Time `json:"due"           example:"2024-04-09T00:00:00Z"`
}

// ItemView is an item with its labels resolved against a day
type ItemView struct {
	Item
	// Days until due, negative when overdue
	Days  int    `json:"days"  example:"-1"`
	Label string `json:"label" example:"Due yesterday"`
	Rate  string `json:"rate"  example:"Every 30 days"`
}

// List is the upkeep page for one day
type List struct {
	Today   time.Time  `json:"today"   example:"2024-03-10T00:00:00Z"`
	Due     []ItemView `json:"due"`
	Backlog []ItemView `json:"backlog"`
}

// NewItem is what Add needs, a zero Due means the day Add is given
type NewItem struct {
	Description  string
	CooldownDays int
	Due          time.Time
}

// ServicePort is the upkeep service contract
type ServicePort interface {
	List(ctx context.Context, today time.Time) (List, error)
	Add(ctx context.Context, in NewItem, today time.Time) (Item, error)
	Complete(ctx context.Context, id uuid.UUID, today time.Time) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
