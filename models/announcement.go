package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func ParsePriority(s string) (Priority, bool) {
	for _, p := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, true
		}
	}
	return "", false
}

type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title" validate:"required,max=200"`
	Content   string             `bson:"content" json:"content" validate:"required"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Priority  Priority           `bson:"priority" json:"priority" validate:"required,oneof=Low Normal High Urgent"`
	ExpiresAt *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsActive is false once the optional expiry has passed.
func (a *Announcement) IsActive(now time.Time) bool {
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}
