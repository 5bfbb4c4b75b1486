package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "Upcoming"
	EventStatusOngoing   EventStatus = "Ongoing"
	EventStatusCompleted EventStatus = "Completed"
	EventStatusCancelled EventStatus = "Cancelled"
)

var eventStatuses = []EventStatus{EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCancelled}

// ParseEventStatus matches a status name case-insensitively.
func ParseEventStatus(s string) (EventStatus, bool) {
	for _, st := range eventStatuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required,max=200"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Date        time.Time          `bson:"date" json:"date" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required,max=255"`
	Capacity    int                `bson:"capacity" json:"capacity" validate:"gte=0"` // 0 = unlimited
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`

	RegisteredUsers []primitive.ObjectID `bson:"registeredUsers" json:"registeredUsers"`
	InterestedUsers []primitive.ObjectID `bson:"interestedUsers" json:"interestedUsers"`

	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	Status    EventStatus        `bson:"status" json:"status" validate:"required,oneof=Upcoming Ongoing Completed Cancelled"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (e *Event) IsRegistered(userID primitive.ObjectID) bool {
	return containsID(e.RegisteredUsers, userID)
}

func (e *Event) IsInterested(userID primitive.ObjectID) bool {
	return containsID(e.InterestedUsers, userID)
}

// IsFull reports whether a capacity is set and reached.
func (e *Event) IsFull() bool {
	return e.Capacity > 0 && len(e.RegisteredUsers) >= e.Capacity
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
