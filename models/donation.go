package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DonationMethod string

const (
	MethodCash  DonationMethod = "Cash"
	MethodGCash DonationMethod = "G-Cash"
)

type DonationStatus string

const (
	DonationCompleted DonationStatus = "Completed"
	DonationRefunded  DonationStatus = "Refunded"
)

// ParseDonationMethod accepts "cash", "gcash", "g-cash" and "g cash" in any case.
func ParseDonationMethod(s string) (DonationMethod, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", " ", "").Replace(norm)
	switch norm {
	case "cash":
		return MethodCash, true
	case "gcash":
		return MethodGCash, true
	}
	return "", false
}

func ParseDonationStatus(s string) (DonationStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "completed":
		return DonationCompleted, true
	case "refunded":
		return DonationRefunded, true
	}
	return "", false
}

// Donation records money received. DonorName is free text and need not match a User.
type Donation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonorName       string             `bson:"donorName" json:"donorName" validate:"required,max=200"`
	Amount          float64            `bson:"amount" json:"amount" validate:"gte=0"`
	Method          DonationMethod     `bson:"method" json:"method" validate:"required,oneof=Cash G-Cash"`
	Status          DonationStatus     `bson:"status" json:"status" validate:"required,oneof=Completed Refunded"`
	Date            time.Time          `bson:"date" json:"date" validate:"required"`
	ReferenceNumber string             `bson:"referenceNumber,omitempty" json:"referenceNumber,omitempty" validate:"max=100"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty" validate:"max=1000"`
	CreatedBy       primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DonationMethodStats is one group of the completed-donation aggregation.
type DonationMethodStats struct {
	Method  DonationMethod `bson:"_id" json:"method"`
	Total   float64        `bson:"total" json:"total"`
	Average float64        `bson:"average" json:"average"`
	Min     float64        `bson:"min" json:"min"`
	Max     float64        `bson:"max" json:"max"`
	Count   int64          `bson:"count" json:"count"`
}
