package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

// ParseRole matches a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "member":
		return RoleMember, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username" validate:"required,min=3,max=30"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	PasswordHash string             `bson:"password" json:"-" validate:"required"`

	Name     string     `bson:"name" json:"name" validate:"required,max=100"`
	Age      int        `bson:"age,omitempty" json:"age,omitempty" validate:"gte=0,lte=120"`
	Birthday *time.Time `bson:"birthday,omitempty" json:"birthday,omitempty"`
	Phone    string     `bson:"phone,omitempty" json:"phone,omitempty" validate:"max=30"`
	Address  string     `bson:"address,omitempty" json:"address,omitempty" validate:"max=255"`

	Organization string `bson:"organization,omitempty" json:"organization,omitempty" validate:"max=120"`
	Committee    string `bson:"committee,omitempty" json:"committee,omitempty" validate:"max=120"`

	Role             Role                 `bson:"role" json:"role" validate:"required,oneof=Member Admin"`
	IsApproved       bool                 `bson:"isApproved" json:"isApproved"`
	RegisteredEvents []primitive.ObjectID `bson:"registeredEvents" json:"registeredEvents"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanParticipate is the approval gate: approved members and every admin.
func (u *User) CanParticipate() bool {
	return u.IsApproved || u.IsAdmin()
}
