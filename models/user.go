package models

import "time"

// StaffUser is a dashboard account (garage staff).
type StaffUser struct {
	ID           string    `bson:"id" json:"id"`
	GarageID     string    `bson:"garage_id" json:"garageId"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "admin" or "staff"
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}
