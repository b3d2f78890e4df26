package models

import "time"

// Vehicle is a customer's vehicle on record.
type Vehicle struct {
	ID           string `bson:"id" json:"id"`
	Registration string `bson:"registration" json:"registration"`
	Make         string `bson:"make,omitempty" json:"make,omitempty"`
	Model        string `bson:"model,omitempty" json:"model,omitempty"`
	Year         int    `bson:"year,omitempty" json:"year,omitempty"`
	Notes        string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Customer is a garage customer with their vehicles.
type Customer struct {
	ID        string    `bson:"id" json:"id"`
	GarageID  string    `bson:"garage_id" json:"garageId"`
	Name      string    `bson:"name" json:"name"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Vehicles  []Vehicle `bson:"vehicles,omitempty" json:"vehicles,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
