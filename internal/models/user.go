package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered patient. The login identifier is the card number.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"fullName" json:"fullName"`
	CardNumber string             `bson:"cardNumber" json:"cardNumber"`
	Phone      string             `bson:"phone" json:"phone"`
	DOB        string             `bson:"dob" json:"dob"`
	Password   string             `bson:"password" json:"-"` // Hide from JSON responses
}
