package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin accounts are provisioned out of band; there is no registration
// endpoint for them. The login identifier is the username.
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
}
