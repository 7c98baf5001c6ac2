package models

import "time"

// Vet is the provider profile this core reads scheduling inputs from.
// Timezone and NoticePeriod are treated as read-only inputs by the slot engine.
type Vet struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Timezone     string    `bson:"timezone" json:"timezone"`
	NoticePeriod int       `bson:"noticePeriod" json:"noticePeriod"` // minimum booking lead time, minutes
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
