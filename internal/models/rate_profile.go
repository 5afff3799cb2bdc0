package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BetTypeRate holds the payout configuration for a single bet type within a
// rate profile. Limit = 0 means unlimited exposure is accepted.
type BetTypeRate struct {
	Pay   float64 `bson:"pay" json:"pay"`
	Min   float64 `bson:"min" json:"min"`
	Max   float64 `bson:"max" json:"max"`
	Limit float64 `bson:"limit" json:"limit"`
}

// RateProfile maps bet type keys to their payout configuration. A product
// references exactly one active profile at a time.
type RateProfile struct {
	ID        primitive.ObjectID         `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string                     `bson:"name" json:"name"`
	Rates     map[BetTypeKey]BetTypeRate `bson:"rates" json:"rates"`
	CreatedAt time.Time                  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time                  `bson:"updatedAt" json:"updatedAt"`
}

// RateFor returns the rate entry for a bet type. A key missing from the
// profile is treated as a fully closed type (pay = 0), never an error.
func (p *RateProfile) RateFor(key BetTypeKey) BetTypeRate {
	if p == nil || p.Rates == nil {
		return BetTypeRate{}
	}
	rate, ok := p.Rates[key]
	if !ok {
		return BetTypeRate{}
	}
	return rate
}
