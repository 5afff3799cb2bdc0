package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoundResult is the posted winning result for one round. Re-posting a result
// for the same product+date replaces the previous one and triggers a full
// settlement recompute.
type RoundResult struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LotteryProductID primitive.ObjectID `bson:"lotteryProductId" json:"lotteryProductId"`
	RoundDate        string             `bson:"roundDate" json:"roundDate"`
	Top3             string             `bson:"top3" json:"top3"`       // 3 digits
	Bottom2          string             `bson:"bottom2" json:"bottom2"` // 2 digits
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SettlementSummary is what the settlement collaborator reports after
// processing a posted result
type SettlementSummary struct {
	TotalTicketsProcessed int     `json:"totalTicketsProcessed"`
	TotalWinners          int     `json:"totalWinners"`
	TotalPayout           float64 `json:"totalPayout"`
}

// PostResultRequest is the payload for posting a round result
type PostResultRequest struct {
	RoundDate string `json:"roundDate" binding:"required"`
	Top3      string `json:"top3" binding:"required"`
	Bottom2   string `json:"bottom2" binding:"required"`
}
