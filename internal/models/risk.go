package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RiskType represents how a limited number is treated at settlement
type RiskType string

const (
	RiskClose RiskType = "CLOSE" // stake refunded, never paid
	RiskHalf  RiskType = "HALF"  // paid at half the normal rate
)

// RiskEntry is an operator declaration limiting a single number for one bet
// type on one round. Unique per (lotteryProductId, roundDate, betType, number);
// a later write for the same tuple supersedes the earlier one.
type RiskEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LotteryProductID primitive.ObjectID `bson:"lotteryProductId" json:"lotteryProductId"`
	RoundDate        string             `bson:"roundDate" json:"roundDate"` // calendar date, YYYY-MM-DD
	BetType          BetTypeKey         `bson:"betType" json:"betType"`
	Number           string             `bson:"number" json:"number"`
	RiskType         RiskType           `bson:"riskType" json:"riskType"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// RiskItem is one number+type pair inside a batch commit
type RiskItem struct {
	Number  string     `json:"number"`
	BetType BetTypeKey `json:"betType"`
}

// RiskCommitRequest is the batch write payload for committing a pending set
type RiskCommitRequest struct {
	RoundDate string     `json:"roundDate" binding:"required"`
	RiskType  RiskType   `json:"riskType" binding:"required"`
	Items     []RiskItem `json:"items" binding:"required"`
}

// DistributeRequest carries free text for the bulk number distribution endpoint
type DistributeRequest struct {
	Text string `json:"text"`
}

// DistributeResponse reports the per-bucket result of a distribution
type DistributeResponse struct {
	Inserted int                     `json:"inserted"`
	Buckets  map[BetTypeKey][]string `json:"buckets"`
}
