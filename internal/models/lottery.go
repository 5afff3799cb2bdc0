package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleType represents how a lottery product schedules its rounds
type ScheduleType string

const (
	ScheduleWeekly  ScheduleType = "WEEKLY"
	ScheduleMonthly ScheduleType = "MONTHLY"
)

// LotteryProduct represents one lottery a shop sells. Times of day are stored
// as "HH:MM" strings; an empty CloseTime means the product never opens.
type LotteryProduct struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Code         string             `bson:"code" json:"code"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	ScheduleType ScheduleType       `bson:"scheduleType" json:"scheduleType"`
	// OpenDays is stored for WEEKLY products but not consulted when resolving
	// round windows. Reserved until per-weekday gating is a confirmed requirement.
	OpenDays      []string           `bson:"openDays,omitempty" json:"openDays,omitempty"`
	CloseDates    []int              `bson:"closeDates,omitempty" json:"closeDates,omitempty"` // days of month, 1-31, ascending
	OpenTime      string             `bson:"openTime,omitempty" json:"openTime,omitempty"`
	CloseTime     string             `bson:"closeTime,omitempty" json:"closeTime,omitempty"`
	ResultTime    string             `bson:"resultTime,omitempty" json:"resultTime,omitempty"`
	RateProfileID primitive.ObjectID `bson:"rateProfileId,omitempty" json:"rateProfileId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RoundStatusResponse is the payload for the round window endpoint, consumed
// by countdown displays
type RoundStatusResponse struct {
	LotteryID   string     `json:"lotteryId"`
	IsOpen      bool       `json:"isOpen"`
	NextCloseAt *time.Time `json:"nextCloseAt"`
}
