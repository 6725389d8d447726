package model

import (
	"time"
)

const (
	TableName  = "loyalty_ledger"
	EntityName = "loyalty ledger"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldDelta     = "delta"
	FieldAction    = "action"
	FieldBookingID = "booking_id"
	FieldCreatedAt = "created_at"
)

type Action string

const (
	ActionEarn   Action = "EARN"
	ActionRedeem Action = "REDEEM"
	ActionAdjust Action = "ADJUST"
)

const (
	TierBronze   = "BRONZE"
	TierSilver   = "SILVER"
	TierGold     = "GOLD"
	TierPlatinum = "PLATINUM"
)

// LedgerEntry is one append-only balance movement. Delta is signed.
type LedgerEntry struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Delta     int64     `db:"delta"`
	Action    Action    `db:"action"`
	BookingID *string   `db:"booking_id"`
	Reason    *string   `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}

// Benefit describes what a tier advertises. None of it is applied to accrual.
type Benefit struct {
	Tier       string
	MinPoints  int64
	Multiplier string
	Perks      []string
}

var benefits = []Benefit{
	{Tier: TierBronze, MinPoints: 0, Multiplier: "1x", Perks: []string{"member rates"}},
	{Tier: TierSilver, MinPoints: 1000, Multiplier: "1.25x", Perks: []string{"member rates", "late checkout on request"}},
	{Tier: TierGold, MinPoints: 5000, Multiplier: "1.5x", Perks: []string{"member rates", "late checkout", "room upgrade on availability"}},
	{Tier: TierPlatinum, MinPoints: 20000, Multiplier: "2x", Perks: []string{"member rates", "late checkout", "guaranteed upgrade", "airport transfer"}},
}

// Benefits returns the tier table ordered from lowest to highest tier.
func Benefits() []Benefit {
	out := make([]Benefit, len(benefits))
	copy(out, benefits)

	return out
}

// TierFor maps a points balance to its tier.
func TierFor(balance int64) string {
	tier := TierBronze

	for _, b := range benefits {
		if balance >= b.MinPoints {
			tier = b.Tier
		}
	}

	return tier
}
