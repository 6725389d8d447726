package model

import (
	"time"

	"hotelbook/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldLevel         = "level"
	FieldFullName      = "full_name"
	FieldPhone         = "phone"
	FieldPointsBalance = "points_balance"
	FieldTier          = "tier"
	FieldLastLogin     = "last_login"
	FieldActive        = "active"

	// DefaultTier is the loyalty tier of an account with no points.
	DefaultTier = "BRONZE"
)

type User struct {
	ID            string     `db:"id"`
	Email         string     `db:"email"`
	Password      string     `db:"password"`
	Level         string     `db:"level"`
	FullName      *string    `db:"full_name"`
	Phone         *string    `db:"phone"`
	PointsBalance int64      `db:"points_balance"`
	Tier          string     `db:"tier"`
	LastLogin     *time.Time `db:"last_login"`
	Active        bool       `db:"active"`
	model.Metadata
}
