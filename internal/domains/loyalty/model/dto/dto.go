package dto

import (
	"hotelbook/internal/domains/loyalty/model"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	"hotelbook/shared/timezone"
)

type RedeemRequest struct {
	Points int64 `json:"points" validate:"required,gte=1"`
}

type AdjustRequest struct {
	Delta  int64  `json:"delta"  validate:"required"`
	Reason string `json:"reason" validate:"required,min=3,max=255"`
}

type RedemptionResponse struct {
	PointsRedeemed int64  `json:"points_redeemed"`
	DiscountAmount int64  `json:"discount_amount"`
	Balance        int64  `json:"balance"`
	Tier           string `json:"tier"`
}

type BalanceResponse struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Tier    string `json:"tier"`
}

type ReconcileResponse struct {
	UserID        string `json:"user_id"`
	LedgerSum     int64  `json:"ledger_sum"`
	StoredBalance int64  `json:"stored_balance"`
	Consistent    bool   `json:"consistent"`
}

type LedgerEntryResponse struct {
	ID        string  `json:"id"`
	Delta     int64   `json:"delta"`
	Action    string  `json:"action"`
	BookingID *string `json:"booking_id,omitempty"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func (r *LedgerEntryResponse) FromModel(m model.LedgerEntry) {
	r.ID = m.ID
	r.Delta = m.Delta
	r.Action = string(m.Action)
	r.BookingID = m.BookingID
	r.Reason = m.Reason
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type HistoryResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *HistoryResponse) FromModels(models []model.LedgerEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]LedgerEntryResponse, len(models))
	for i, m := range models {
		r.Entries[i].FromModel(m)
	}
}

type BenefitResponse struct {
	Tier       string   `json:"tier"`
	MinPoints  int64    `json:"min_points"`
	Multiplier string   `json:"multiplier"`
	Perks      []string `json:"perks"`
}

func FromBenefits(benefits []model.Benefit) []BenefitResponse {
	res := make([]BenefitResponse, len(benefits))
	for i, b := range benefits {
		res[i] = BenefitResponse{Tier: b.Tier, MinPoints: b.MinPoints, Multiplier: b.Multiplier, Perks: b.Perks}
	}

	return res
}
