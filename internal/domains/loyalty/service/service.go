package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelbook/config"
	"hotelbook/infras/otel"
	"hotelbook/internal/domains/loyalty/model"
	"hotelbook/internal/domains/loyalty/model/dto"
	"hotelbook/internal/domains/loyalty/repository"
	userModel "hotelbook/internal/domains/user/model"
	userRepo "hotelbook/internal/domains/user/repository"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/failure"
	"hotelbook/shared/timezone"
	"hotelbook/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultRedeemValue = 100

	errUserNotFound        = "user not found"
	errInsufficientBalance = "insufficient loyalty points"
	errNegativeBalance     = "adjustment would make the balance negative"
)

type Loyalty interface {
	// EarnTx credits points inside the caller's transaction. Zero points is a no-op.
	EarnTx(ctx context.Context, sqltx *sqlx.Tx, userID, bookingID string, points int64) error
	Redeem(ctx context.Context, userID string, req dto.RedeemRequest) (dto.RedemptionResponse, error)
	Adjust(ctx context.Context, userID string, req dto.AdjustRequest) (dto.BalanceResponse, error)
	Balance(ctx context.Context, userID string) (dto.BalanceResponse, error)
	History(ctx context.Context, userID string, params gDto.QueryParams) (dto.HistoryResponse, error)
	Reconcile(ctx context.Context, userID string) (dto.ReconcileResponse, error)
	Benefits(ctx context.Context) []dto.BenefitResponse
}

type serviceImpl struct {
	repo      repository.Ledger
	userRepo  userRepo.User
	txManager transaction.Manager
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Ledger, userRepo userRepo.User, txManager transaction.Manager, cfg *config.Config, otel otel.Otel) Loyalty {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		txManager: txManager,
		cfg:       cfg,
		otel:      otel,
	}
}

type movement struct {
	userID    string
	delta     int64
	action    model.Action
	bookingID *string
	reason    *string
	actor     string
}

func (s *serviceImpl) EarnTx(ctx context.Context, sqltx *sqlx.Tx, userID, bookingID string, points int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.EarnTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if points <= 0 {
		return nil
	}

	_, err = s.apply(ctx, sqltx, movement{
		userID:    userID,
		delta:     points,
		action:    model.ActionEarn,
		bookingID: &bookingID,
		actor:     actor(ctx),
	})

	return err
}

func (s *serviceImpl) Redeem(ctx context.Context, userID string, req dto.RedeemRequest) (res dto.RedemptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.Redeem")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Points < 1 {
		return res, failure.BadRequestFromString("points must be at least 1") //nolint:wrapcheck
	}

	var user userModel.User

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		user, txErr = s.apply(ctx, tx, movement{
			userID: userID,
			delta:  -req.Points,
			action: model.ActionRedeem,
			actor:  actor(ctx),
		})

		return txErr
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.RedemptionResponse{
		PointsRedeemed: req.Points,
		DiscountAmount: req.Points * s.redeemValue(),
		Balance:        user.PointsBalance,
		Tier:           user.Tier,
	}, nil
}

func (s *serviceImpl) Adjust(ctx context.Context, userID string, req dto.AdjustRequest) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.Adjust")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Delta == 0 {
		return res, failure.BadRequestFromString("delta must not be zero") //nolint:wrapcheck
	}

	var user userModel.User

	err = s.txManager.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var txErr error

		user, txErr = s.apply(ctx, tx, movement{
			userID: userID,
			delta:  req.Delta,
			action: model.ActionAdjust,
			reason: &req.Reason,
			actor:  actor(ctx),
		})

		return txErr
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	return dto.BalanceResponse{UserID: user.ID, Balance: user.PointsBalance, Tier: user.Tier}, nil
}

// apply locks the user row, appends the ledger entry and stores the new balance and tier.
func (s *serviceImpl) apply(ctx context.Context, tx *sqlx.Tx, m movement) (userModel.User, error) {
	filter := shared.FilterByID(m.userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		log.Error().Err(err).Str("user_id", m.userID).Msg("failed to lock user for loyalty")

		return user, fmt.Errorf("failed to lock user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound(errUserNotFound) //nolint:wrapcheck
	}

	balance := user.PointsBalance + m.delta
	if balance < 0 {
		if m.action == model.ActionRedeem {
			return user, failure.InsufficientBalance(errInsufficientBalance) //nolint:wrapcheck
		}

		return user, failure.BadRequestFromString(errNegativeBalance) //nolint:wrapcheck
	}

	now := timezone.Now()

	entry := model.LedgerEntry{
		ID:        uuid.NewString(),
		UserID:    m.userID,
		Delta:     m.delta,
		Action:    m.action,
		BookingID: m.bookingID,
		Reason:    m.reason,
		CreatedAt: now,
		CreatedBy: m.actor,
	}

	if err = s.repo.InsertTx(ctx, tx, entry); err != nil {
		log.Error().Err(err).Str("user_id", m.userID).Msg("failed to append loyalty entry")

		return user, fmt.Errorf("failed to append loyalty entry: %w", err)
	}

	tier := model.TierFor(balance)

	update := map[string]any{
		userModel.FieldPointsBalance: balance,
		userModel.FieldTier:          tier,
		constant.FieldModifiedAt:     now,
		constant.FieldModifiedBy:     m.actor,
	}

	if err = s.userRepo.UpdateTx(ctx, tx, update, filter); err != nil {
		log.Error().Err(err).Str("user_id", m.userID).Msg("failed to update points balance")

		return user, fmt.Errorf("failed to update points balance: %w", err)
	}

	user.PointsBalance = balance
	user.Tier = tier

	log.Info().Str("user_id", m.userID).Str("action", string(m.action)).Int64("delta", m.delta).
		Int64("balance", balance).Msg("loyalty balance updated")

	return user, nil
}

func (s *serviceImpl) Balance(ctx context.Context, userID string) (res dto.BalanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.Balance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	return dto.BalanceResponse{UserID: user.ID, Balance: user.PointsBalance, Tier: user.Tier}, nil
}

func (s *serviceImpl) History(ctx context.Context, userID string, params gDto.QueryParams) (res dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByFields(model.TableName, map[string]any{model.FieldUserID: userID})

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count loyalty entries")

		return res, fmt.Errorf("failed to count loyalty entries: %w", err)
	}

	entries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get loyalty entries")

		return res, fmt.Errorf("failed to get loyalty entries: %w", err)
	}

	res.FromModels(entries, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Reconcile(ctx context.Context, userID string) (res dto.ReconcileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".loyalty.Reconcile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.getUser(ctx, userID)
	if err != nil {
		return res, err
	}

	sum, err := s.repo.Sum(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to sum loyalty ledger")

		return res, fmt.Errorf("failed to sum loyalty ledger: %w", err)
	}

	res = dto.ReconcileResponse{
		UserID:        userID,
		LedgerSum:     sum,
		StoredBalance: user.PointsBalance,
		Consistent:    sum == user.PointsBalance,
	}

	if !res.Consistent {
		log.Warn().Str("user_id", userID).Int64("ledger_sum", sum).Int64("stored_balance", user.PointsBalance).
			Msg("loyalty balance drift detected")
	}

	return res, nil
}

func (s *serviceImpl) Benefits(_ context.Context) []dto.BenefitResponse {
	return dto.FromBenefits(model.Benefits())
}

func (s *serviceImpl) getUser(ctx context.Context, userID string) (userModel.User, error) {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound(errUserNotFound) //nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) redeemValue() int64 {
	if s.cfg.Loyalty.RedeemValue > 0 {
		return s.cfg.Loyalty.RedeemValue
	}

	return defaultRedeemValue
}

func actor(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.ContextGuest
}
