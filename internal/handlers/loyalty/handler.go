package loyalty

import (
	"net/http"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/loyalty/model/dto"
	"hotelbook/internal/domains/loyalty/service"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Loyalty
	otel    otel.Otel
}

func New(service service.Loyalty, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/loyalty", func(routerGroup chi.Router) {
		routerGroup.Get("/benefits", handler.GetBenefits)
		routerGroup.Get("/balance", handler.GetBalance)
		routerGroup.Get("/history", handler.GetHistory)
		routerGroup.Post("/redeem", handler.Redeem)
		routerGroup.Post("/users/{id}/adjust", handler.Adjust)
		routerGroup.Get("/users/{id}/reconcile", handler.Reconcile)
	})
}

// GetBenefits lists the perks of every tier.
// @Summary Get tier benefits
// @Tags Loyalty
// @Produce json
// @Success 200 {object} response.Data[[]dto.BenefitResponse] "Tier benefits"
// @Router /v1/loyalty/benefits [get]
func (handler *Handler) GetBenefits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBenefits")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Benefits(ctx))
}

// GetBalance returns the point balance and tier of the current user.
// @Summary Get my loyalty balance
// @Tags Loyalty
// @Produce json
// @Success 200 {object} response.Data[dto.BalanceResponse] "Balance"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/balance [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Balance(ctx, user)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHistory lists the ledger entries of the current user, newest first.
// @Summary Get my loyalty history
// @Tags Loyalty
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.HistoryResponse] "Ledger entries"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.History(ctx, user, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get loyalty history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Redeem spends points of the current user and returns the discount they are worth.
// @Summary Redeem points
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param request body dto.RedeemRequest true "Redeem Request"
// @Success 200 {object} response.Data[dto.RedemptionResponse] "Points redeemed"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/redeem [post]
// @Security BearerAuth
func (handler *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Redeem")
	defer scope.End()

	req := dto.RedeemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	res, err := handler.service.Redeem(ctx, user, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to redeem points")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Adjust applies a manual correction to a user's balance.
// @Summary Adjust a user's points
// @Tags Loyalty
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.AdjustRequest true "Adjust Request"
// @Success 200 {object} response.Data[dto.BalanceResponse] "New balance"
// @Failure 400 {object} response.Error
// @Failure 402 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/users/{id}/adjust [post]
// @Security BearerAuth
func (handler *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Adjust")
	defer scope.End()

	req := dto.AdjustRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Adjust(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust points")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Points of " + id + " adjusted by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// Reconcile compares the stored balance of a user with the sum of their ledger.
// @Summary Reconcile a user's points
// @Tags Loyalty
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Data[dto.ReconcileResponse] "Reconciliation result"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/loyalty/users/{id}/reconcile [get]
// @Security BearerAuth
func (handler *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reconcile")
	defer scope.End()

	res, err := handler.service.Reconcile(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reconcile points")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
