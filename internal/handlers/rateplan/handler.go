package rateplan

import (
	"net/http"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/rateplan/model"
	"hotelbook/internal/domains/rateplan/model/dto"
	"hotelbook/internal/domains/rateplan/service"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RatePlan
	otel    otel.Otel
}

func New(service service.RatePlan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rate-plans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRatePlan)
		routerGroup.Get("/", handler.GetRatePlans)
		routerGroup.Get("/{id}", handler.GetRatePlanByID)
		routerGroup.Patch("/{id}", handler.UpdateRatePlan)
		routerGroup.Delete("/{id}", handler.DeleteRatePlan)
	})
}

// CreateRatePlan handles the creation of a rate plan.
// @Summary Create a rate plan
// @Tags RatePlan
// @Accept json
// @Produce json
// @Param request body dto.CreateRatePlanRequest true "Create Rate Plan Request"
// @Success 201 {object} response.Data[dto.RatePlanResponse] "Rate plan created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rate-plans [post]
// @Security BearerAuth
func (handler *Handler) CreateRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRatePlan")
	defer scope.End()

	req := dto.CreateRatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRatePlans lists rate plans.
// @Summary Get all rate plans
// @Tags RatePlan
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type_id query string false "Filter by room type"
// @Param refundable query boolean false "Filter by refundability"
// @Success 200 {object} response.Data[dto.GetRatePlansResponse] "List of rate plans"
// @Failure 500 {object} response.Error
// @Router /v1/rate-plans [get]
func (handler *Handler) GetRatePlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatePlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := map[string]any{
		model.FieldRoomTypeID: r.URL.Query().Get(model.FieldRoomTypeID),
	}

	if refundable := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldRefundable)); refundable != nil {
		filters[model.FieldRefundable] = *refundable
	}

	res, err := handler.service.GetAll(ctx, queryParams, shared.FilterByFields(model.TableName, filters))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRatePlanByID retrieves a rate plan.
// @Summary Get a rate plan by ID
// @Tags RatePlan
// @Produce json
// @Param id path string true "Rate Plan ID"
// @Success 200 {object} response.Data[dto.RatePlanResponse] "Rate plan details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rate-plans/{id} [get]
func (handler *Handler) GetRatePlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatePlanByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate plan by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRatePlan updates a rate plan.
// @Summary Update a rate plan by ID
// @Tags RatePlan
// @Accept json
// @Produce json
// @Param id path string true "Rate Plan ID"
// @Param request body dto.UpdateRatePlanRequest true "Update Rate Plan Request"
// @Success 200 {object} response.Message "Rate plan updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rate-plans/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRatePlan")
	defer scope.End()

	req := dto.UpdateRatePlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rate plan updated successfully")
}

// DeleteRatePlan removes a rate plan.
// @Summary Delete a rate plan by ID
// @Tags RatePlan
// @Produce json
// @Param id path string true "Rate Plan ID"
// @Success 200 {object} response.Message "Rate plan deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rate-plans/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRatePlan")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rate plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rate plan deleted successfully")
}
