package inventory

import (
	"net/http"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/inventory/model/dto"
	"hotelbook/internal/domains/inventory/service"
	"hotelbook/shared/constant"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Inventory
	otel    otel.Otel
}

func New(service service.Inventory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inventory", func(routerGroup chi.Router) {
		routerGroup.Put("/", handler.UpsertInventory)
		routerGroup.Get("/", handler.GetInventory)
	})
}

// UpsertInventory sets the allotment of a room type for every night in [from, to).
// @Summary Set inventory over a date range
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.UpsertInventoryRequest true "Upsert Inventory Request"
// @Success 200 {object} response.Data[dto.UpsertInventoryResponse] "Inventory updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [put]
// @Security BearerAuth
func (handler *Handler) UpsertInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertInventory")
	defer scope.End()

	req := dto.UpsertInventoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upsert(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert inventory")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Inventory updated by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetInventory lists inventory rows in [from, to).
// @Summary List inventory
// @Tags Inventory
// @Produce json
// @Param room_type_id query string false "Filter by room type"
// @Param from query string true "First date (YYYY-MM-DD)"
// @Param to query string true "Exclusive end date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.InventoryResponse] "Inventory rows"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inventory [get]
// @Security BearerAuth
func (handler *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventory")
	defer scope.End()

	query := r.URL.Query()
	req := dto.GetInventoryRequest{
		RoomTypeID: query.Get("room_type_id"),
		From:       query.Get(constant.RequestParamFrom),
		To:         query.Get(constant.RequestParamTo),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	rows, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rows)
}
