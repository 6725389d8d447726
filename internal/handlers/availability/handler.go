package availability

import (
	"net/http"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/availability/model/dto"
	"hotelbook/internal/domains/availability/service"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.Search)
}

// Search lists the room types sellable for a stay, each with its price breakdown.
// @Summary Search availability
// @Tags Availability
// @Produce json
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query integer true "Number of guests"
// @Success 200 {object} response.Data[dto.SearchResponse] "Available room types"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	query := r.URL.Query()
	req := dto.SearchRequest{
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
	}

	if guests, err := shared.ConvertStringToInt(query.Get(constant.RequestParamGuests)); err == nil {
		req.Guests = guests
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
