package channel

import (
	"net/http"

	"hotelbook/infras/otel"
	"hotelbook/internal/domains/channel/model"
	"hotelbook/internal/domains/channel/model/dto"
	"hotelbook/internal/domains/channel/service"
	"hotelbook/shared"
	"hotelbook/shared/constant"
	gDto "hotelbook/shared/dto"
	"hotelbook/shared/validator"
	"hotelbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Channel
	otel    otel.Otel
}

func New(service service.Channel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/channels", func(routerGroup chi.Router) {
		routerGroup.Get("/providers", handler.GetProviders)
		routerGroup.Post("/{provider}/sync", handler.TriggerSync)
		routerGroup.Get("/logs", handler.GetSyncLogs)
		routerGroup.Post("/mappings", handler.CreateMapping)
		routerGroup.Get("/mappings", handler.GetMappings)
		routerGroup.Patch("/mappings/{id}", handler.UpdateMapping)
		routerGroup.Delete("/mappings/{id}", handler.DeleteMapping)
	})
}

// GetProviders lists the enabled channel providers.
// @Summary Get enabled providers
// @Tags Channel
// @Produce json
// @Success 200 {object} response.Data[[]dto.ProviderResponse] "Providers"
// @Router /v1/channels/providers [get]
// @Security BearerAuth
func (handler *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviders")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Providers(ctx))
}

// TriggerSync runs one sync operation against a provider right away.
// @Summary Trigger a sync
// @Description A sync that fails after retries answers 502 with the same body as a successful one.
// @Tags Channel
// @Accept json
// @Produce json
// @Param provider path string true "Provider name"
// @Param request body dto.TriggerRequest true "Trigger Request"
// @Success 200 {object} response.Data[dto.SyncResponse] "Sync result"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 502 {object} response.Data[dto.SyncResponse] "Sync failed"
// @Router /v1/channels/{provider}/sync [post]
// @Security BearerAuth
func (handler *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TriggerSync")
	defer scope.End()

	req := dto.TriggerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Trigger(ctx, chi.URLParam(r, constant.RequestParamProvider), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to trigger sync")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Sync " + res.Operation + " on " + res.Provider + " triggered by user " + user)

	if !res.Success {
		response.WithJSON(w, http.StatusBadGateway, res)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSyncLogs lists recorded provider exchanges, newest first.
// @Summary Get sync logs
// @Tags Channel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param provider query string false "Filter by provider"
// @Param operation query string false "Filter by operation"
// @Param success query boolean false "Filter by outcome"
// @Success 200 {object} response.Data[dto.GetSyncLogsResponse] "Sync logs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/channels/logs [get]
// @Security BearerAuth
func (handler *Handler) GetSyncLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSyncLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetSyncLogsRequest{
		Provider:  query.Get(model.FieldProvider),
		Operation: query.Get(model.FieldOperation),
		Success:   shared.ConvertStringToBool(query.Get(model.FieldSuccess)),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetSyncLogs(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sync logs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateMapping links a room type to a provider's room code.
// @Summary Create a channel mapping
// @Tags Channel
// @Accept json
// @Produce json
// @Param request body dto.CreateMappingRequest true "Create Mapping Request"
// @Success 201 {object} response.Data[dto.MappingResponse] "Mapping created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/channels/mappings [post]
// @Security BearerAuth
func (handler *Handler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMapping")
	defer scope.End()

	req := dto.CreateMappingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateMapping(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create mapping")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMappings lists channel mappings.
// @Summary Get channel mappings
// @Tags Channel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param provider query string false "Filter by provider"
// @Param room_type_id query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetMappingsResponse] "Mappings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/channels/mappings [get]
// @Security BearerAuth
func (handler *Handler) GetMappings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMappings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	req := dto.GetMappingsRequest{
		Provider:   query.Get(model.FieldProvider),
		RoomTypeID: query.Get(model.FieldRoomTypeID),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetMappings(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get mappings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateMapping changes the external code or active flag of a mapping.
// @Summary Update a channel mapping
// @Tags Channel
// @Accept json
// @Produce json
// @Param id path string true "Mapping ID"
// @Param request body dto.UpdateMappingRequest true "Update Mapping Request"
// @Success 200 {object} response.Message "Mapping updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/channels/mappings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMapping(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMapping")
	defer scope.End()

	req := dto.UpdateMappingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMapping(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update mapping")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Mapping updated successfully")
}

// DeleteMapping removes a channel mapping.
// @Summary Delete a channel mapping
// @Tags Channel
// @Produce json
// @Param id path string true "Mapping ID"
// @Success 200 {object} response.Message "Mapping deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/channels/mappings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMapping")
	defer scope.End()

	if err := handler.service.DeleteMapping(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete mapping")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Mapping deleted successfully")
}
