package vehicle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"transbook/infras/otel"
	"transbook/internal/domains/vehicle/model/dto"
	"transbook/internal/domains/vehicle/service"
	"transbook/shared/constant"
	"transbook/shared/validator"
	"transbook/transport/http/response"
)

type Handler struct {
	service service.Vehicle
	otel    otel.Otel
}

func New(service service.Vehicle, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vehicles", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateVehicle)
		routerGroup.Get("/", handler.GetVehicles)
		routerGroup.Put("/{id}", handler.UpdateVehicleAvailability)
		routerGroup.Delete("/{id}", handler.DeleteVehicle)
	})
}

// CreateVehicle registers a new vehicle in the fleet.
// @Summary Create a new vehicle
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Create Vehicle Request"
// @Success 201 {object} dto.CreateVehicleResponse "Vehicle created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vehicles [post]
func (handler *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateVehicle")
	defer scope.End()

	req := dto.CreateVehicleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetVehicles lists every vehicle in the fleet.
// @Summary Get all vehicles
// @Tags Vehicle
// @Produce json
// @Success 200 {array} dto.VehicleResponse "List of vehicles"
// @Failure 500 {object} response.Error
// @Router /api/vehicles [get]
func (handler *Handler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVehicles")
	defer scope.End()

	vehicles, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vehicles")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicles retrieved successfully")

	response.WithJSON(w, http.StatusOK, vehicles)
}

// UpdateVehicleAvailability toggles whether a vehicle can be booked.
// @Summary Update vehicle availability
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Update Availability Request"
// @Success 200 {object} response.Message "Vehicle updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/vehicles/{id} [put]
func (handler *Handler) UpdateVehicleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateVehicleAvailability")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateVehicleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateAvailability(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update vehicle availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle availability updated")

	response.WithMessage(w, http.StatusOK, "Vehicle updated successfully")
}

// DeleteVehicle removes a vehicle from the fleet.
// @Summary Delete a vehicle
// @Tags Vehicle
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle deleted successfully"
// @Failure 500 {object} response.Error
// @Router /api/vehicles/{id} [delete]
func (handler *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete vehicle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Vehicle deleted successfully")

	response.WithMessage(w, http.StatusOK, "Vehicle deleted successfully")
}
