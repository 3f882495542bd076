package driver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"transbook/infras/otel"
	"transbook/internal/domains/driver/service"
	"transbook/shared/constant"
	"transbook/transport/http/response"
)

type Handler struct {
	service service.Driver
	otel    otel.Otel
}

func New(service service.Driver, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/drivers", handler.GetDrivers)
}

// GetDrivers lists every driver with availability and rating.
// @Summary Get all drivers
// @Tags Driver
// @Produce json
// @Success 200 {array} dto.DriverResponse "List of drivers"
// @Failure 500 {object} response.Error
// @Router /api/drivers [get]
func (handler *Handler) GetDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDrivers")
	defer scope.End()

	drivers, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get drivers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Drivers retrieved successfully")

	response.WithJSON(w, http.StatusOK, drivers)
}
