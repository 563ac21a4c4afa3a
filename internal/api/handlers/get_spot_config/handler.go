package get_spot_config

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spotconfig"
)

const (
	msgInvalidSpotID = "некорректный ID парковки"
	msgNotFound      = "парковка не найдена"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spots/{spotId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spotId из URL
	vars := mux.Vars(r)
	spotID, err := uuid.Parse(vars["spotId"])
	if err != nil {
		h.logger.Warn("GET /spots/{id}/config - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	// Получаем конфигурацию парковки
	result, err := h.service.Get(r.Context(), spotID)
	if err != nil {
		if errors.Is(err, spotconfig.ErrSpotNotFound) {
			h.logger.Warn("GET /spots/{id}/config - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("GET /spots/{id}/config - Failed to get config: spot_id=%s, error=%v", spotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /spots/{id}/config - Config retrieved successfully: spot_id=%s", spotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
