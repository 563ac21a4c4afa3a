package save_booking_draft

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	saveDraft "github.com/m04kA/SMC-ParkingService/internal/usecase/save_draft"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSpotNotFound        = "парковка не найдена"
	msgNonConsecutiveSlots = "слоты должны образовывать непрерывную цепочку"
	msgInvalidInput        = "некорректные данные черновика"
)

type Handler struct {
	useCase SaveDraftUseCase
	logger  Logger
}

func NewHandler(useCase SaveDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req SaveDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в запрос use case
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking-drafts - Invalid request data: user_id=%d, error=%v", req.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сохраняем черновик
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, saveDraft.ErrSpotNotFound):
			h.logger.Warn("POST /booking-drafts - Spot not found: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, saveDraft.ErrNonConsecutiveSlots):
			h.logger.Warn("POST /booking-drafts - Non-consecutive slots: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgNonConsecutiveSlots)

		case errors.Is(err, saveDraft.ErrInvalidInput):
			h.logger.Warn("POST /booking-drafts - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-drafts - Failed to save draft: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /booking-drafts - Draft saved successfully: draft_id=%s, user_id=%d, expires_at=%s",
		result.ID, req.UserID, response.ExpiresAt)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
