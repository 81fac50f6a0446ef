package reservation

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tandoor/infras/otel"
	"tandoor/internal/domains/reservation/model/dto"
	"tandoor/internal/domains/reservation/service"
	"tandoor/shared/constant"
	"tandoor/shared/failure"
	"tandoor/shared/validator"
	"tandoor/transport/http/response"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/reservations", handler.CreateReservation)
	router.Post("/api/reservation/{id}/confirm", handler.ConfirmReservation)
}

// CreateReservation handles a reservation request submission.
// @Summary Submit a reservation request
// @Description Create a pending table reservation. A notification mail is attempted after the record is stored; its outcome never affects the response.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, reservation)
}

// ConfirmReservation transitions a reservation from pending to confirmed.
// @Summary Confirm a reservation
// @Description Confirm a pending reservation by id. Confirming twice is harmless.
// @Tags Reservation
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} dto.ConfirmReservationResponse "Reservation confirmed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/api/reservation/{id}/confirm [post]
func (handler *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmReservation")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid reservation id"))

		return
	}

	reservation, err := handler.service.Confirm(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation confirmed successfully")

	response.WithPlainJSON(w, http.StatusOK, dto.ConfirmReservationResponse{
		Status:      "success",
		Message:     "Reservation confirmed",
		Reservation: reservation,
	})
}
