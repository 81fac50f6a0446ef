package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tandoor/infras/otel"
	contactService "tandoor/internal/domains/contact/service"
	menuService "tandoor/internal/domains/menu/service"
	reservationModel "tandoor/internal/domains/reservation/model"
	reservationService "tandoor/internal/domains/reservation/service"
	"tandoor/shared/constant"
	gDto "tandoor/shared/dto"
	"tandoor/shared/failure"
	"tandoor/shared/timezone"
	"tandoor/transport/http/middleware"
	"tandoor/transport/http/response"
)

// DashboardResponse aggregates row counts across every administered table.
type DashboardResponse struct {
	MenuItems    int `json:"menu_items"`
	Reservations int `json:"reservations"`
	Contacts     int `json:"contacts"`
}

type Handler struct {
	menu        menuService.Menu
	reservation reservationService.Reservation
	contact     contactService.Contact
	middleware  middleware.AppMiddleware
	otel        otel.Otel
}

func New(
	menu menuService.Menu,
	reservation reservationService.Reservation,
	contact contactService.Contact,
	middleware middleware.AppMiddleware,
	otel otel.Otel,
) Handler {
	return Handler{
		menu:        menu,
		reservation: reservation,
		contact:     contact,
		middleware:  middleware,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(router chi.Router) {
		router.Use(handler.middleware.AdminKey)

		router.Get("/", handler.GetDashboard)
		router.Get("/menu", handler.GetMenu)
		router.Get("/reservations", handler.GetReservations)
		router.Get("/contacts", handler.GetContacts)
	})
}

// GetDashboard returns row counts for the admin landing page.
// @Summary Admin dashboard counts
// @Description Row counts for menu items, reservations and contact messages.
// @Tags Admin
// @Produce json
// @Param X-API-Key header string true "Admin API Key"
// @Success 200 {object} response.Data[DashboardResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	menuCount, err := handler.menu.Count(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count menu items")

		response.WithError(w, err)

		return
	}

	reservationCount, err := handler.reservation.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count reservations")

		response.WithError(w, err)

		return
	}

	contactCount, err := handler.contact.Count(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to count contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, DashboardResponse{
		MenuItems:    menuCount,
		Reservations: reservationCount,
		Contacts:     contactCount,
	})
}

// GetMenu lists the whole catalog, unavailable rows included.
// @Summary Admin menu listing
// @Description Paginated catalog listing including unavailable items.
// @Tags Admin
// @Produce json
// @Param X-API-Key header string true "Admin API Key"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[menuDto.GetAdminMenuResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/menu [get]
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.menu.AdminList(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin menu listing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservations lists reservations newest first with optional filters.
// @Summary Admin reservation listing
// @Description Paginated reservations, newest first. Filterable by status and date.
// @Tags Admin
// @Produce json
// @Param X-API-Key header string true "Admin API Key"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param status query string false "Status filter (pending or confirmed)"
// @Param date query string false "Reservation date filter (YYYY-MM-DD)"
// @Success 200 {object} response.Data[reservationDto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	if params.SortBy == "" {
		params.SortBy = constant.DefaultValueSortBy
		params.SortDir = gDto.SortDirDesc
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		parsed, ok := reservationModel.ParseStatus(status)
		if !ok {
			err := failure.BadRequestFromString("status must be pending or confirmed")

			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    reservationModel.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    parsed.String(),
			Table:    reservationModel.TableName,
		})
	}

	if date := r.URL.Query().Get(constant.RequestParamDate); date != "" {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			err = failure.BadRequestFromString("date must be formatted as YYYY-MM-DD")

			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    reservationModel.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    parsed,
			Table:    reservationModel.TableName,
		})
	}

	res, err := handler.reservation.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetContacts lists contact messages newest first.
// @Summary Admin contact listing
// @Description Paginated contact messages, newest first.
// @Tags Admin
// @Produce json
// @Param X-API-Key header string true "Admin API Key"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Data[contactDto.GetContactsResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/contacts [get]
func (handler *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContacts")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	if params.SortBy == "" {
		params.SortBy = constant.DefaultValueSortBy
		params.SortDir = gDto.SortDirDesc
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	res, err := handler.contact.GetAll(ctx, params, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contacts")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
