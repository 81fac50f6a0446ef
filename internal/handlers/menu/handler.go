package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tandoor/infras/otel"
	"tandoor/internal/domains/menu/service"
	"tandoor/shared/constant"
	"tandoor/transport/http/response"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMenu)
		routerGroup.Get("/featured", handler.GetFeatured)
	})

	router.Get("/api/menu", handler.GetAPIMenu)
}

// GetMenu returns the available catalog, optionally filtered by category.
// @Summary Get the menu
// @Description Retrieve available menu items, filtered by category. "all" or an absent category selects everything; an unknown category returns an empty listing.
// @Tags Menu
// @Produce json
// @Param category query string false "Category filter (starters, main_course, desserts, beverages, all)"
// @Success 200 {object} response.Data[dto.GetMenuResponse] "Menu listing"
// @Failure 500 {object} response.Error
// @Router /v1/menu [get]
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	category := r.URL.Query().Get(constant.RequestParamCategory)

	menu, err := handler.service.GetMenu(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, menu)
}

// GetFeatured returns the landing-page selection of menu items.
// @Summary Get featured menu items
// @Description Retrieve the first available menu items for the home page.
// @Tags Menu
// @Produce json
// @Success 200 {object} response.Data[[]dto.PublicMenuItem] "Featured items"
// @Failure 500 {object} response.Error
// @Router /v1/menu/featured [get]
func (handler *Handler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeatured")
	defer scope.End()

	items, err := handler.service.Featured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetAPIMenu returns the available catalog as a bare JSON array.
// @Summary Get the menu (public API)
// @Description Retrieve every available menu item as a plain array of {id, name, description, price, category, image_url}.
// @Tags Menu
// @Produce json
// @Success 200 {array} dto.PublicMenuItem "Available items"
// @Failure 500 {object} response.Error
// @Router /v1/api/menu [get]
func (handler *Handler) GetAPIMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAPIMenu")
	defer scope.End()

	items, err := handler.service.APIList(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get API menu")

		response.WithError(w, err)

		return
	}

	response.WithPlainJSON(w, http.StatusOK, items)
}
