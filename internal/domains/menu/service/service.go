package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tandoor/config"
	"tandoor/infras/otel"
	"tandoor/internal/domains/menu/model"
	"tandoor/internal/domains/menu/model/dto"
	"tandoor/internal/domains/menu/repository"
	"tandoor/shared"
	"tandoor/shared/cache"
	"tandoor/shared/constant"
	gDto "tandoor/shared/dto"
)

const (
	cacheGetMenu      = "menu:get"
	cacheFeaturedMenu = "menu:featured"
	cacheAPIMenu      = "menu:api"
	cacheAdminMenu    = "menu:admin"
)

type Menu interface {
	GetMenu(ctx context.Context, category string) (dto.GetMenuResponse, error)
	Featured(ctx context.Context) ([]dto.PublicMenuItem, error)
	APIList(ctx context.Context) ([]dto.PublicMenuItem, error)
	AdminList(ctx context.Context, params gDto.QueryParams) (dto.GetAdminMenuResponse, error)
	Count(ctx context.Context) (int, error)
	Seed(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Menu
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Menu, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func availableFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}

func insertionOrder(limit int) gDto.QueryParams {
	return gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}
}

// GetMenu returns available items, filtered by category. An empty category or
// the "all" sentinel selects the whole catalog; an unknown category yields an
// empty listing, never an error.
func (s *serviceImpl) GetMenu(ctx context.Context, category string) (res dto.GetMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	if category == "" {
		category = constant.CategoryAll
	}

	cacheKey := shared.BuildCacheKey(cacheGetMenu, category)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	filter := availableFilter()

	if category != constant.CategoryAll {
		parsed, ok := model.ParseCategory(category)
		if !ok {
			res.FromModels(nil, category)

			return res, nil
		}

		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    parsed.String(),
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, insertionOrder(0), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(models, category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu to cache")
		}
	}()

	return res, nil
}

// Featured returns the first available items of the catalog for the landing
// page, bounded by the configured featured limit.
func (s *serviceImpl) Featured(ctx context.Context) (res []dto.PublicMenuItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheFeaturedMenu, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, insertionOrder(s.cfg.App.FeaturedLimit), availableFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured menu items")

		return res, fmt.Errorf("failed to get featured menu items: %w", err)
	}

	res = dto.PublicMenuItems(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheFeaturedMenu, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured menu to cache")
		}
	}()

	return res, nil
}

// APIList returns every available item shaped for the public API.
func (s *serviceImpl) APIList(ctx context.Context) (res []dto.PublicMenuItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".APIList")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheAPIMenu, &res)
	if err == nil {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx, insertionOrder(0), availableFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items for API")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res = dto.PublicMenuItems(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAPIMenu, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save API menu to cache")
		}
	}()

	return res, nil
}

// AdminList returns the full catalog including unavailable rows, paginated.
func (s *serviceImpl) AdminList(ctx context.Context, params gDto.QueryParams) (res dto.GetAdminMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminList")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheAdminMenu, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	if params.SortBy == "" {
		params.SortBy = model.FieldID
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, fmt.Errorf("failed to get menu items: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save admin menu to cache")
		}
	}()

	return res, nil
}

// Count returns the number of catalog rows, available or not.
func (s *serviceImpl) Count(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items")

		return res, fmt.Errorf("failed to count menu items: %w", err)
	}

	return res, nil
}

// Seed populates an empty catalog with the fixed menu. Running it against a
// non-empty table is a no-op, so repeated startups never duplicate entries.
func (s *serviceImpl) Seed(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count menu items before seeding")

		return fmt.Errorf("failed to count menu items: %w", err)
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("Menu catalog already populated, skipping seed")

		return nil
	}

	if err = s.repo.InsertBulk(ctx, seedCatalog); err != nil {
		log.Error().Err(err).Msg("failed to seed menu catalog")

		return fmt.Errorf("failed to seed menu catalog: %w", err)
	}

	log.Info().Int("items", len(seedCatalog)).Msg("Menu catalog seeded")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetMenu)
		shared.InvalidateCaches(c, s.cache, cacheFeaturedMenu)
		shared.InvalidateCaches(c, s.cache, cacheAPIMenu)
		shared.InvalidateCaches(c, s.cache, cacheAdminMenu)
	}()

	return nil
}
