package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tandoor/config"
	"tandoor/infras/mailer"
	"tandoor/infras/otel"
	"tandoor/internal/domains/contact/model"
	"tandoor/internal/domains/contact/model/dto"
	"tandoor/internal/domains/contact/repository"
	"tandoor/shared"
	"tandoor/shared/cache"
	"tandoor/shared/constant"
	gDto "tandoor/shared/dto"
)

const (
	cacheGetAllContact = "contact:gets"
	cacheCountContact  = "contact:count"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.ContactResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContactsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo   repository.Contact
	cfg    *config.Config
	cache  cache.RedisCache
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, cache cache.RedisCache, mailer mailer.Mailer, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		mailer: mailer,
		otel:   otel,
	}
}

// Create stores the message, then fires a single best-effort notification.
// The row is committed before the mail attempt and is never rolled back.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel()

	id, err := s.repo.Insert(ctx, contact)
	if err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return res, fmt.Errorf("failed to create contact: %w", err)
	}

	contact.ID = id
	res.FromModel(contact)

	go func() {
		c := context.WithoutCancel(ctx)

		s.notify(c, contact)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
		shared.InvalidateCaches(c, s.cache, cacheCountContact)
	}()

	return res, nil
}

func (s *serviceImpl) notify(ctx context.Context, contact model.Contact) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Mail.TimeoutSeconds)*time.Second)
	defer cancel()

	subject := fmt.Sprintf("Contact form: %s", contact.Subject)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nSubject: %s\n\n%s\n",
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
	)

	if err := s.mailer.Send(ctx, subject, body); err != nil {
		log.Error().Err(err).Int64("contact_id", contact.ID).Msg("failed to send contact notification")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contacts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContact, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contacts")

		return res, fmt.Errorf("failed to count contacts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact count to cache")
		}
	}()

	return res, nil
}
