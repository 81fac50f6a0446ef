package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tandoor/config"
	"tandoor/infras/mailer"
	"tandoor/infras/otel"
	"tandoor/internal/domains/reservation/model"
	"tandoor/internal/domains/reservation/model/dto"
	"tandoor/internal/domains/reservation/repository"
	"tandoor/shared"
	"tandoor/shared/cache"
	"tandoor/shared/constant"
	gDto "tandoor/shared/dto"
	"tandoor/shared/failure"
)

const (
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	Confirm(ctx context.Context, id int64) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo   repository.Reservation
	cfg    *config.Config
	cache  cache.RedisCache
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(repo repository.Reservation, cfg *config.Config, cache cache.RedisCache, mailer mailer.Mailer, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		mailer: mailer,
		otel:   otel,
	}
}

// Create stores a pending reservation and then attempts a single
// notification. The record is durable before the mail is tried; a failed or
// slow send never surfaces to the submitting client.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation request")

		return res, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, reservation)
	if err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	reservation.ID = id
	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		s.notify(c, reservation)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

func (s *serviceImpl) notify(ctx context.Context, reservation model.Reservation) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Mail.TimeoutSeconds)*time.Second)
	defer cancel()

	subject := fmt.Sprintf("New reservation request from %s", reservation.Name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s\nGuests: %d\nMessage: %s\n",
		reservation.Name,
		reservation.Email,
		reservation.Phone,
		reservation.Date.Format(constant.DateOnlyFormat),
		reservation.Time,
		reservation.Guests,
		reservation.Message,
	)

	// One attempt, errors logged and dropped.
	if err := s.mailer.Send(ctx, subject, body); err != nil {
		log.Error().Err(err).Int64("reservation_id", reservation.ID).Msg("failed to send reservation notification")
	}
}

// Confirm moves a reservation to confirmed. Unknown ids yield not-found;
// confirming an already confirmed reservation succeeds without change.
func (s *serviceImpl) Confirm(ctx context.Context, id int64) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == 0 {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusConfirmed {
		if err = s.repo.Update(ctx, map[string]any{model.FieldStatus: model.StatusConfirmed.String()}, filter); err != nil {
			log.Error().Err(err).Msg("failed to confirm reservation")

			return res, fmt.Errorf("failed to confirm reservation: %w", err)
		}

		reservation.Status = model.StatusConfirmed
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}
