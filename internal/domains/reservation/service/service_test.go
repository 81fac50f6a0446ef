package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tandoor/config"
	mailerMocks "tandoor/infras/mailer/mocks"
	"tandoor/infras/otel/mocks"
	reservationMocks "tandoor/internal/domains/reservation/mocks"
	"tandoor/internal/domains/reservation/model"
	"tandoor/internal/domains/reservation/model/dto"
	"tandoor/internal/domains/reservation/service"
	cacheMocks "tandoor/shared/cache/mocks"
	gDto "tandoor/shared/dto"
	"tandoor/shared/failure"
)

type reservationFixture struct {
	repo   *reservationMocks.MockReservation
	cache  *cacheMocks.MockRedisCache
	mailer *mailerMocks.MockMailer
	svc    service.Reservation
}

func newReservationFixture(ctrl *gomock.Controller) reservationFixture {
	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := mailerMocks.NewMockMailer(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Mail.TimeoutSeconds = 1

	return reservationFixture{
		repo:   mockRepo,
		cache:  mockCache,
		mailer: mockMailer,
		svc:    service.New(mockRepo, cfg, mockCache, mockMailer, mocks.NewOtel()),
	}
}

func validRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Phone:   "+911234567890",
		Date:    "2026-09-15",
		Time:    "19:30",
		Guests:  4,
		Message: "window table please",
	}
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newReservationFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) (int64, error) {
			assert.Equal(t, model.StatusPending, reservation.Status)
			assert.Equal(t, "19:30", reservation.Time)

			return 42, nil
		})

	fixture.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := fixture.svc.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, "pending", res.Status)
	assert.Equal(t, "2026-09-15", res.Date)
	assert.Equal(t, "19:30", res.Time)

	time.Sleep(10 * time.Millisecond)
}

func TestReservationService_Create_MailFailureDoesNotSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newReservationFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(7), nil)

	fixture.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout")).
		AnyTimes()

	res, err := fixture.svc.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)

	time.Sleep(10 * time.Millisecond)
}

func TestReservationService_Create_InvalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newReservationFixture(ctrl)

	req := validRequest()
	req.Date = "15-09-2026"

	_, err := fixture.svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestReservationService_Create_InsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newReservationFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	_, err := fixture.svc.Create(context.Background(), validRequest())

	assert.Error(t, err)
}

func TestReservationService_Confirm(t *testing.T) {
	pending := model.Reservation{
		ID:     42,
		Name:   "Asha Rao",
		Email:  "asha@example.com",
		Phone:  "+911234567890",
		Date:   time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:   "19:30:00",
		Guests: 4,
		Status: model.StatusPending,
	}

	confirmed := pending
	confirmed.Status = model.StatusConfirmed

	tests := []struct {
		name       string
		id         int64
		setupMock  func(mockRepo *reservationMocks.MockReservation)
		wantStatus string
		wantErr    bool
		wantCode   int
	}{
		{
			name: "pending reservation gets confirmed",
			id:   42,
			setupMock: func(mockRepo *reservationMocks.MockReservation) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), map[string]any{model.FieldStatus: "confirmed"}, gomock.Any()).
					Return(nil)
			},
			wantStatus: "confirmed",
		},
		{
			name: "confirming twice is a no-op",
			id:   42,
			setupMock: func(mockRepo *reservationMocks.MockReservation) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)
			},
			wantStatus: "confirmed",
		},
		{
			name: "unknown id yields not found",
			id:   999,
			setupMock: func(mockRepo *reservationMocks.MockReservation) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "update failure surfaces",
			id:   42,
			setupMock: func(mockRepo *reservationMocks.MockReservation) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			fixture := newReservationFixture(ctrl)
			tt.setupMock(fixture.repo)

			res, err := fixture.svc.Confirm(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, "19:30", res.Time)

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newReservationFixture(ctrl)

	models := []model.Reservation{
		{ID: 2, Name: "Later", Status: model.StatusPending, CreatedAt: time.Now()},
		{ID: 1, Name: "Earlier", Status: model.StatusConfirmed, CreatedAt: time.Now().Add(-time.Hour)},
	}

	fixture.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	fixture.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models, nil)

	res, err := fixture.svc.GetAll(context.Background(), gDto.NewestFirst(1, 10), gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, int64(2), res.Reservations[0].ID)

	time.Sleep(10 * time.Millisecond)
}
