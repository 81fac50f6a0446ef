package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tandoor/config"
	mailerMocks "tandoor/infras/mailer/mocks"
	"tandoor/infras/otel/mocks"
	contactMocks "tandoor/internal/domains/contact/mocks"
	"tandoor/internal/domains/contact/model"
	"tandoor/internal/domains/contact/service"
	cacheMocks "tandoor/shared/cache/mocks"
	gDto "tandoor/shared/dto"

	"tandoor/internal/domains/contact/model/dto"
)

type contactFixture struct {
	repo   *contactMocks.MockContact
	mailer *mailerMocks.MockMailer
	svc    service.Contact
}

func newContactFixture(ctrl *gomock.Controller) contactFixture {
	mockRepo := contactMocks.NewMockContact(ctrl)
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

	return contactFixture{
		repo:   mockRepo,
		mailer: mockMailer,
		svc:    service.New(mockRepo, cfg, mockCache, mockMailer, mocks.NewOtel()),
	}
}

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newContactFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(11), nil)

	fixture.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, subject, body string) error {
			assert.Equal(t, "Contact form: Catering inquiry", subject)
			assert.True(t, strings.Contains(body, "dev@example.com"))

			return nil
		}).
		AnyTimes()

	res, err := fixture.svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "Dev Sharma",
		Email:   "dev@example.com",
		Subject: "Catering inquiry",
		Message: "Do you cater for 50 people?",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, "Catering inquiry", res.Subject)

	time.Sleep(10 * time.Millisecond)
}

func TestContactService_Create_MailFailureDoesNotSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newContactFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(12), nil)

	fixture.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp timeout")).
		AnyTimes()

	res, err := fixture.svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "Dev Sharma",
		Email:   "dev@example.com",
		Subject: "Catering inquiry",
		Message: "Do you cater for 50 people?",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(12), res.ID)

	time.Sleep(10 * time.Millisecond)
}

func TestContactService_Create_InsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newContactFixture(ctrl)

	fixture.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	_, err := fixture.svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "Dev Sharma",
		Email:   "dev@example.com",
		Subject: "Catering inquiry",
		Message: "Do you cater for 50 people?",
	})

	assert.Error(t, err)
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := newContactFixture(ctrl)

	models := []model.Contact{
		{ID: 2, Name: "Later", Subject: "b", CreatedAt: time.Now()},
		{ID: 1, Name: "Earlier", Subject: "a", CreatedAt: time.Now().Add(-time.Hour)},
	}

	fixture.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(25, nil)

	fixture.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models, nil)

	res, err := fixture.svc.GetAll(context.Background(), gDto.NewestFirst(1, 10), gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 25, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Contacts, 2)

	time.Sleep(10 * time.Millisecond)
}
