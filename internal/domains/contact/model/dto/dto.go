package dto

import (
	"tandoor/internal/domains/contact/model"
	"tandoor/shared"
	"tandoor/shared/constant"
	"tandoor/shared/timezone"
)

type CreateContactRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email,max=100"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

func (c *CreateContactRequest) ToModel() model.Contact {
	return model.Contact{
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: timezone.Now(),
	}
}

type ContactResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *ContactResponse) FromModel(mod model.Contact) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Subject = mod.Subject
	r.Message = mod.Message
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contacts"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.Contact, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
