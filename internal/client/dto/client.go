package dto

import (
	"time"

	"github.com/Brunera17/TCC/internal/client/domain"
)

type CreateClientInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=100"`
	CPF   string `json:"cpf" validate:"omitempty,len=11,numeric"`
}

// UpdateClientInput lists every field a caller may change. Nil means
// unchanged.
type UpdateClientInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email,max=100"`
	CPF   *string `json:"cpf" validate:"omitempty,len=11,numeric"`
}

type CreateLegalEntityInput struct {
	ClientID  *int64 `json:"client_id"`
	LegalName string `json:"legal_name" validate:"required,max=150"`
	CNPJ      string `json:"cnpj" validate:"required,len=14,numeric"`
}

type UpdateLegalEntityInput struct {
	ClientID  *int64  `json:"client_id"`
	LegalName *string `json:"legal_name" validate:"omitempty,min=1,max=150"`
	CNPJ      *string `json:"cnpj" validate:"omitempty,len=14,numeric"`
}

type ClientOutput struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	CPF       *string   `json:"cpf"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewClientOutput(c *domain.Client) ClientOutput {
	return ClientOutput{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CPF:       c.CPF,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func NewClientOutputs(clients []domain.Client) []ClientOutput {
	out := make([]ClientOutput, 0, len(clients))
	for i := range clients {
		out = append(out, NewClientOutput(&clients[i]))
	}
	return out
}

type LegalEntityOutput struct {
	ID        int64     `json:"id"`
	ClientID  *int64    `json:"client_id"`
	LegalName string    `json:"legal_name"`
	CNPJ      string    `json:"cnpj"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLegalEntityOutput(e *domain.LegalEntity) LegalEntityOutput {
	return LegalEntityOutput{
		ID:        e.ID,
		ClientID:  e.ClientID,
		LegalName: e.LegalName,
		CNPJ:      e.CNPJ,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewLegalEntityOutputs(entities []domain.LegalEntity) []LegalEntityOutput {
	out := make([]LegalEntityOutput, 0, len(entities))
	for i := range entities {
		out = append(out, NewLegalEntityOutput(&entities[i]))
	}
	return out
}
