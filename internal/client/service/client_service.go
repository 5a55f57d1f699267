package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Brunera17/TCC/internal/client/domain"
	"github.com/Brunera17/TCC/internal/client/dto"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/logger"
	"go.uber.org/zap"
)

// ClientService owns the registry of clients and legal entities that
// proposals are addressed to.
type ClientService struct {
	clients  domain.ClientRepository
	entities domain.LegalEntityRepository
	log      *zap.Logger
	Now      func() time.Time
}

func NewClientService(clients domain.ClientRepository, entities domain.LegalEntityRepository) *ClientService {
	return &ClientService{
		clients:  clients,
		entities: entities,
		log:      logger.Named("client_service"),
		Now:      time.Now,
	}
}

func (s *ClientService) ListClients(ctx context.Context, includeDeactivated bool) ([]domain.Client, error) {
	return s.clients.List(ctx, includeDeactivated)
}

// GetClient returns an active client or ErrNotFound.
func (s *ClientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("client %d: %w", id, autherror.ErrNotFound)
	}
	return c, nil
}

func (s *ClientService) CreateClient(ctx context.Context, input dto.CreateClientInput) (*domain.Client, error) {
	now := s.Now()
	c := &domain.Client{
		Name:      input.Name,
		Email:     optional(input.Email),
		CPF:       optional(input.CPF),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.checkCPF(ctx, c.CPF, 0); err != nil {
		return nil, err
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info("client created", zap.Int64("client_id", c.ID))
	return c, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, id int64, input dto.UpdateClientInput) (*domain.Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Email != nil {
		c.Email = optional(*input.Email)
	}
	if input.CPF != nil && (c.CPF == nil || *c.CPF != *input.CPF) {
		if err := s.checkCPF(ctx, input.CPF, id); err != nil {
			return nil, err
		}
		c.CPF = optional(*input.CPF)
	}
	c.UpdatedAt = s.Now()

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id int64) error {
	if err := s.clients.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("client deactivated", zap.Int64("client_id", id))
	return nil
}

func (s *ClientService) checkCPF(ctx context.Context, cpf *string, excludeID int64) error {
	if cpf == nil || *cpf == "" {
		return nil
	}
	inUse, err := s.clients.CPFInUse(ctx, *cpf, excludeID)
	if err != nil {
		return err
	}
	if inUse {
		return autherror.ErrCPFAlreadyInUse
	}
	return nil
}

func (s *ClientService) ListLegalEntities(ctx context.Context, filter domain.LegalEntityFilter) ([]domain.LegalEntity, error) {
	return s.entities.List(ctx, filter)
}

// ListClientLegalEntities lists the active entities of an active client.
func (s *ClientService) ListClientLegalEntities(ctx context.Context, clientID int64) ([]domain.LegalEntity, error) {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return nil, err
	}
	return s.entities.List(ctx, domain.LegalEntityFilter{ClientID: &clientID})
}

func (s *ClientService) GetLegalEntity(ctx context.Context, id int64) (*domain.LegalEntity, error) {
	e, err := s.entities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("legal entity %d: %w", id, autherror.ErrNotFound)
	}
	return e, nil
}

func (s *ClientService) CreateLegalEntity(ctx context.Context, input dto.CreateLegalEntityInput) (*domain.LegalEntity, error) {
	if err := s.checkOwner(ctx, input.ClientID); err != nil {
		return nil, err
	}

	now := s.Now()
	e := &domain.LegalEntity{
		ClientID:  input.ClientID,
		LegalName: input.LegalName,
		CNPJ:      input.CNPJ,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.entities.Create(ctx, e); err != nil {
		return nil, err
	}

	s.log.Info("legal entity created", zap.Int64("legal_entity_id", e.ID))
	return e, nil
}

func (s *ClientService) UpdateLegalEntity(ctx context.Context, id int64, input dto.UpdateLegalEntityInput) (*domain.LegalEntity, error) {
	e, err := s.GetLegalEntity(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		if err := s.checkOwner(ctx, input.ClientID); err != nil {
			return nil, err
		}
		e.ClientID = input.ClientID
	}
	if input.LegalName != nil {
		e.LegalName = *input.LegalName
	}
	if input.CNPJ != nil {
		e.CNPJ = *input.CNPJ
	}
	e.UpdatedAt = s.Now()

	if err := s.entities.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ClientService) DeleteLegalEntity(ctx context.Context, id int64) error {
	if err := s.entities.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info("legal entity deactivated", zap.Int64("legal_entity_id", id))
	return nil
}

// checkOwner accepts a missing owner; a given one must be an active client.
func (s *ClientService) checkOwner(ctx context.Context, clientID *int64) error {
	if clientID == nil {
		return nil
	}
	c, err := s.clients.GetByID(ctx, *clientID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("client %d: %w", *clientID, autherror.ErrCounterpartyNotFound)
	}
	return nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
