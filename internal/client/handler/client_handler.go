package handler

import (
	"fmt"
	"strconv"

	"github.com/Brunera17/TCC/internal/client/domain"
	"github.com/Brunera17/TCC/internal/client/dto"
	"github.com/Brunera17/TCC/internal/client/service"
	"github.com/Brunera17/TCC/pkg/httputil"
	"github.com/Brunera17/TCC/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	clientService *service.ClientService
	validator     *validator.Validator
}

func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
		validator:     validator.NewValidator(),
	}
}

// ListClients supports ?include_deactivated=true.
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	clients, err := h.clientService.ListClients(c.UserContext(), c.QueryBool("include_deactivated"))
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewClientOutputs(clients))
}

func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	client, err := h.clientService.GetClient(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewClientOutput(client))
}

func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var input dto.CreateClientInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	client, err := h.clientService.CreateClient(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewClientOutput(client))
}

func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.UpdateClientInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	client, err := h.clientService.UpdateClient(c.UserContext(), id, input)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewClientOutput(client))
}

func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	if err := h.clientService.DeleteClient(c.UserContext(), id); err != nil {
		return httputil.WriteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClientHandler) ListClientLegalEntities(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	entities, err := h.clientService.ListClientLegalEntities(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewLegalEntityOutputs(entities))
}

// ListLegalEntities supports ?client_id= and ?include_deactivated=true.
func (h *ClientHandler) ListLegalEntities(c *fiber.Ctx) error {
	filter := domain.LegalEntityFilter{IncludeDeactivated: c.QueryBool("include_deactivated")}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || clientID <= 0 {
			return httputil.BadRequest(c, fmt.Errorf("invalid client_id %q", raw))
		}
		filter.ClientID = &clientID
	}

	entities, err := h.clientService.ListLegalEntities(c.UserContext(), filter)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewLegalEntityOutputs(entities))
}

func (h *ClientHandler) GetLegalEntity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	entity, err := h.clientService.GetLegalEntity(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewLegalEntityOutput(entity))
}

func (h *ClientHandler) CreateLegalEntity(c *fiber.Ctx) error {
	var input dto.CreateLegalEntityInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	entity, err := h.clientService.CreateLegalEntity(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewLegalEntityOutput(entity))
}

func (h *ClientHandler) UpdateLegalEntity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.UpdateLegalEntityInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	entity, err := h.clientService.UpdateLegalEntity(c.UserContext(), id, input)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewLegalEntityOutput(entity))
}

func (h *ClientHandler) DeleteLegalEntity(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	if err := h.clientService.DeleteLegalEntity(c.UserContext(), id); err != nil {
		return httputil.WriteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return id, nil
}
