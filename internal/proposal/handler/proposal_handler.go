package handler

import (
	"fmt"
	"strconv"

	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/Brunera17/TCC/internal/proposal/dto"
	"github.com/Brunera17/TCC/internal/proposal/service"
	"github.com/Brunera17/TCC/pkg/httputil"
	"github.com/Brunera17/TCC/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

type ProposalHandler struct {
	proposalService *service.ProposalService
	validator       *validator.Validator
}

func NewProposalHandler(proposalService *service.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
		validator:       validator.NewValidator(),
	}
}

// List supports ?status= and ?include_deactivated=true.
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	filter := domain.ListFilter{Visibility: domain.OnlyActive}
	if c.QueryBool("include_deactivated") {
		filter.Visibility = domain.IncludeDeactivated
	}
	if raw := c.Query("status"); raw != "" {
		status := domain.Status(raw)
		if !status.IsValid() {
			return httputil.BadRequest(c, fmt.Errorf("unknown status %q", raw))
		}
		filter.Status = &status
	}

	proposals, err := h.proposalService.List(c.UserContext(), filter)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutputs(proposals))
}

func (h *ProposalHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	proposals, err := h.proposalService.ListByClient(c.UserContext(), clientID)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutputs(proposals))
}

func (h *ProposalHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	p, err := h.proposalService.Get(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateProposalInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	var createdBy string
	if user, ok := middleware.CurrentUser(c); ok {
		createdBy = user.UserID
	}

	p, err := h.proposalService.Create(c.UserContext(), input, createdBy)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewProposalOutput(p))
}

func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.UpdateProposalInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	p, err := h.proposalService.Update(c.UserContext(), id, input)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

func (h *ProposalHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	if err := h.proposalService.Delete(c.UserContext(), id); err != nil {
		return httputil.WriteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProposalHandler) Totals(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	totals, err := h.proposalService.Totals(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(totals)
}

func (h *ProposalHandler) Validate(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}

	result, err := h.proposalService.Validate(c.UserContext(), id)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *ProposalHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.StatusInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	p, err := h.proposalService.ChangeStatus(c.UserContext(), id, domain.Status(input.Status))
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

func (h *ProposalHandler) UpdatePDFStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.PDFStatusInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	p, err := h.proposalService.UpdatePDFStatus(c.UserContext(), id, input.FilePath, input.Success)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

// Approve is mounted behind RequireRole(admin, manager); the approver is the
// caller.
func (h *ProposalHandler) Approve(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return httputil.WriteError(c, autherror.ErrTokenInvalid)
	}

	p, err := h.proposalService.Approve(c.UserContext(), id, user.UserID)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return httputil.BadRequest(c, err)
	}
	var input dto.RejectInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	p, err := h.proposalService.Reject(c.UserContext(), id, input.Reason)
	if err != nil {
		return httputil.WriteError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewProposalOutput(p))
}

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return id, nil
}
