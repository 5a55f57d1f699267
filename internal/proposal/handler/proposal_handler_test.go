package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "github.com/Brunera17/TCC/internal/auth/domain"
	authservice "github.com/Brunera17/TCC/internal/auth/service"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/Brunera17/TCC/internal/mocks"
	"github.com/Brunera17/TCC/internal/proposal/domain"
	"github.com/Brunera17/TCC/internal/proposal/dto"
	"github.com/Brunera17/TCC/internal/proposal/engine"
	"github.com/Brunera17/TCC/internal/proposal/handler"
	"github.com/Brunera17/TCC/internal/proposal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	employeeToken = "employee-token"
	managerToken  = "manager-token"
)

var now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	app     *fiber.App
	repo    *mocks.MockProposalRepository
	parties *mocks.MockCounterpartyRepository
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProposalRepository(ctrl)
	parties := mocks.NewMockCounterpartyRepository(ctrl)

	tokens := mocks.NewMockTokenGenerator(ctrl)
	tokens.EXPECT().VerifyAccessToken(employeeToken).
		Return(&authservice.JWTCustomClaims{UserID: "emp-1", Role: authdomain.RoleEmployee}, nil).AnyTimes()
	tokens.EXPECT().VerifyAccessToken(managerToken).
		Return(&authservice.JWTCustomClaims{UserID: "mgr-1", Role: authdomain.RoleManager}, nil).AnyTimes()

	svc := service.NewProposalService(repo, parties, engine.New(engine.WithClock(func() time.Time { return now })))
	svc.Now = func() time.Time { return now }

	app := fiber.New()
	handler.RegisterRoutes(app, handler.NewProposalHandler(svc),
		middleware.RequireAuth(tokens),
		middleware.RequireRole(tokens, authdomain.RoleAdmin, authdomain.RoleManager))

	return fixture{app: app, repo: repo, parties: parties}
}

func (f fixture) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func draft() *domain.Proposal {
	clientID := int64(7)
	return &domain.Proposal{
		ID:           1,
		Number:       "PROP-0001",
		Status:       domain.StatusDraft,
		Total:        decimal.NewFromInt(100),
		ClientID:     &clientID,
		RecordStatus: domain.RecordActive,
		Items: []domain.LineItem{
			{ID: 10, Quantity: 1, UnitPrice: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(100), RecordStatus: domain.RecordActive},
		},
	}
}

func TestList(t *testing.T) {
	t.Run("filters", func(t *testing.T) {
		f := newFixture(t)
		sent := domain.StatusSent
		f.repo.EXPECT().List(gomock.Any(), domain.ListFilter{Status: &sent, Visibility: domain.IncludeDeactivated}).
			Return([]domain.Proposal{*draft()}, nil)

		resp := f.do(t, http.MethodGet, "/api/v1/proposals?status=sent&include_deactivated=true", employeeToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out []dto.ProposalOutput
		decode(t, resp, &out)
		require.Len(t, out, 1)
		assert.Equal(t, "PROP-0001", out[0].Number)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		resp := f.do(t, http.MethodGet, "/api/v1/proposals?status=archived", employeeToken, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("by client", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]domain.Proposal{}, nil)

		resp := f.do(t, http.MethodGet, "/api/v1/clients/7/proposals", employeeToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out []dto.ProposalOutput
		decode(t, resp, &out)
		assert.Empty(t, out)
	})
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(draft(), nil)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(2), domain.OnlyActive).Return(nil, nil)

	resp := f.do(t, http.MethodGet, "/api/v1/proposals/1", employeeToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ProposalOutput
	decode(t, resp, &out)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(100)))
	assert.Len(t, out.Items, 1)

	resp = f.do(t, http.MethodGet, "/api/v1/proposals/2", employeeToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/v1/proposals/abc", employeeToken, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreate(t *testing.T) {
	clientID := int64(7)
	input := dto.CreateProposalInput{
		Number:   "PROP-0001",
		ClientID: &clientID,
		Items:    []dto.ItemInput{{Quantity: 2, UnitPrice: decimal.NewFromInt(50)}},
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().NumberExists(gomock.Any(), "PROP-0001", int64(0)).Return(false, nil)
		f.parties.EXPECT().ClientExists(gomock.Any(), int64(7)).Return(true, nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp := f.do(t, http.MethodPost, "/api/v1/proposals", employeeToken, input)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var out dto.ProposalOutput
		decode(t, resp, &out)
		assert.Equal(t, "draft", out.Status)
		assert.True(t, out.Total.Equal(decimal.NewFromInt(100)), out.Total.String())
		require.NotNil(t, out.CreatedBy)
		assert.Equal(t, "emp-1", *out.CreatedBy)
	})

	t.Run("missing number", func(t *testing.T) {
		f := newFixture(t)
		bad := input
		bad.Number = ""

		resp := f.do(t, http.MethodPost, "/api/v1/proposals", employeeToken, bad)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("number in use", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().NumberExists(gomock.Any(), "PROP-0001", int64(0)).Return(true, nil)

		resp := f.do(t, http.MethodPost, "/api/v1/proposals", employeeToken, input)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		var out map[string]string
		decode(t, resp, &out)
		assert.Equal(t, autherror.ErrProposalNumberInUse.Error(), out["error"])
	})
}

func TestUpdateAndDelete(t *testing.T) {
	t.Run("sent proposal cannot be edited", func(t *testing.T) {
		f := newFixture(t)
		p := draft()
		p.Status = domain.StatusSent
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(p, nil)

		resp := f.do(t, http.MethodPut, "/api/v1/proposals/1", employeeToken, map[string]string{"notes": "x"})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().SoftDelete(gomock.Any(), int64(1)).Return(nil)

		resp := f.do(t, http.MethodDelete, "/api/v1/proposals/1", employeeToken, nil)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})
}

func TestTotalsAndValidation(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(draft(), nil).Times(2)

	resp := f.do(t, http.MethodGet, "/api/v1/proposals/1/totals", employeeToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var totals domain.Totals
	decode(t, resp, &totals)
	assert.Equal(t, 1, totals.TotalQuantity)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(100)))

	resp = f.do(t, http.MethodGet, "/api/v1/proposals/1/validation", employeeToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var result domain.ValidationResult
	decode(t, resp, &result)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestChangeStatus(t *testing.T) {
	t.Run("send", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(draft(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(nil)

		resp := f.do(t, http.MethodPatch, "/api/v1/proposals/1/status", employeeToken, dto.StatusInput{Status: "sent"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out dto.ProposalOutput
		decode(t, resp, &out)
		assert.Equal(t, "sent", out.Status)
	})

	t.Run("send without items", func(t *testing.T) {
		f := newFixture(t)
		p := draft()
		p.Items = nil
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(p, nil)

		resp := f.do(t, http.MethodPatch, "/api/v1/proposals/1/status", employeeToken, dto.StatusInput{Status: "sent"})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		resp := f.do(t, http.MethodPatch, "/api/v1/proposals/1/status", employeeToken, dto.StatusInput{Status: "archived"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpdatePDFStatus(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(draft(), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(nil)

	resp := f.do(t, http.MethodPatch, "/api/v1/proposals/1/pdf", employeeToken,
		dto.PDFStatusInput{Success: true, FilePath: "/pdfs/1.pdf"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.ProposalOutput
	decode(t, resp, &out)
	assert.True(t, out.PDFGenerated)
	require.NotNil(t, out.PDFPath)
	assert.Equal(t, "/pdfs/1.pdf", *out.PDFPath)
}

func TestApproveAndReject(t *testing.T) {
	t.Run("employee cannot approve", func(t *testing.T) {
		f := newFixture(t)
		resp := f.do(t, http.MethodPost, "/api/v1/proposals/1/approve", employeeToken, nil)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("manager approves", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(draft(), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(nil)

		resp := f.do(t, http.MethodPost, "/api/v1/proposals/1/approve", managerToken, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out dto.ProposalOutput
		decode(t, resp, &out)
		require.NotNil(t, out.ApprovedBy)
		assert.Equal(t, "mgr-1", *out.ApprovedBy)
	})

	t.Run("reject requires reason", func(t *testing.T) {
		f := newFixture(t)
		resp := f.do(t, http.MethodPost, "/api/v1/proposals/1/reject", managerToken, dto.RejectInput{})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("manager rejects sent proposal", func(t *testing.T) {
		f := newFixture(t)
		p := draft()
		p.Status = domain.StatusSent
		f.repo.EXPECT().GetByID(gomock.Any(), int64(1), domain.OnlyActive).Return(p, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(nil)

		resp := f.do(t, http.MethodPost, "/api/v1/proposals/1/reject", managerToken, dto.RejectInput{Reason: "budget"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var out dto.ProposalOutput
		decode(t, resp, &out)
		assert.Equal(t, "rejected", out.Status)
		assert.Equal(t, "budget", *out.RejectionReason)
	})
}
