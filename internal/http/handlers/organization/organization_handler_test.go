package organization_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"credopass/internal/http/api"
	"credopass/internal/http/handlers/handlerstest"
	"credopass/internal/http/handlers/mocks"
	"credopass/internal/http/handlers/organization"
	repo "credopass/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	orgID  = uuid.MustParse("9b2d6c1e-8f3a-4d5b-a7c9-1e2f3a4b5c6d")
	userID = uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
)

func TestOrganizationHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/organizations", bytes.NewReader([]byte(`{"name":"Chess Club"}`)))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "Chess Club").
		Return(&api.OrganizationSchema{ID: orgID.String(), Name: "Chess Club"}, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.OrganizationResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Chess Club", resp.Organization.Name)
}

func TestOrganizationHandler_Create_EmptyName(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/organizations", bytes.NewReader([]byte(`{"name":""}`)))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestOrganizationHandler_Create_Exists(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/organizations", bytes.NewReader([]byte(`{"name":"Chess Club"}`)))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "Chess Club").Return(nil, repo.ErrOrgExists)

	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeOrgExists, resp.Error.Code)
}

func TestOrganizationHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/organizations/"+orgID.String(), nil),
		map[string]string{"id": orgID.String()},
	)
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, orgID).Return(nil, repo.ErrNotFound)

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandler_GetLoyalty_Success(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/organizations/x/loyalty/y", nil),
		map[string]string{"id": orgID.String(), "userId": userID.String()},
	)
	w := httptest.NewRecorder()

	mockService.On("GetLoyalty", mock.Anything, orgID, userID).Return(&api.LoyaltySchema{
		OrganizationID: orgID.String(),
		UserID:         userID.String(),
		Points:         120,
		Tier:           "silver",
	}, nil)

	h.GetLoyalty(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.LoyaltyResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 120, resp.Loyalty.Points)
	assert.Equal(t, "silver", resp.Loyalty.Tier)
}

func TestOrganizationHandler_GetLoyalty_BadUserID(t *testing.T) {
	mockService := mocks.NewMockOrganizationService(t)
	h := organization.NewOrganizationHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/organizations/x/loyalty/y", nil),
		map[string]string{"id": orgID.String(), "userId": "y"},
	)
	w := httptest.NewRecorder()

	h.GetLoyalty(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
