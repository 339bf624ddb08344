package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"credopass/internal/http/api"
	"credopass/internal/http/handlers/handlerstest"
	"credopass/internal/http/handlers/mocks"
	"credopass/internal/http/handlers/user"
	repo "credopass/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const userID = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"

func sampleUser() *api.UserSchema {
	return &api.UserSchema{
		ID:        userID,
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

// Create

func TestUserHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	reqBody := api.UserCreateRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, reqBody).Return(sampleUser(), nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.UserResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *sampleUser(), resp.User)
}

func TestUserHandler_Create_DropsIdAndTimestamps(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	body := []byte(`{
		"id": "not-even-a-uuid",
		"email": "ada@example.com",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"createdAt": "2020-01-01T00:00:00Z",
		"updatedAt": "2020-01-01T00:00:00Z"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := api.UserCreateRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	mockService.On("Create", mock.Anything, expected).Return(sampleUser(), nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUserHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	reqBody := api.UserCreateRequest{Email: "not-an-email", FirstName: "", LastName: "Lovelace"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "'email'")
	assert.Contains(t, resp.Error.Message, "'firstName'")
	if assert.NotNil(t, resp.Error.Cause) {
		assert.Equal(t, resp.Error.Message, resp.Error.Cause.Detail)
	}
}

func TestUserHandler_Create_UserExists(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	reqBody := api.UserCreateRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, reqBody).Return(nil, repo.ErrUserExists)

	h.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeUserExists, resp.Error.Code)
}

func TestUserHandler_Create_InternalError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	reqBody := api.UserCreateRequest{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, reqBody).Return(nil, errors.New("db error"))

	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
	assert.NotContains(t, resp.Error.Message, "db error")
}

// Upsert

func TestUserHandler_Upsert_WithoutID(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	body := []byte(`{"email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}`)
	req := httptest.NewRequest(http.MethodPut, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Upsert", mock.Anything, mock.MatchedBy(func(r api.UserInsertRequest) bool {
		return r.ID == nil && r.CreatedAt == nil && r.Email == "ada@example.com"
	})).Return(sampleUser(), nil)

	h.Upsert(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Upsert_BadID(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	body := []byte(`{"id":"123","email":"ada@example.com","firstName":"Ada","lastName":"Lovelace"}`)
	req := httptest.NewRequest(http.MethodPut, "/users", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Upsert(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "UUID")
}

// Get

func TestUserHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/users/"+userID, nil),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, uuid.MustParse(userID)).Return(sampleUser(), nil)

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UserResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, userID, resp.User.ID)
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/users/abc", nil),
		map[string]string{"id": "abc"},
	)
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodGet, "/users/"+userID, nil),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, uuid.MustParse(userID)).Return(nil, repo.ErrNotFound)

	h.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

// List

func TestUserHandler_List_PassesPaging(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/users?limit=10&offset=20", nil)
	w := httptest.NewRecorder()

	mockService.On("List", mock.Anything, 10, 20).
		Return(&api.UsersResponse{Users: []api.UserSchema{*sampleUser()}, Limit: 10, Offset: 20}, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UsersResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp.Users, 1)
}

func TestUserHandler_List_BadLimit(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/users?limit=ten", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Update

func TestUserHandler_Update_EmptyBodyAccepted(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodPatch, "/users/"+userID, bytes.NewReader([]byte(`{}`))),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, uuid.MustParse(userID), api.UserUpdateRequest{}).
		Return(sampleUser(), nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Update_NullPhone(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodPatch, "/users/"+userID, bytes.NewReader([]byte(`{"phone":null}`))),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, uuid.MustParse(userID), mock.MatchedBy(func(r api.UserUpdateRequest) bool {
		return r.Phone.Set && !r.Phone.Valid
	})).Return(sampleUser(), nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Update_InvalidEmail(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodPatch, "/users/"+userID, bytes.NewReader([]byte(`{"email":"nope"}`))),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	h.Update(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

// Delete

func TestUserHandler_Delete_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodDelete, "/users/"+userID, nil),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, uuid.MustParse(userID)).Return(nil)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := handlerstest.WithURLParams(
		httptest.NewRequest(http.MethodDelete, "/users/"+userID, nil),
		map[string]string{"id": userID},
	)
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, uuid.MustParse(userID)).Return(repo.ErrNotFound)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
