package user

import (
	"context"

	"credopass/internal/http/api"
	"credopass/internal/models"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserStore
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	Update(ctx context.Context, userID uuid.UUID, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	store UserStore
}

func NewUserService(store UserStore) *UserService {
	return &UserService{
		store: store,
	}
}

func (s *UserService) Create(ctx context.Context, req api.UserCreateRequest) (*api.UserSchema, error) {
	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(created)
	return &resp, nil
}

// Upsert saves the user under the supplied id, or a fresh one when absent.
func (s *UserService) Upsert(ctx context.Context, req api.UserInsertRequest) (*api.UserSchema, error) {
	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if req.ID != nil {
		id, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, err
		}
		user.ID = id
	}
	if req.CreatedAt != nil {
		user.CreatedAt = *req.CreatedAt
	}
	if req.UpdatedAt != nil {
		user.UpdatedAt = *req.UpdatedAt
	}

	saved, err := s.store.Upsert(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(saved)
	return &resp, nil
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*api.UserSchema, error) {
	user, err := s.store.GetById(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(user)
	return &resp, nil
}

func (s *UserService) List(ctx context.Context, limit, offset int) (*api.UsersResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	users, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	resp := &api.UsersResponse{
		Users:  make([]api.UserSchema, 0, len(users)),
		Limit:  limit,
		Offset: offset,
	}
	for _, u := range users {
		resp.Users = append(resp.Users, api.NewUserSchema(u))
	}

	return resp, nil
}

// Update applies a partial update. An empty patch only reads the user back.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req api.UserUpdateRequest) (*api.UserSchema, error) {
	patch := req.Patch()

	var (
		user *models.User
		err  error
	)
	if isEmptyPatch(patch) {
		user, err = s.store.GetById(ctx, userID)
	} else {
		user, err = s.store.Update(ctx, userID, patch)
	}
	if err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(user)
	return &resp, nil
}

func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, userID)
}

func isEmptyPatch(p models.UserPatch) bool {
	return p.Email == nil && p.FirstName == nil && p.LastName == nil && p.Phone == nil && !p.ClearPhone
}
