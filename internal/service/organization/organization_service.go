package organization

import (
	"context"
	"errors"

	"credopass/internal/http/api"
	"credopass/internal/loyalty"
	"credopass/internal/models"
	repo "credopass/internal/repository"
	"credopass/internal/service"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=OrganizationStore
type OrganizationStore interface {
	Create(ctx context.Context, org *models.Organization) (*models.Organization, error)
	GetById(ctx context.Context, orgID uuid.UUID) (*models.Organization, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=LoyaltyProvider
type LoyaltyProvider interface {
	Get(ctx context.Context, orgID, userID uuid.UUID) (*models.LoyaltyAccount, error)
}

type UserGetter interface {
	GetById(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type OrganizationService struct {
	trm             service.TransactionManager
	orgStore        OrganizationStore
	loyaltyProvider LoyaltyProvider
	userGetter      UserGetter
}

func NewOrganizationService(
	trm service.TransactionManager,
	orgStore OrganizationStore,
	loyaltyProvider LoyaltyProvider,
	userGetter UserGetter,
) *OrganizationService {
	return &OrganizationService{
		trm:             trm,
		orgStore:        orgStore,
		loyaltyProvider: loyaltyProvider,
		userGetter:      userGetter,
	}
}

func (s *OrganizationService) Create(ctx context.Context, name string) (*api.OrganizationSchema, error) {
	org, err := s.orgStore.Create(ctx, &models.Organization{
		ID:   uuid.New(),
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	resp := api.NewOrganizationSchema(org)
	return &resp, nil
}

func (s *OrganizationService) Get(ctx context.Context, orgID uuid.UUID) (*api.OrganizationSchema, error) {
	org, err := s.orgStore.GetById(ctx, orgID)
	if err != nil {
		return nil, err
	}

	resp := api.NewOrganizationSchema(org)
	return &resp, nil
}

// GetLoyalty returns the member's balance. A user who never checked in
// with the organization gets an empty bronze account.
func (s *OrganizationService) GetLoyalty(ctx context.Context, orgID, userID uuid.UUID) (*api.LoyaltySchema, error) {
	resp := &api.LoyaltySchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if _, err := s.orgStore.GetById(ctx, orgID); err != nil {
			return err
		}
		if _, err := s.userGetter.GetById(ctx, userID); err != nil {
			return err
		}

		account, err := s.loyaltyProvider.Get(ctx, orgID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			account = &models.LoyaltyAccount{
				OrganizationID: orgID,
				UserID:         userID,
				Tier:           loyalty.TierBronze.String(),
			}
		} else if err != nil {
			return err
		}

		*resp = api.NewLoyaltySchema(account)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
