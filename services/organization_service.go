package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/notify"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/repository"
	"github.com/SciSaif/seller-app/storage"
)

type OrganizationStore interface {
	FindByID(ctx context.Context, id string) (*entity.Organization, error)
	FindByName(ctx context.Context, name string) (*entity.Organization, error)
	List(ctx context.Context, params repository.ListParams) ([]entity.Organization, int64, error)
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, id string, updates map[string]any) error
	SetStoreDetails(ctx context.Context, id string, details *entity.StoreDetails) error
}

type UserStore interface {
	FindByOrg(ctx context.Context, orgID string) (*entity.User, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, id string, updates map[string]any) error
}

// OrganizationService manages seller organizations and their store
// configuration, and emits store status events to the core service.
type OrganizationService struct {
	orgs     OrganizationStore
	users    UserStore
	assets   storage.AssetResolver
	notifier notify.Notifier
}

func NewOrganizationService(orgs OrganizationStore, users UserStore, assets storage.AssetResolver, notifier notify.Notifier) *OrganizationService {
	return &OrganizationService{orgs: orgs, users: users, assets: assets, notifier: notifier}
}

// CreateInput carries a new organization plus its admin user.
type CreateInput struct {
	ProviderDetails entity.Organization `json:"providerDetails"`
	User            struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Mobile   string `json:"mobile"`
	} `json:"user"`
}

// Create registers an organization together with its admin user.
func (s *OrganizationService) Create(ctx context.Context, input CreateInput) (*entity.Organization, *entity.User, error) {
	if _, err := s.orgs.FindByName(ctx, input.ProviderDetails.Name); err == nil {
		return nil, nil, fmt.Errorf("organization %q: %w", input.ProviderDetails.Name, apperr.ErrDuplicateRecord)
	} else if !apperr.IsNotFound(err) {
		return nil, nil, err
	}

	count, err := s.users.CountByEmail(ctx, input.User.Email)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, fmt.Errorf("user %q: %w", input.User.Email, apperr.ErrDuplicateRecord)
	}

	org := input.ProviderDetails
	if err := s.orgs.Create(ctx, &org); err != nil {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user := &entity.User{
		Email:          input.User.Email,
		Password:       string(hash),
		Name:           input.User.Name,
		Mobile:         input.User.Mobile,
		Role:           entity.RoleOrgAdmin,
		OrganizationID: org.ID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	return &org, user, nil
}

func (s *OrganizationService) List(ctx context.Context, params repository.ListParams) ([]entity.Organization, int64, error) {
	return s.orgs.List(ctx, params)
}

// Get returns an organization with its admin user, proof paths resolved
// to signed URLs.
func (s *OrganizationService) Get(ctx context.Context, orgID string) (*entity.Organization, *entity.User, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.FindByOrg(ctx, orgID)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, nil, err
	}

	if err := s.resolveProofs(ctx, org); err != nil {
		return nil, nil, err
	}
	return org, user, nil
}

func (s *OrganizationService) resolveProofs(ctx context.Context, org *entity.Organization) error {
	for _, proof := range []*string{
		&org.IDProof, &org.AddressProof, &org.PANProof, &org.GSTNProof, &org.CancelledCheque,
	} {
		url, err := s.resolvePath(ctx, *proof)
		if err != nil {
			return err
		}
		*proof = url
	}
	if org.StoreDetails != nil {
		logo, err := s.resolvePath(ctx, org.StoreDetails.Logo)
		if err != nil {
			return err
		}
		org.StoreDetails.Logo = logo
	}
	return nil
}

func (s *OrganizationService) resolvePath(ctx context.Context, path string) (string, error) {
	url, err := s.assets.Resolve(ctx, path)
	if apperr.IsNotFound(err) {
		return "", nil
	}
	return url, err
}

// UpdateInput carries partial organization and user updates.
type UpdateInput struct {
	ProviderDetails map[string]any `json:"providerDetails"`
	User            map[string]any `json:"user"`
}

func (s *OrganizationService) Update(ctx context.Context, orgID string, input UpdateInput) error {
	if _, err := s.orgs.FindByID(ctx, orgID); err != nil {
		return err
	}
	if len(input.User) > 0 {
		user, err := s.users.FindByOrg(ctx, orgID)
		if err != nil {
			return err
		}
		if err := s.users.Update(ctx, user.ID, input.User); err != nil {
			return err
		}
	}
	if len(input.ProviderDetails) > 0 {
		if err := s.orgs.Update(ctx, orgID, input.ProviderDetails); err != nil {
			return err
		}
	}
	return nil
}

func (s *OrganizationService) GetStoreDetails(ctx context.Context, orgID string) (*entity.StoreDetails, error) {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.StoreDetails == nil {
		return &entity.StoreDetails{}, nil
	}
	logo, err := s.resolvePath(ctx, org.StoreDetails.Logo)
	if err != nil {
		return nil, err
	}
	org.StoreDetails.Logo = logo
	return org.StoreDetails, nil
}

// SetStoreDetails replaces the store configuration and notifies the
// core service of the resulting location status. Delivery is
// fire-and-forget; a failed notification is logged, not returned.
func (s *OrganizationService) SetStoreDetails(ctx context.Context, orgID string, details *entity.StoreDetails) error {
	org, err := s.orgs.FindByID(ctx, orgID)
	if err != nil {
		return err
	}
	if err := s.orgs.SetStoreDetails(ctx, orgID, details); err != nil {
		return err
	}

	org.StoreDetails = details
	ev := storeStatusEvent(org)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.StoreStatusChanged(ctx, ev); err != nil {
			log.Printf("[OrganizationService] store update notification for %s failed: %v", orgID, err)
		}
	}()
	return nil
}

func storeStatusEvent(org *entity.Organization) notify.StoreStatusEvent {
	ev := notify.StoreStatusEvent{
		ProviderID: org.ID,
		LocationID: resolveLocationID(org),
		Label:      "enable",
	}
	store := org.StoreDetails
	if store != nil && store.StoreTiming != nil {
		ev.Label = entity.StoreStatusLabel(store.StoreTiming.Status)
		if store.StoreTiming.Status == entity.StoreStatusClosed {
			ev.Range = store.StoreTiming
		}
	}
	return ev
}
