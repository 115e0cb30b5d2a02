package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/notify"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/repository"
)

type fakeOrgStore struct {
	byID map[string]*entity.Organization
}

func (f *fakeOrgStore) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	if org, ok := f.byID[id]; ok {
		copied := *org
		return &copied, nil
	}
	return nil, fmt.Errorf("organization %s: %w", id, apperr.ErrNoRecordFound)
}

func (f *fakeOrgStore) FindByName(ctx context.Context, name string) (*entity.Organization, error) {
	for _, org := range f.byID {
		if org.Name == name {
			copied := *org
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("organization %q: %w", name, apperr.ErrNoRecordFound)
}

func (f *fakeOrgStore) List(ctx context.Context, params repository.ListParams) ([]entity.Organization, int64, error) {
	var orgs []entity.Organization
	for _, org := range f.byID {
		orgs = append(orgs, *org)
	}
	return orgs, int64(len(orgs)), nil
}

func (f *fakeOrgStore) Create(ctx context.Context, org *entity.Organization) error {
	if org.ID == "" {
		org.ID = fmt.Sprintf("org-%d", len(f.byID)+1)
	}
	f.byID[org.ID] = org
	return nil
}

func (f *fakeOrgStore) Update(ctx context.Context, id string, updates map[string]any) error {
	return nil
}

func (f *fakeOrgStore) SetStoreDetails(ctx context.Context, id string, details *entity.StoreDetails) error {
	org, ok := f.byID[id]
	if !ok {
		return fmt.Errorf("organization %s: %w", id, apperr.ErrNoRecordFound)
	}
	org.StoreDetails = details
	return nil
}

type fakeUserStore struct {
	users []*entity.User
}

func (f *fakeUserStore) FindByOrg(ctx context.Context, orgID string) (*entity.User, error) {
	for _, user := range f.users {
		if user.OrganizationID == orgID {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user for organization %s: %w", orgID, apperr.ErrNoRecordFound)
}

func (f *fakeUserStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.Email == email {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserStore) Create(ctx context.Context, user *entity.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) Update(ctx context.Context, id string, updates map[string]any) error {
	return nil
}

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	events chan notify.StoreStatusEvent
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{events: make(chan notify.StoreStatusEvent, 1)}
}

func (n *recordingNotifier) StoreStatusChanged(ctx context.Context, ev notify.StoreStatusEvent) error {
	n.events <- ev
	return nil
}

func (n *recordingNotifier) wait(t *testing.T) notify.StoreStatusEvent {
	t.Helper()
	select {
	case ev := <-n.events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no store status event emitted")
		return notify.StoreStatusEvent{}
	}
}

func newOrgServiceFixture(orgs ...*entity.Organization) (*OrganizationService, *fakeOrgStore, *fakeUserStore, *recordingNotifier) {
	store := &fakeOrgStore{byID: map[string]*entity.Organization{}}
	for _, org := range orgs {
		store.byID[org.ID] = org
	}
	users := &fakeUserStore{}
	notifier := newRecordingNotifier()
	svc := NewOrganizationService(store, users, &fakeResolver{}, notifier)
	return svc, store, users, notifier
}

func TestSetStoreDetails_EmitsStatusEvent(t *testing.T) {
	tests := []struct {
		name      string
		status    string
		wantLabel string
		wantRange bool
	}{
		{"enabled store", entity.StoreStatusEnabled, "enable", false},
		{"disabled store", entity.StoreStatusDisabled, "disable", false},
		{"closed store", entity.StoreStatusClosed, "close", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			org := testOrg("org-1")
			svc, store, _, notifier := newOrgServiceFixture(&org)

			details := *org.StoreDetails
			details.StoreTiming = &entity.StoreTiming{Status: tc.status}
			if err := svc.SetStoreDetails(context.Background(), "org-1", &details); err != nil {
				t.Fatalf("SetStoreDetails: %v", err)
			}

			ev := notifier.wait(t)
			if ev.ProviderID != "org-1" {
				t.Errorf("provider id = %q", ev.ProviderID)
			}
			if ev.LocationID != "loc-org-1" {
				t.Errorf("location id = %q, want loc-org-1", ev.LocationID)
			}
			if ev.Label != tc.wantLabel {
				t.Errorf("label = %q, want %q", ev.Label, tc.wantLabel)
			}
			if tc.wantRange && ev.Range == nil {
				t.Error("closed stores must carry the timing range")
			}
			if !tc.wantRange && ev.Range != nil {
				t.Errorf("unexpected range payload: %+v", ev.Range)
			}

			if store.byID["org-1"].StoreDetails.StoreTiming.Status != tc.status {
				t.Error("store details were not persisted")
			}
		})
	}
}

func TestSetStoreDetails_UnknownOrg(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()
	err := svc.SetStoreDetails(context.Background(), "ghost", &entity.StoreDetails{})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCreate_DuplicateOrganizationName(t *testing.T) {
	org := testOrg("org-1")
	svc, _, _, _ := newOrgServiceFixture(&org)

	input := CreateInput{ProviderDetails: entity.Organization{Name: org.Name}}
	input.User.Email = "new@seller.in"
	input.User.Password = "secret"

	_, _, err := svc.Create(context.Background(), input)
	if !apperr.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreate_DuplicateUserEmail(t *testing.T) {
	svc, _, users, _ := newOrgServiceFixture()
	users.users = append(users.users, &entity.User{Email: "taken@seller.in"})

	input := CreateInput{ProviderDetails: entity.Organization{Name: "Fresh Mart"}}
	input.User.Email = "taken@seller.in"
	input.User.Password = "secret"

	_, _, err := svc.Create(context.Background(), input)
	if !apperr.IsDuplicate(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestCreate_AssignsOrgAdmin(t *testing.T) {
	svc, _, _, _ := newOrgServiceFixture()

	input := CreateInput{ProviderDetails: entity.Organization{Name: "Fresh Mart"}}
	input.User.Email = "owner@freshmart.in"
	input.User.Password = "secret"

	org, user, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.Role != entity.RoleOrgAdmin {
		t.Errorf("role = %q, want %q", user.Role, entity.RoleOrgAdmin)
	}
	if user.OrganizationID != org.ID {
		t.Error("user not linked to the new organization")
	}
	if user.Password == "secret" {
		t.Error("password stored unhashed")
	}
}
