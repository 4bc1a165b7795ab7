package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/smerla/milkbook/internal/models"
	"github.com/smerla/milkbook/internal/storage"
)

// CustomerService manages farmer profiles. Farmer ids are unique
// case-insensitively; the check here covers the edit path, where the row
// being edited must be excluded from the comparison.
type CustomerService struct {
	store storage.Store
}

func NewCustomerService(store storage.Store) *CustomerService {
	return &CustomerService{store: store}
}

func validateCustomer(customer *models.CustomerProfile) error {
	if customer.FarmerID == "" {
		return &models.ValidationError{Field: "farmerId", Message: "farmer id is required"}
	}
	if customer.FarmerName == "" {
		return &models.ValidationError{Field: "farmerName", Message: "farmer name is required"}
	}
	return nil
}

// Add registers a new farmer profile, rejecting duplicate farmer ids.
func (s *CustomerService) Add(ctx context.Context, customer *models.CustomerProfile) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	existing, err := s.store.GetCustomerByFarmerID(ctx, customer.FarmerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.ErrDuplicateFarmerID
	}

	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return err
	}
	slog.Info("Customer registered", "customer_id", customer.ID, "farmer_id", customer.FarmerID)
	return nil
}

// Update replaces a profile. A farmer id collision with any other profile
// is rejected; matching the edited row itself is allowed, so saving without
// changing the id (or only changing its case) succeeds.
func (s *CustomerService) Update(ctx context.Context, customer *models.CustomerProfile) error {
	if customer.ID == "" {
		return &models.ValidationError{Field: "id", Message: "customer id is required"}
	}
	if err := validateCustomer(customer); err != nil {
		return err
	}

	existing, err := s.store.GetCustomerByFarmerID(ctx, customer.FarmerID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != customer.ID {
		return models.ErrDuplicateFarmerID
	}

	return s.store.UpdateCustomer(ctx, customer)
}

// Delete removes a profile. Existing milk entries for the farmer are kept;
// reports fall back to showing the raw farmer id.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteCustomer(ctx, id)
}

// List returns all profiles ordered by farmer id.
func (s *CustomerService) List(ctx context.Context) ([]models.CustomerProfile, error) {
	return s.store.ListCustomers(ctx)
}

// Resolver returns a name-resolution function over the current profiles for
// the report breakdowns.
func (s *CustomerService) Resolver(ctx context.Context) (func(farmerID string) string, error) {
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]string, len(customers))
	for _, c := range customers {
		byID[strings.ToLower(c.FarmerID)] = c.FarmerName
	}
	return func(farmerID string) string {
		if name, ok := byID[strings.ToLower(farmerID)]; ok && name != "" {
			return name
		}
		return farmerID
	}, nil
}
