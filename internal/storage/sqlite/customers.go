package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smerla/milkbook/internal/models"
)

// CreateCustomer inserts a new customer profile. The farmer_id column is
// COLLATE NOCASE unique, so a case-insensitive duplicate fails here even if
// the service-level check was bypassed.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, customer *models.CustomerProfile) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt == 0 {
		customer.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (id, farmer_id, farmer_name, address, mobile_number, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		customer.ID, customer.FarmerID, customer.FarmerName, customer.Address,
		customer.MobileNumber, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

// GetCustomerByFarmerID retrieves a profile matching the farmer id
// case-insensitively. Returns (nil, nil) when no profile exists.
func (s *SQLiteStore) GetCustomerByFarmerID(ctx context.Context, farmerID string) (*models.CustomerProfile, error) {
	customer := &models.CustomerProfile{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, farmer_id, farmer_name, address, mobile_number, created_at
		 FROM customers WHERE farmer_id = ? COLLATE NOCASE`, farmerID,
	).Scan(&customer.ID, &customer.FarmerID, &customer.FarmerName,
		&customer.Address, &customer.MobileNumber, &customer.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// ListCustomers returns all customer profiles ordered by farmer id.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]models.CustomerProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, farmer_id, farmer_name, address, mobile_number, created_at
		 FROM customers ORDER BY farmer_id COLLATE NOCASE ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []models.CustomerProfile
	for rows.Next() {
		var c models.CustomerProfile
		if err := rows.Scan(&c.ID, &c.FarmerID, &c.FarmerName, &c.Address, &c.MobileNumber, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}
	return customers, nil
}

// UpdateCustomer replaces an existing profile.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, customer *models.CustomerProfile) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE customers SET farmer_id = ?, farmer_name = ?, address = ?, mobile_number = ? WHERE id = ?`,
		customer.FarmerID, customer.FarmerName, customer.Address, customer.MobileNumber, customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer not found: %s", customer.ID)
	}
	return nil
}

// DeleteCustomer removes a profile by id.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("customer not found: %s", id)
	}
	return nil
}
