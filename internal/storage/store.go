// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/smerla/milkbook/internal/models"
)

// Store defines the persistence operations for all milkbook collections.
// This abstraction keeps the service layer independent of the storage
// backend. Create methods assign ids and creation timestamps when the
// record arrives without them.
type Store interface {
	// Milk entries.
	CreateEntry(ctx context.Context, entry *models.MilkEntry) error
	GetEntry(ctx context.Context, id string) (*models.MilkEntry, error)
	ListEntries(ctx context.Context) ([]models.MilkEntry, error)
	// UpdateEntry replaces the whole record; entries are never partially
	// mutated.
	UpdateEntry(ctx context.Context, entry *models.MilkEntry) error
	DeleteEntry(ctx context.Context, id string) error

	// Customers.
	CreateCustomer(ctx context.Context, customer *models.CustomerProfile) error
	// GetCustomerByFarmerID matches case-insensitively. Returns (nil, nil)
	// when no profile exists.
	GetCustomerByFarmerID(ctx context.Context, farmerID string) (*models.CustomerProfile, error)
	ListCustomers(ctx context.Context) ([]models.CustomerProfile, error)
	UpdateCustomer(ctx context.Context, customer *models.CustomerProfile) error
	DeleteCustomer(ctx context.Context, id string) error

	// Billing invoices.
	CreateInvoice(ctx context.Context, invoice *models.BillingInvoice) error
	GetInvoice(ctx context.Context, id string) (*models.BillingInvoice, error)
	ListInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.BillingInvoice, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status models.InvoiceStatus) error
	DeleteInvoice(ctx context.Context, id string) error

	// Cash advances and supplement entries (independent collections).
	CreateCashAdvance(ctx context.Context, entry *models.AdvanceEntry) error
	ListCashAdvances(ctx context.Context, farmerID string) ([]models.AdvanceEntry, error)
	DeleteCashAdvance(ctx context.Context, id string) error
	CreateSupplement(ctx context.Context, entry *models.SupplementEntry) error
	ListSupplements(ctx context.Context, farmerID string) ([]models.SupplementEntry, error)
	DeleteSupplement(ctx context.Context, id string) error

	// Rate chart.
	SaveRateChartRow(ctx context.Context, row *models.RateChartRow) error
	ListRateChartRows(ctx context.Context) ([]models.RateChartRow, error)
	DeleteRateChartRow(ctx context.Context, id string) error

	// Feed entries.
	CreateFeedEntry(ctx context.Context, entry *models.FeedEntry) error
	ListFeedEntries(ctx context.Context) ([]models.FeedEntry, error)
	UpdateFeedEntry(ctx context.Context, entry *models.FeedEntry) error
	DeleteFeedEntry(ctx context.Context, id string) error

	// Users.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
