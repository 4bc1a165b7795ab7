package models

// CustomerProfile is a registered farmer.
//
// FarmerID is the unique key; uniqueness is enforced case-insensitively on
// insert and on edit-save (excluding the row being edited).
type CustomerProfile struct {
	// ID is the storage key (UUID format).
	ID string `json:"id"`

	FarmerID     string `json:"farmerId"`
	FarmerName   string `json:"farmerName"`
	Address      string `json:"address"`
	MobileNumber string `json:"mobileNumber"`

	// CreatedAt is the Unix timestamp when the profile was registered.
	CreatedAt int64 `json:"createdAt"`
}
