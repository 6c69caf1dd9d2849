package vendors

import (
	"time"

	"github.com/guregu/null/v5"
)

// Vendor is a payee owned by a single user.
type Vendor struct {
	ID            string      `json:"id"`
	VendorName    string      `json:"vendorName"`
	BankAccountNo string      `json:"bankAccountNo"`
	BankName      string      `json:"bankName"`
	AddressLine1  string      `json:"addressLine1"`
	AddressLine2  null.String `json:"addressLine2,omitzero"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	ZipCode       string      `json:"zipCode"`
	UserID        string      `json:"userId"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateInput carries the fields a client may set on a new vendor. The owner
// is never read from the client.
type CreateInput struct {
	VendorName    string `json:"vendorName" validate:"required"`
	BankAccountNo string `json:"bankAccountNo" validate:"required"`
	BankName      string `json:"bankName" validate:"required"`
	AddressLine1  string `json:"addressLine1" validate:"required"`
	AddressLine2  string `json:"addressLine2"`
	City          string `json:"city" validate:"required"`
	Country       string `json:"country" validate:"required"`
	ZipCode       string `json:"zipCode" validate:"required"`
}

// UpdateInput is a partial vendor. Only fields present in the request are
// applied; an explicit empty addressLine2 clears it.
type UpdateInput struct {
	VendorName    null.String `json:"vendorName"`
	BankAccountNo null.String `json:"bankAccountNo"`
	BankName      null.String `json:"bankName"`
	AddressLine1  null.String `json:"addressLine1"`
	AddressLine2  null.String `json:"addressLine2"`
	City          null.String `json:"city"`
	Country       null.String `json:"country"`
	ZipCode       null.String `json:"zipCode"`
}

// FromVendor converts a stored vendor back into form values.
func FromVendor(v Vendor) CreateInput {
	return CreateInput{
		VendorName:    v.VendorName,
		BankAccountNo: v.BankAccountNo,
		BankName:      v.BankName,
		AddressLine1:  v.AddressLine1,
		AddressLine2:  v.AddressLine2.ValueOrZero(),
		City:          v.City,
		Country:       v.Country,
		ZipCode:       v.ZipCode,
	}
}

// FullUpdate marks every field of in as present. HTML forms always post the
// whole record.
func FullUpdate(in CreateInput) UpdateInput {
	return UpdateInput{
		VendorName:    null.StringFrom(in.VendorName),
		BankAccountNo: null.StringFrom(in.BankAccountNo),
		BankName:      null.StringFrom(in.BankName),
		AddressLine1:  null.StringFrom(in.AddressLine1),
		AddressLine2:  null.StringFrom(in.AddressLine2),
		City:          null.StringFrom(in.City),
		Country:       null.StringFrom(in.Country),
		ZipCode:       null.StringFrom(in.ZipCode),
	}
}
