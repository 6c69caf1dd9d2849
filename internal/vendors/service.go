package vendors

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/guregu/null/v5"
)

// Service applies vendor rules on top of a Repository.
type Service struct {
	repo     Repository
	validate *validator.Validate
	newID    func() string
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: newValidator(), newID: uuid.NewString}
}

// List returns every vendor owned by userID. The result is never nil.
func (s *Service) List(ctx context.Context, userID string) ([]Vendor, error) {
	if userID == "" {
		return nil, ErrNoOwner
	}
	vendors, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendors == nil {
		vendors = []Vendor{}
	}
	return vendors, nil
}

// Get loads a single vendor owned by userID.
func (s *Service) Get(ctx context.Context, id, userID string) (Vendor, error) {
	id, err := checkScope(id, userID)
	if err != nil {
		return Vendor{}, err
	}
	return s.repo.Get(ctx, id, userID)
}

// Create validates in and stores it as a new vendor owned by userID.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Vendor, error) {
	if userID == "" {
		return Vendor{}, ErrNoOwner
	}
	in = in.normalized()
	if err := s.validateCreate(in); err != nil {
		return Vendor{}, err
	}
	vendor := Vendor{
		ID:            s.newID(),
		VendorName:    in.VendorName,
		BankAccountNo: in.BankAccountNo,
		BankName:      in.BankName,
		AddressLine1:  in.AddressLine1,
		AddressLine2:  null.NewString(in.AddressLine2, in.AddressLine2 != ""),
		City:          in.City,
		Country:       in.Country,
		ZipCode:       in.ZipCode,
		UserID:        userID,
	}
	return s.repo.Create(ctx, vendor)
}

// Update applies the fields present in in to the vendor.
func (s *Service) Update(ctx context.Context, id, userID string, in UpdateInput) (Vendor, error) {
	id, err := checkScope(id, userID)
	if err != nil {
		return Vendor{}, err
	}
	in = in.normalized()
	if err := validateUpdate(in); err != nil {
		return Vendor{}, err
	}
	return s.repo.Update(ctx, id, userID, in)
}

// Delete removes the vendor permanently.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	id, err := checkScope(id, userID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id, userID)
}

func checkScope(id, userID string) (string, error) {
	if userID == "" {
		return "", ErrNoOwner
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", ErrMissingID
	}
	return id, nil
}
