package vendors

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists vendors. Every lookup is scoped by owner; a vendor owned
// by someone else is reported as ErrNotFound.
type Repository interface {
	List(ctx context.Context, userID string) ([]Vendor, error)
	Get(ctx context.Context, id, userID string) (Vendor, error)
	Create(ctx context.Context, vendor Vendor) (Vendor, error)
	Update(ctx context.Context, id, userID string, in UpdateInput) (Vendor, error)
	Delete(ctx context.Context, id, userID string) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const vendorColumns = `id, vendor_name, bank_account_no, bank_name, address_line1, address_line2, city, country, zip_code, user_id, created_at, updated_at`

func scanVendor(row pgx.Row) (Vendor, error) {
	var v Vendor
	err := row.Scan(&v.ID, &v.VendorName, &v.BankAccountNo, &v.BankName, &v.AddressLine1, &v.AddressLine2,
		&v.City, &v.Country, &v.ZipCode, &v.UserID, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vendor{}, ErrNotFound
	}
	return v, err
}

func (r *repository) List(ctx context.Context, userID string) ([]Vendor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE user_id = $1 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := []Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

func (r *repository) Get(ctx context.Context, id, userID string) (Vendor, error) {
	return scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *repository) Create(ctx context.Context, v Vendor) (Vendor, error) {
	query := `INSERT INTO vendors (id, vendor_name, bank_account_no, bank_name, address_line1, address_line2, city, country, zip_code, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11) RETURNING ` + vendorColumns
	now := time.Now().UTC()
	return scanVendor(r.db.QueryRow(ctx, query,
		v.ID, v.VendorName, v.BankAccountNo, v.BankName, v.AddressLine1, v.AddressLine2,
		v.City, v.Country, v.ZipCode, v.UserID, now))
}

func (r *repository) Update(ctx context.Context, id, userID string, in UpdateInput) (Vendor, error) {
	query, args, err := updateStatement(id, userID, in, time.Now().UTC())
	if err != nil {
		return Vendor{}, err
	}
	return scanVendor(r.db.QueryRow(ctx, query, args...))
}

// updateStatement builds an UPDATE touching only the present fields. The
// trailing placeholders are updated_at, id and user_id, in that order.
func updateStatement(id, userID string, in UpdateInput, now time.Time) (string, []interface{}, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value null.String) {
		if !value.Valid {
			return
		}
		args = append(args, value.String)
		placeholder := "$" + strconv.Itoa(len(args))
		if column == "address_line2" {
			placeholder = "NULLIF(" + placeholder + ", '')"
		}
		sets = append(sets, column+" = "+placeholder)
	}
	set("vendor_name", in.VendorName)
	set("bank_account_no", in.BankAccountNo)
	set("bank_name", in.BankName)
	set("address_line1", in.AddressLine1)
	set("address_line2", in.AddressLine2)
	set("city", in.City)
	set("country", in.Country)
	set("zip_code", in.ZipCode)
	if len(sets) == 0 {
		return "", nil, ErrNoChanges
	}

	args = append(args, now, id, userID)
	n := len(args)
	query := `UPDATE vendors SET ` + strings.Join(sets, ", ") +
		`, updated_at = $` + strconv.Itoa(n-2) +
		` WHERE id = $` + strconv.Itoa(n-1) + ` AND user_id = $` + strconv.Itoa(n) +
		` RETURNING ` + vendorColumns
	return query, args, nil
}

func (r *repository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
