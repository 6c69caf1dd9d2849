package vendors

import (
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatement(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	const returning = ` RETURNING ` + vendorColumns

	tests := []struct {
		name      string
		in        UpdateInput
		wantQuery string
		wantArgs  []interface{}
	}{
		{
			name:      "single field",
			in:        UpdateInput{City: null.StringFrom("Paris")},
			wantQuery: `UPDATE vendors SET city = $1, updated_at = $2 WHERE id = $3 AND user_id = $4` + returning,
			wantArgs:  []interface{}{"Paris", now, "v1", "u1"},
		},
		{
			name: "columns keep declaration order",
			in: UpdateInput{
				ZipCode:    null.StringFrom("75001"),
				VendorName: null.StringFrom("Acme"),
				BankName:   null.StringFrom("BNP"),
			},
			wantQuery: `UPDATE vendors SET vendor_name = $1, bank_name = $2, zip_code = $3, updated_at = $4 WHERE id = $5 AND user_id = $6` + returning,
			wantArgs:  []interface{}{"Acme", "BNP", "75001", now, "v1", "u1"},
		},
		{
			name:      "empty address line 2 clears the column",
			in:        UpdateInput{AddressLine2: null.StringFrom("")},
			wantQuery: `UPDATE vendors SET address_line2 = NULLIF($1, ''), updated_at = $2 WHERE id = $3 AND user_id = $4` + returning,
			wantArgs:  []interface{}{"", now, "v1", "u1"},
		},
		{
			name: "every field",
			in:   FullUpdate(CreateInput{VendorName: "a", BankAccountNo: "b", BankName: "c", AddressLine1: "d", AddressLine2: "e", City: "f", Country: "g", ZipCode: "h"}),
			wantQuery: `UPDATE vendors SET vendor_name = $1, bank_account_no = $2, bank_name = $3, address_line1 = $4, ` +
				`address_line2 = NULLIF($5, ''), city = $6, country = $7, zip_code = $8, updated_at = $9 WHERE id = $10 AND user_id = $11` + returning,
			wantArgs: []interface{}{"a", "b", "c", "d", "e", "f", "g", "h", now, "v1", "u1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := updateStatement("v1", "u1", tc.in, now)
			require.NoError(t, err)
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestUpdateStatementWithoutFields(t *testing.T) {
	_, _, err := updateStatement("v1", "u1", UpdateInput{}, time.Now())
	assert.ErrorIs(t, err, ErrNoChanges)
}
