package helper

import (
	"database/sql"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func StringPtr(s string) *string {
	return &s
}

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func StringToNull(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func RawStringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func StringToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// DecimalFromNumeric parses the string representation Postgres NUMERIC
// columns come back as. Malformed input maps to zero, matching how the
// handlers treat missing prices.
func DecimalFromNumeric(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Float64ToDecimalExact goes through the string form to keep NUMERIC
// precision intact.
func Float64ToDecimalExact(f float64) decimal.Decimal {
	return decimal.RequireFromString(
		strconv.FormatFloat(f, 'f', -1, 64),
	)
}

func DecimalToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
