package access

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

type developerRow struct {
	ID          int    `db:"id"`
	LastName    string `db:"last_name"`
	FirstName   string `db:"first_name"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	ProfileID   int    `db:"profile_id"`
	ProfileName string `db:"profile_name"`
}

type profileRow struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// decodeRow maps a row onto out by column name. Every tagged field must be
// present in the row. Drivers differ in the Go types they hand back (MySQL
// returns text as []byte, PostgreSQL returns int4 as int32) so conversions
// between compatible kinds are allowed.
func decodeRow(row Row, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "db",
		WeaklyTypedInput: true,
		ErrorUnset:       true,
	})
	if err != nil {
		return fmt.Errorf("failed to build row decoder: %w", err)
	}

	if err := decoder.Decode(row); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	return nil
}
