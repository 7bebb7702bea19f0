package schema

import (
	"database/sql/driver"
	"fmt"
)

// BoolInt is a bool persisted as an integer (0 = false, 1 = true). The
// conversion is symmetric: writing goes through Value, reading through Scan,
// so a round trip preserves the boolean.
type BoolInt bool

// Value implements driver.Valuer.
func (b BoolInt) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner. Integer and native boolean storage are both
// accepted so the type works against either column flavor.
func (b *BoolInt) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = false
	case int64:
		*b = v != 0
	case bool:
		*b = BoolInt(v)
	case []byte:
		*b = len(v) > 0 && v[0] != '0' && v[0] != 'f'
	default:
		return fmt.Errorf("cannot scan %T into BoolInt", src)
	}
	return nil
}

// Bool returns the plain boolean value.
func (b BoolInt) Bool() bool { return bool(b) }
