package database

import (
	"crypto/sha256"
	"crypto/sha512"
	"database/sql/driver"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

func init() {
	// sqlx does not know the modernc driver name
	sqlx.BindDriver("sqlite", sqlx.QUESTION)

	// SHA2(str, bits) mirrors the MySQL built-in so statements stay portable.
	sqlite.MustRegisterDeterministicScalarFunction("sha2", 2, sqliteSHA2)
}

func sqliteSHA2(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	var input []byte
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		input = []byte(v)
	case []byte:
		input = v
	default:
		input = []byte(fmt.Sprint(v))
	}

	bits, ok := args[1].(int64)
	if !ok {
		return nil, nil
	}

	h := newSHA2(bits)
	if h == nil {
		// MySQL answers NULL for unsupported lengths
		return nil, nil
	}
	h.Write(input)
	return hex.EncodeToString(h.Sum(nil)), nil
}

func newSHA2(bits int64) hash.Hash {
	switch bits {
	case 0, 256:
		return sha256.New()
	case 224:
		return sha256.New224()
	case 384:
		return sha512.New384()
	case 512:
		return sha512.New()
	default:
		return nil
	}
}
