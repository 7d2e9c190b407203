package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/safe"
)

// MaxBlockNumber returns the highest stored block number. ok is false when the
// blocks table is empty.
func (r *Repository) MaxBlockNumber(ctx context.Context) (number uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_number", err, start)
	}()

	const query = `SELECT MAX(number) FROM blocks`

	var maxNumber sql.NullInt64
	if err = r.db.QueryRowContext(ctx, query).Scan(&maxNumber); err != nil {
		return 0, false, errors.Wrap(err, "query max block number")
	}
	if !maxNumber.Valid {
		return 0, false, nil
	}

	number, err = safe.Uint64(maxNumber.Int64)
	if err != nil {
		return 0, false, errors.Wrap(err, "max block number")
	}
	return number, true, nil
}
