package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/model"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/safe"
)

const (
	insertBlockQuery = `
INSERT INTO blocks (number, hash, parent_hash, timestamp)
VALUES (?, ?, ?, ?)`

	insertTransactionQuery = `
INSERT INTO transactions (hash, block_number)
VALUES (?, ?)`

	insertCellQuery = `
INSERT INTO cells (
    transaction_hash,
    "index",
    capacity,
    lock_code_hash,
    lock_hash_type,
    lock_args,
    type_code_hash,
    type_hash_type,
    type_args
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertCellReferenceQuery = `
INSERT INTO transactions_cells (transaction_hash, cell_index, is_input)
VALUES (?, ?, ?)`
)

type insertStatements struct {
	block, transaction, cell, reference *sql.Stmt
}

// InsertBlocks writes blocks and their derived rows in a single transaction.
// Rows are written in order block, transactions, cells, references. Any failure
// rolls the whole call back.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.InsertBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "begin insert transaction"), errs.StorageWrite)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmts, err := prepareInsertStatements(ctx, tx)
	if err != nil {
		return errors.Mark(err, errs.StorageWrite)
	}
	defer stmts.close()

	for _, block := range blocks {
		if err = stmts.insertBlock(ctx, block); err != nil {
			return errors.Mark(err, errs.StorageWrite)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Mark(errors.Wrap(err, "commit insert transaction"), errs.StorageWrite)
	}
	return nil
}

func prepareInsertStatements(ctx context.Context, tx *sql.Tx) (*insertStatements, error) {
	s := &insertStatements{}
	var err error
	if s.block, err = tx.PrepareContext(ctx, insertBlockQuery); err != nil {
		return nil, errors.Wrap(err, "prepare block insert")
	}
	if s.transaction, err = tx.PrepareContext(ctx, insertTransactionQuery); err != nil {
		s.close()
		return nil, errors.Wrap(err, "prepare transaction insert")
	}
	if s.cell, err = tx.PrepareContext(ctx, insertCellQuery); err != nil {
		s.close()
		return nil, errors.Wrap(err, "prepare cell insert")
	}
	if s.reference, err = tx.PrepareContext(ctx, insertCellReferenceQuery); err != nil {
		s.close()
		return nil, errors.Wrap(err, "prepare cell reference insert")
	}
	return s, nil
}

func (s *insertStatements) close() {
	for _, stmt := range []*sql.Stmt{s.block, s.transaction, s.cell, s.reference} {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
}

func (s *insertStatements) insertBlock(ctx context.Context, b model.InsertBlock) error {
	number, err := safe.Int64(b.Block.Number)
	if err != nil {
		return errors.Wrap(err, "block number")
	}
	timestamp, err := safe.Int64(b.Block.Timestamp)
	if err != nil {
		return errors.Wrapf(err, "block %d timestamp", b.Block.Number)
	}
	if _, err := s.block.ExecContext(ctx, number, b.Block.Hash, b.Block.ParentHash, timestamp); err != nil {
		return errors.Wrapf(err, "insert block %d", b.Block.Number)
	}

	for _, tx := range b.Transactions {
		blockNumber, err := safe.Int64(tx.Transaction.BlockNumber)
		if err != nil {
			return errors.Wrapf(err, "transaction %s block number", tx.Transaction.Hash)
		}
		if _, err := s.transaction.ExecContext(ctx, tx.Transaction.Hash, blockNumber); err != nil {
			return errors.Wrapf(err, "insert transaction %s", tx.Transaction.Hash)
		}
		for _, cell := range tx.Cells {
			if err := s.insertCell(ctx, cell); err != nil {
				return err
			}
		}
		for _, ref := range tx.References {
			if _, err := s.reference.ExecContext(ctx, ref.TransactionHash, int64(ref.CellIndex), ref.IsInput); err != nil {
				return errors.Wrapf(err, "insert cell reference %s:%d input=%t", ref.TransactionHash, ref.CellIndex, ref.IsInput)
			}
		}
	}
	return nil
}

func (s *insertStatements) insertCell(ctx context.Context, c model.Cell) error {
	lockCodeHash, lockHashType, lockArgs := scriptColumns(c.Lock)
	typeCodeHash, typeHashType, typeArgs := scriptColumns(c.Type)

	_, err := s.cell.ExecContext(ctx,
		c.TransactionHash,
		int64(c.Index),
		strconv.FormatUint(c.Capacity, 10),
		lockCodeHash,
		lockHashType,
		lockArgs,
		typeCodeHash,
		typeHashType,
		typeArgs,
	)
	if err != nil {
		return errors.Wrapf(err, "insert cell %s:%d", c.TransactionHash, c.Index)
	}
	return nil
}

func scriptColumns(s *model.Script) (codeHash, hashType, args sql.NullString) {
	if s == nil {
		return
	}
	return sql.NullString{String: s.CodeHash, Valid: true},
		sql.NullString{String: s.HashType, Valid: true},
		sql.NullString{String: s.Args, Valid: true}
}
