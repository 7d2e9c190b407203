package sqlite

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/model"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
)

func (s *RepositorySuite) TestInsertBlocks() {
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.InsertBlock{newInsertBlock(1), newInsertBlock(2)}))

	s.Equal(2, s.countRows("blocks"))
	s.Equal(2, s.countRows("transactions"))
	s.Equal(2, s.countRows("cells"))
	s.Equal(4, s.countRows("transactions_cells"))

	var (
		capacity               string
		lockHashType, lockArgs sql.NullString
		typeCodeHash           sql.NullString
	)
	s.Require().NoError(s.repo.db.QueryRowContext(s.testCtx, `
SELECT capacity, lock_hash_type, lock_args, type_code_hash
FROM cells
WHERE transaction_hash = ? AND "index" = 0`, hash("aa", 2)).Scan(&capacity, &lockHashType, &lockArgs, &typeCodeHash))
	s.Equal("18446744073709551615", capacity)
	s.Equal("type", lockHashType.String)
	s.Equal("0xabcd", lockArgs.String)
	s.False(typeCodeHash.Valid)

	var inputs int
	s.Require().NoError(s.repo.db.QueryRowContext(s.testCtx,
		`SELECT count(*) FROM transactions_cells WHERE is_input = 1 AND cell_index = 3`).Scan(&inputs))
	s.Equal(2, inputs)
}

func (s *RepositorySuite) TestInsertBlocksWithTypeScript() {
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)

	block := newInsertBlock(5)
	block.Transactions[0].Cells[0].Type = &model.Script{CodeHash: hash("ee", 1), HashType: "data1", Args: "0x"}
	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.InsertBlock{block}))

	var typeHashType, typeArgs string
	s.Require().NoError(s.repo.db.QueryRowContext(s.testCtx,
		`SELECT type_hash_type, type_args FROM cells WHERE transaction_hash = ?`, hash("aa", 5)).Scan(&typeHashType, &typeArgs))
	s.Equal("data1", typeHashType)
	s.Equal("0x", typeArgs)
}

func (s *RepositorySuite) TestInsertBlocksEmpty() {
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, nil))
	s.Equal(0, s.countRows("blocks"))
}

func (s *RepositorySuite) TestInsertBlocksRollsBackWholeBatch() {
	s.Require().NoError(s.schema.BuildIndexes(s.testCtx))
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Not(gomock.Nil()), gomock.Any()).Times(1)

	// the second copy of block 2 violates the unique block number index
	err := s.repo.InsertBlocks(s.testCtx, []model.InsertBlock{newInsertBlock(1), newInsertBlock(2), newInsertBlock(2)})
	s.Require().Error(err)
	s.True(errors.Is(err, errs.StorageWrite))

	s.Equal(0, s.countRows("blocks"))
	s.Equal(0, s.countRows("transactions"))
	s.Equal(0, s.countRows("cells"))
	s.Equal(0, s.countRows("transactions_cells"))
}

func (s *RepositorySuite) TestReinsertAfterIndexesFails() {
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Not(gomock.Nil()), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.InsertBlock{newInsertBlock(1)}))
	s.Require().NoError(s.schema.BuildIndexes(s.testCtx))

	err := s.repo.InsertBlocks(s.testCtx, []model.InsertBlock{newInsertBlock(1)})
	s.Require().Error(err)
	s.True(errors.Is(err, errs.StorageWrite))
	s.Equal(1, s.countRows("blocks"))
}

func (s *RepositorySuite) TestInsertBlocksCanceledContext() {
	s.metrics.EXPECT().Observe("insert_blocks", gomock.Not(gomock.Nil()), gomock.Any()).Times(1)

	ctx, cancel := context.WithCancel(s.testCtx)
	cancel()

	s.Require().Error(s.repo.InsertBlocks(ctx, []model.InsertBlock{newInsertBlock(1)}))
	s.Equal(0, s.countRows("blocks"))
}
