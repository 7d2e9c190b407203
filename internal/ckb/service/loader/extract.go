package loader

import (
	"github.com/samber/lo"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/model"
)

// extractBlock decomposes a block into the rows written for it.
func extractBlock(b chain.Block) model.InsertBlock {
	return model.InsertBlock{
		Block: model.Block{
			Number:     b.Number,
			Hash:       b.Hash,
			ParentHash: b.ParentHash,
			Timestamp:  b.Timestamp,
		},
		Transactions: lo.Map(b.Transactions, func(tx chain.Transaction, _ int) model.InsertTransaction {
			return extractTransaction(b.Number, tx)
		}),
	}
}

// extractTransaction builds one cell and one output reference per output, then
// one input reference per consumed out point. Null out points reference no cell
// and are skipped.
func extractTransaction(blockNumber uint64, tx chain.Transaction) model.InsertTransaction {
	cells := lo.Map(tx.Outputs, func(out chain.Output, i int) model.Cell {
		lock := toScript(out.Lock)
		cell := model.Cell{
			TransactionHash: tx.Hash,
			Index:           uint32(i),
			Capacity:        out.Capacity,
			Lock:            &lock,
		}
		if out.Type != nil {
			typeScript := toScript(*out.Type)
			cell.Type = &typeScript
		}
		return cell
	})

	refs := lo.Map(cells, func(c model.Cell, _ int) model.CellReference {
		return model.CellReference{TransactionHash: c.TransactionHash, CellIndex: c.Index}
	})
	inputs := lo.FilterMap(tx.Inputs, func(in chain.OutPoint, _ int) (model.CellReference, bool) {
		if in.IsNull() {
			return model.CellReference{}, false
		}
		return model.CellReference{TransactionHash: in.TxHash, CellIndex: in.Index, IsInput: true}, true
	})

	return model.InsertTransaction{
		Transaction: model.Transaction{Hash: tx.Hash, BlockNumber: blockNumber},
		Cells:       cells,
		References:  append(refs, inputs...),
	}
}

func toScript(s chain.Script) model.Script {
	return model.Script{
		CodeHash: s.CodeHash,
		HashType: string(s.HashType),
		Args:     s.Args,
	}
}
