package nervos

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/errs"
	"github.com/goodnatureofminers/blockinsight7000-ckb/pkg/safe"
)

// BuildBlock validates a get_block_by_number result for the requested number
// and maps it into a chain.Block.
func BuildBlock(src *BlockResult, requested uint64) (chain.Block, error) {
	if src == nil {
		return chain.Block{}, invalid(errors.Newf("block %d not found", requested))
	}
	if uint64(src.Header.Number) != requested {
		return chain.Block{}, invalid(errors.Newf("requested block %d, node returned %d", requested, uint64(src.Header.Number)))
	}

	txs := make([]chain.Transaction, 0, len(src.Transactions))
	for i, tx := range src.Transactions {
		converted, err := buildTransaction(tx)
		if err != nil {
			return chain.Block{}, errors.Wrapf(err, "block %d tx %d", requested, i)
		}
		txs = append(txs, converted)
	}

	return chain.Block{
		Number:       requested,
		Hash:         src.Header.Hash.Hex(),
		ParentHash:   src.Header.ParentHash.Hex(),
		Timestamp:    uint64(src.Header.Timestamp),
		Transactions: txs,
	}, nil
}

func buildTransaction(tx TransactionResult) (chain.Transaction, error) {
	inputs := make([]chain.OutPoint, 0, len(tx.Inputs))
	for i, in := range tx.Inputs {
		index, err := safe.Uint32(uint64(in.PreviousOutput.Index))
		if err != nil {
			return chain.Transaction{}, invalid(errors.Wrapf(err, "tx %s input %d index", tx.Hash.Hex(), i))
		}
		inputs = append(inputs, chain.OutPoint{
			TxHash: in.PreviousOutput.TxHash.Hex(),
			Index:  index,
		})
	}

	outputs := make([]chain.Output, 0, len(tx.Outputs))
	for i, out := range tx.Outputs {
		if out.Lock == nil {
			return chain.Transaction{}, invalid(errors.Newf("tx %s output %d missing lock script", tx.Hash.Hex(), i))
		}
		lock, err := buildScript(*out.Lock)
		if err != nil {
			return chain.Transaction{}, errors.Wrapf(err, "tx %s output %d lock", tx.Hash.Hex(), i)
		}
		output := chain.Output{
			Capacity: uint64(out.Capacity),
			Lock:     lock,
		}
		if out.Type != nil {
			typeScript, err := buildScript(*out.Type)
			if err != nil {
				return chain.Transaction{}, errors.Wrapf(err, "tx %s output %d type", tx.Hash.Hex(), i)
			}
			output.Type = &typeScript
		}
		outputs = append(outputs, output)
	}

	return chain.Transaction{
		Hash:    tx.Hash.Hex(),
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

func buildScript(s ScriptResult) (chain.Script, error) {
	hashType := chain.HashType(s.HashType)
	if !hashType.Valid() {
		return chain.Script{}, invalid(errors.Newf("unknown hash type %q", s.HashType))
	}
	return chain.Script{
		CodeHash: s.CodeHash.Hex(),
		HashType: hashType,
		Args:     hexutil.Encode(s.Args),
	}, nil
}

func invalid(err error) error {
	return errors.Mark(err, errs.InvalidBlock)
}
