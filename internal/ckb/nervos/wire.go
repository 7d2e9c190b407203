package nervos

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BlockResult is the get_block_by_number response.
type BlockResult struct {
	Header       HeaderResult        `json:"header"`
	Transactions []TransactionResult `json:"transactions"`
}

// HeaderResult carries the header fields the loader persists.
type HeaderResult struct {
	Number     hexutil.Uint64 `json:"number"`
	Hash       common.Hash    `json:"hash"`
	ParentHash common.Hash    `json:"parent_hash"`
	Timestamp  hexutil.Uint64 `json:"timestamp"`
}

type TransactionResult struct {
	Hash    common.Hash    `json:"hash"`
	Inputs  []InputResult  `json:"inputs"`
	Outputs []OutputResult `json:"outputs"`
}

type InputResult struct {
	PreviousOutput OutPointResult `json:"previous_output"`
	Since          hexutil.Uint64 `json:"since"`
}

type OutPointResult struct {
	TxHash common.Hash    `json:"tx_hash"`
	Index  hexutil.Uint64 `json:"index"`
}

type OutputResult struct {
	Capacity hexutil.Uint64 `json:"capacity"`
	Lock     *ScriptResult  `json:"lock"`
	Type     *ScriptResult  `json:"type"`
}

type ScriptResult struct {
	CodeHash common.Hash   `json:"code_hash"`
	HashType string        `json:"hash_type"`
	Args     hexutil.Bytes `json:"args"`
}
