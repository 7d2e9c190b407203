// Package chain defines the validated block structures handed from the node source to the loader.
package chain

import "strings"

// HashType selects how a script's code hash is matched against deployed code.
type HashType string

const (
	HashTypeData  HashType = "data"
	HashTypeType  HashType = "type"
	HashTypeData1 HashType = "data1"
	HashTypeData2 HashType = "data2"
)

// Valid reports whether the hash type is one the node may emit.
func (h HashType) Valid() bool {
	switch h {
	case HashTypeData, HashTypeType, HashTypeData1, HashTypeData2:
		return true
	default:
		return false
	}
}

// NullOutPointIndex is the output index of the out point consumed by a cellbase input.
const NullOutPointIndex = ^uint32(0)

var nullTxHash = "0x" + strings.Repeat("0", 64)

// Block is a block fetched from the node, already validated at the RPC boundary.
type Block struct {
	Number       uint64
	Hash         string
	ParentHash   string
	Timestamp    uint64
	Transactions []Transaction
}

// Transaction is a transaction with the out points it consumes and the cells it creates.
type Transaction struct {
	Hash    string
	Inputs  []OutPoint
	Outputs []Output
}

// OutPoint addresses a cell by its creating transaction and output index.
type OutPoint struct {
	TxHash string
	Index  uint32
}

// IsNull reports whether the out point is the cellbase placeholder, which references no cell.
func (o OutPoint) IsNull() bool {
	return o.Index == NullOutPointIndex && o.TxHash == nullTxHash
}

// Output is a cell created by a transaction.
type Output struct {
	Capacity uint64
	Lock     Script
	Type     *Script
}

// Script identifies a lock or type script.
type Script struct {
	CodeHash string
	HashType HashType
	Args     string
}
