package model

// Transaction is a row of the transactions table.
type Transaction struct {
	Hash        string
	BlockNumber uint64
}

// Script holds the columns of a lock or type script.
type Script struct {
	CodeHash string
	HashType string
	Args     string
}

// Cell is a row of the cells table: one transaction output.
// A nil Type is persisted as NULL type columns.
type Cell struct {
	TransactionHash string
	Index           uint32
	Capacity        uint64
	Lock            *Script
	Type            *Script
}

// CellReference is a row of the transactions_cells table. With IsInput false it
// records the creation of a cell; with IsInput true it records that the cell
// (TransactionHash, CellIndex) is consumed by a later transaction.
type CellReference struct {
	TransactionHash string
	CellIndex       uint32
	IsInput         bool
}
