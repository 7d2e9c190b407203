package model

// InsertBlock groups a block with its decomposed rows for one ordered insert.
type InsertBlock struct {
	Block        Block
	Transactions []InsertTransaction
}

// InsertTransaction holds a transaction row followed by the rows derived from it,
// in the order they are written: cells first, then references (outputs, then inputs).
type InsertTransaction struct {
	Transaction Transaction
	Cells       []Cell
	References  []CellReference
}

// RowCounts reports how many rows an insert produces per table.
type RowCounts struct {
	Blocks         int
	Transactions   int
	Cells          int
	CellReferences int
}

// Add accumulates the rows of b.
func (c *RowCounts) Add(b InsertBlock) {
	c.Blocks++
	c.Transactions += len(b.Transactions)
	for _, tx := range b.Transactions {
		c.Cells += len(tx.Cells)
		c.CellReferences += len(tx.References)
	}
}
