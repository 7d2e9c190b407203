// Package model defines the rows persisted by the history loader.
package model

// Block is a row of the blocks table.
type Block struct {
	Number     uint64
	Hash       string
	ParentHash string
	Timestamp  uint64
}
