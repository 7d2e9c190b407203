package loader

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/goodnatureofminers/blockinsight7000-ckb/internal/ckb/chain"
)

func blockHash(n uint64) string {
	return fmt.Sprintf("0xb0%062x", n)
}

func txHash(n uint64, i int) string {
	return fmt.Sprintf("0xc0%02x%060x", i, n)
}

var (
	secp256k1 = chain.Script{
		CodeHash: "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8",
		HashType: chain.HashTypeType,
		Args:     "0xda648442dbb7347e467d1d09da13e5cd3a0ef0e1",
	}
	sudt = chain.Script{
		CodeHash: "0x5e7a36a77e68eecc013dfa2fe6a23f3b6c344b04005808694ae6dd45eea4cfd5",
		HashType: chain.HashTypeType,
		Args:     "0x01",
	}
)

// syntheticBlock builds block n: a cellbase transaction and, after block 1, a
// transfer spending the previous block's cellbase output into two cells.
func syntheticBlock(n uint64) chain.Block {
	txs := []chain.Transaction{{
		Hash:    txHash(n, 0),
		Inputs:  []chain.OutPoint{{TxHash: "0x" + fmt.Sprintf("%064x", 0), Index: chain.NullOutPointIndex}},
		Outputs: []chain.Output{{Capacity: 1000 * n, Lock: secp256k1}},
	}}
	if n > 1 {
		txs = append(txs, chain.Transaction{
			Hash:   txHash(n, 1),
			Inputs: []chain.OutPoint{{TxHash: txHash(n-1, 0), Index: 0}},
			Outputs: []chain.Output{
				{Capacity: 600 * (n - 1), Lock: secp256k1},
				{Capacity: 400 * (n - 1), Lock: secp256k1, Type: &sudt},
			},
		})
	}
	return chain.Block{
		Number:       n,
		Hash:         blockHash(n),
		ParentHash:   blockHash(n - 1),
		Timestamp:    1_573_852_190_812 + n*8_000,
		Transactions: txs,
	}
}

// fakeChain serves synthetic blocks up to tip.
type fakeChain struct {
	tip     uint64
	failAt  map[uint64]error
	fetched atomic.Int64
}

func (c *fakeChain) TipBlockNumber(context.Context) (uint64, error) {
	return c.tip, nil
}

func (c *fakeChain) BlockByNumber(ctx context.Context, number uint64) (chain.Block, error) {
	if err := ctx.Err(); err != nil {
		return chain.Block{}, err
	}
	if err, ok := c.failAt[number]; ok {
		return chain.Block{}, err
	}
	if number > c.tip {
		return chain.Block{}, fmt.Errorf("block %d beyond tip %d", number, c.tip)
	}
	c.fetched.Add(1)
	return syntheticBlock(number), nil
}
