// Package localchain talks to the local node whose admission pipeline
// re-validates and mints burn claims.
package localchain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/pkg/safe"
)

type (
	// RPCMetrics records metrics for local node RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Engine submits claim transactions to the local node over JSON-RPC. The
// node re-derives every assertion in the payload; acceptance here is the
// consensus-binding step.
type Engine struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewEngine constructs an instrumented local-chain engine.
func NewEngine(client *rpcclient.Client, rpcMetrics RPCMetrics) (*Engine, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if rpcMetrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	return &Engine{client: client, rpcMetrics: rpcMetrics}, nil
}

// Submit sends a serialized claim transaction through the node's
// submitburnclaim RPC and returns the local txid it was assigned.
func (e *Engine) Submit(ctx context.Context, claimTx *claims.ClaimTx) (txid chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		e.rpcMetrics.Observe("submit_burn_claim", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}

	raw, err := claimTx.Serialize()
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("serialize claim tx: %w", err)
	}

	param, err := json.Marshal(hex.EncodeToString(raw))
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("encode claim param: %w", err)
	}

	resp, err := e.client.RawRequest("submitburnclaim", []json.RawMessage{param})
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("submitburnclaim: %w", err)
	}

	var txidStr string
	if err = json.Unmarshal(resp, &txidStr); err != nil {
		return chainhash.Hash{}, fmt.Errorf("decode submitburnclaim response: %w", err)
	}
	hash, err := chainhash.NewHashFromStr(txidStr)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("parse local txid: %w", err)
	}
	return *hash, nil
}

// TipHeight returns the local chain's best height.
func (e *Engine) TipHeight() (height uint32, err error) {
	started := time.Now()
	defer func() {
		e.rpcMetrics.Observe("get_block_count", err, started)
	}()

	count, err := e.client.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("local block count: %w", err)
	}
	height, err = safe.Uint32(count)
	if err != nil {
		return 0, fmt.Errorf("local block count: %w", err)
	}
	return height, nil
}

// SettlementAt fetches the node's supply snapshot for a height through the
// getsettlementinfo RPC.
func (e *Engine) SettlementAt(ctx context.Context, height uint32) (state *model.SettlementState, err error) {
	started := time.Now()
	defer func() {
		e.rpcMetrics.Observe("get_settlement_info", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	param, err := json.Marshal(height)
	if err != nil {
		return nil, fmt.Errorf("encode settlement param: %w", err)
	}

	resp, err := e.client.RawRequest("getsettlementinfo", []json.RawMessage{param})
	if err != nil {
		return nil, fmt.Errorf("getsettlementinfo at %d: %w", height, err)
	}

	var info struct {
		Height              uint32 `json:"height"`
		BlockHash           string `json:"block_hash"`
		M0Total             uint64 `json:"m0_total"`
		M0Vaulted           uint64 `json:"m0_vaulted"`
		M0Shielded          uint64 `json:"m0_shielded"`
		M1Supply            uint64 `json:"m1_supply"`
		BurnClaimsThisBlock uint64 `json:"burn_claims"`
	}
	if err = json.Unmarshal(resp, &info); err != nil {
		return nil, fmt.Errorf("decode getsettlementinfo response: %w", err)
	}

	return &model.SettlementState{
		Height:              info.Height,
		BlockHash:           info.BlockHash,
		M0Total:             info.M0Total,
		M0Vaulted:           info.M0Vaulted,
		M0Shielded:          info.M0Shielded,
		M1Supply:            info.M1Supply,
		BurnClaimsThisBlock: info.BurnClaimsThisBlock,
	}, nil
}
