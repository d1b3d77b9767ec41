// Package claims verifies foreign-chain burns and maintains the burn-claim
// ledger.
package claims

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/foreign"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/merkle"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"
	"go.uber.org/zap"
)

// SubmitResult is the response to an accepted claim submission.
type SubmitResult struct {
	LocalTxID     chainhash.Hash
	ForeignTxID   chainhash.Hash
	BurnedAmount  uint64
	Destination   model.Destination
	Confirmations uint32
}

// Service implements burn verification and the claim ledger operations.
// Submissions and queries run to completion under one coarse lock; no
// operation suspends mid-flight.
type Service struct {
	mu sync.Mutex

	store                 Store
	oracle                Oracle
	engine                Engine
	gate                  Gate
	network               model.Network
	requiredConfirmations uint32
	metrics               Metrics
	logger                *zap.Logger

	stats statsCache
}

// NewService builds a Service with dependencies.
func NewService(
	store Store,
	oracle Oracle,
	engine Engine,
	gate Gate,
	network model.Network,
	requiredConfirmations uint32,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if store == nil {
		return nil, errors.New("claim store is required")
	}
	if oracle == nil {
		return nil, errors.New("spv oracle is required")
	}
	if engine == nil {
		return nil, errors.New("admission engine is required")
	}
	if gate == nil {
		return nil, errors.New("admission gate is required")
	}
	if metrics == nil {
		return nil, errors.New("claim metrics is required")
	}
	if requiredConfirmations == 0 {
		return nil, errors.New("required confirmations must be positive")
	}

	return &Service{
		store:                 store,
		oracle:                oracle,
		engine:                engine,
		gate:                  gate,
		network:               network,
		requiredConfirmations: requiredConfirmations,
		metrics:               metrics,
		logger:                logger.With(zap.String("network", string(network))),
	}, nil
}

// VerifyBurn parses raw foreign transaction bytes and extracts the burn
// metadata without consulting the header chain.
func (s *Service) VerifyBurn(raw []byte) (*model.BurnInfo, error) {
	tx, err := foreign.ParseTransaction(raw)
	if err != nil {
		return nil, err
	}
	return foreign.ExtractBurnInfo(tx, s.network)
}

// SubmitClaim verifies an explicit-proof claim and submits it for local
// admission. All verification precedes any mutation; on failure no record
// is written.
func (s *Service) SubmitClaim(
	ctx context.Context,
	rawForeignTx []byte,
	blockHash chainhash.Hash,
	height uint32,
	proof []chainhash.Hash,
	txIndex uint32,
) (result *SubmitResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSubmission("explicit", err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, info, err := s.parseBurn(rawForeignTx)
	if err != nil {
		return nil, err
	}
	return s.verifyAndSubmit(ctx, tx, info, blockHash, &height, txIndex, proof)
}

// SubmitClaimFromCompactProof verifies a compact partial-tree claim and
// submits it for local admission. The compact and explicit forms normalize
// to the same verification core and accept or reject identically.
func (s *Service) SubmitClaimFromCompactProof(
	ctx context.Context,
	rawForeignTx []byte,
	compactProof []byte,
) (result *SubmitResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveSubmission("compact", err, started)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, info, err := s.parseBurn(rawForeignTx)
	if err != nil {
		return nil, err
	}

	header, extracted, err := merkle.ParseCompactProof(compactProof)
	if err != nil {
		return nil, err
	}
	if !extracted.Root.IsEqual(&header.MerkleRoot) {
		return nil, fmt.Errorf("%w: recovered %s, declared %s", ErrRootMismatch, extracted.Root, header.MerkleRoot)
	}
	if !extracted.TxID.IsEqual(&tx.TxID) {
		return nil, fmt.Errorf("%w: proof matches %s, transaction is %s", ErrTxidMismatch, extracted.TxID, tx.TxID)
	}

	blockHash := header.BlockHash()
	return s.verifyAndSubmit(ctx, tx, info, blockHash, nil, extracted.Index, extracted.Path)
}

func (s *Service) parseBurn(rawForeignTx []byte) (*model.ForeignTx, *model.BurnInfo, error) {
	tx, err := foreign.ParseTransaction(rawForeignTx)
	if err != nil {
		return nil, nil, err
	}
	info, err := foreign.ExtractBurnInfo(tx, s.network)
	if err != nil {
		return nil, nil, err
	}
	return tx, info, nil
}

// verifyAndSubmit is the shared submission core. claimedHeight is nil for
// the compact form, which carries no independent height assertion.
func (s *Service) verifyAndSubmit(
	ctx context.Context,
	tx *model.ForeignTx,
	info *model.BurnInfo,
	blockHash chainhash.Hash,
	claimedHeight *uint32,
	txIndex uint32,
	proof []chainhash.Hash,
) (*SubmitResult, error) {
	header, oracleHeight, err := s.oracle.GetHeader(&blockHash)
	if err != nil {
		return nil, err
	}

	inBestChain, err := s.oracle.IsInBestChain(&blockHash)
	if err != nil {
		return nil, err
	}
	if !inBestChain {
		return nil, fmt.Errorf("%w: %s", spv.ErrNotInBestChain, blockHash)
	}

	height := oracleHeight
	if claimedHeight != nil && *claimedHeight != oracleHeight {
		return nil, fmt.Errorf("%w: claimed %d, oracle reports %d", spv.ErrHeightMismatch, *claimedHeight, oracleHeight)
	}

	if err := merkle.VerifyInclusion(tx.TxID, txIndex, proof, header.MerkleRoot); err != nil {
		return nil, err
	}

	confirmations, err := s.oracle.GetConfirmations(&blockHash)
	if err != nil {
		return nil, err
	}
	if confirmations < s.requiredConfirmations {
		return nil, &InsufficientConfirmationsError{
			Confirmations: confirmations,
			Required:      s.requiredConfirmations,
		}
	}

	exists, err := s.store.HasClaim(tx.TxID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateClaim, tx.TxID)
	}

	if !s.gate.Enabled() {
		return nil, ErrBurnsDisabled
	}

	claimHeight, err := s.engine.TipHeight()
	if err != nil {
		return nil, fmt.Errorf("local tip height: %w", err)
	}

	claimTx := BuildClaimTx(tx.Raw, blockHash, height, txIndex, proof)
	localTxID, err := s.engine.Submit(ctx, claimTx)
	if err != nil {
		return nil, fmt.Errorf("submit claim for %s: %w", tx.TxID, err)
	}

	record := &model.BurnClaimRecord{
		ForeignTxID:      tx.TxID,
		ForeignBlockHash: blockHash,
		ForeignHeight:    height,
		BurnedAmount:     info.BurnedAmount,
		Destination:      info.Destination,
		LocalTxID:        localTxID,
		ClaimHeight:      claimHeight,
		Status:           model.ClaimPending,
	}
	if err := s.store.PutClaim(record); err != nil {
		// The local transaction was already handed to the engine; surface
		// the inconsistency instead of pretending the claim was rejected.
		s.logger.Error("claim accepted but record not stored",
			zap.String("foreignTxid", tx.TxID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("store claim record for %s: %w", tx.TxID, err)
	}
	s.stats.invalidate()
	s.metrics.AddBurnedAmount(info.BurnedAmount)

	s.logger.Info("burn claim accepted",
		zap.String("foreignTxid", tx.TxID.String()),
		zap.String("localTxid", localTxID.String()),
		zap.Uint32("foreignHeight", height),
		zap.Uint32("confirmations", confirmations),
		zap.Stringer("burnedAmount", btcutil.Amount(info.BurnedAmount)),
		zap.String("destination", info.Destination.String()),
	)

	return &SubmitResult{
		LocalTxID:     localTxID,
		ForeignTxID:   tx.TxID,
		BurnedAmount:  info.BurnedAmount,
		Destination:   info.Destination,
		Confirmations: confirmations,
	}, nil
}
