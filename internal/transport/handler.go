package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/foreign"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/merkle"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/repository/bolt"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/spv"
	"go.uber.org/zap"
)

const maxRequestBody = 4 << 20

// Handler serves the burn-claim JSON API.
type Handler struct {
	claims     ClaimService
	scan       ScanControl
	admission  Admission
	settlement Settlement
	logger     *zap.Logger
}

// NewHandler builds the API handler.
func NewHandler(claimService ClaimService, scan ScanControl, admission Admission, settlement Settlement, logger *zap.Logger) *Handler {
	return &Handler{
		claims:     claimService,
		scan:       scan,
		admission:  admission,
		settlement: settlement,
		logger:     logger,
	}
}

// Routes mounts every API endpoint on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/burns/verify", h.verifyBurn)
	mux.HandleFunc("POST /v1/claims", h.submitClaim)
	mux.HandleFunc("POST /v1/claims/compact", h.submitClaimCompact)
	mux.HandleFunc("GET /v1/claims", h.listClaims)
	mux.HandleFunc("GET /v1/claims/{txid}", h.getClaim)
	mux.HandleFunc("GET /v1/claims/{txid}/exists", h.claimExists)
	mux.HandleFunc("GET /v1/stats", h.aggregateStats)
	mux.HandleFunc("GET /v1/scan/status", h.scanStatus)
	mux.HandleFunc("GET /v1/scan/next-range", h.nextScanRange)
	mux.HandleFunc("POST /v1/scan/advance", h.advanceScanCursor)
	mux.HandleFunc("GET /v1/admission", h.admissionStatus)
	mux.HandleFunc("PUT /v1/admission", h.setAdmission)
	mux.HandleFunc("GET /v1/settlement/health", h.settlementHealth)
	mux.HandleFunc("GET /v1/settlement/{height}", h.settlementAtHeight)
	return mux
}

type burnInfoResponse struct {
	Version      byte   `json:"version"`
	NetworkTag   byte   `json:"network_tag"`
	Destination  string `json:"destination"`
	BurnedAmount uint64 `json:"burned_amount"`
}

type submitClaimRequest struct {
	RawTx     string   `json:"raw_tx"`
	BlockHash string   `json:"block_hash"`
	Height    uint32   `json:"height"`
	TxIndex   uint32   `json:"tx_index"`
	Proof     []string `json:"proof"`
}

type submitCompactRequest struct {
	RawTx        string `json:"raw_tx"`
	CompactProof string `json:"compact_proof"`
}

type submitClaimResponse struct {
	LocalTxID     string `json:"local_txid"`
	ForeignTxID   string `json:"foreign_txid"`
	BurnedAmount  uint64 `json:"burned_amount"`
	Destination   string `json:"destination"`
	Confirmations uint32 `json:"confirmations"`
}

type claimResponse struct {
	ForeignTxID      string `json:"foreign_txid"`
	ForeignBlockHash string `json:"foreign_block_hash"`
	ForeignHeight    uint32 `json:"foreign_height"`
	BurnedAmount     uint64 `json:"burned_amount"`
	Destination      string `json:"destination"`
	LocalTxID        string `json:"local_txid"`
	ClaimHeight      uint32 `json:"claim_height"`
	Status           string `json:"status"`
	FinalHeight      uint32 `json:"final_height,omitempty"`
	Orphaned         bool   `json:"orphaned"`
}

type advanceScanRequest struct {
	Height    uint32 `json:"height"`
	BlockHash string `json:"block_hash"`
}

type setAdmissionRequest struct {
	Enabled bool `json:"enabled"`
}

type scanStatusResponse struct {
	LastHeight   uint32 `json:"last_height"`
	LastHash     string `json:"last_hash"`
	TipHeight    uint32 `json:"tip_height"`
	MinHeight    uint32 `json:"min_height"`
	BlocksBehind uint32 `json:"blocks_behind"`
	Synced       bool   `json:"synced"`
}

type scanRangeResponse struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Count uint32 `json:"count"`
	AtTip bool   `json:"at_tip"`
}

type admissionResponse struct {
	Enabled       bool   `json:"enabled"`
	ConfigDefault bool   `json:"config_default"`
	LastChanged   string `json:"last_changed,omitempty"`
	Changed       *bool  `json:"changed,omitempty"`
}

type settlementResponse struct {
	Height              uint32 `json:"height"`
	BlockHash           string `json:"block_hash"`
	M0Total             uint64 `json:"m0_total"`
	M0Vaulted           uint64 `json:"m0_vaulted"`
	M0Shielded          uint64 `json:"m0_shielded"`
	M1Supply            uint64 `json:"m1_supply"`
	BurnClaimsThisBlock uint64 `json:"burn_claims_this_block"`
	A5Delta             *int64 `json:"a5_delta,omitempty"`
	A6Delta             *int64 `json:"a6_delta,omitempty"`
	Clean               *bool  `json:"clean,omitempty"`
}

func (h *Handler) verifyBurn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RawTx string `json:"raw_tx"`
	}
	if !h.decodeBody(w, r, &req) {
		return
	}
	raw, err := hex.DecodeString(req.RawTx)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: raw_tx is not hex", errBadRequest))
		return
	}

	info, err := h.claims.VerifyBurn(raw)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, burnInfoResponse{
		Version:      info.Version,
		NetworkTag:   info.NetworkTag,
		Destination:  info.Destination.String(),
		BurnedAmount: info.BurnedAmount,
	})
}

func (h *Handler) submitClaim(w http.ResponseWriter, r *http.Request) {
	var req submitClaimRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	raw, err := hex.DecodeString(req.RawTx)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: raw_tx is not hex", errBadRequest))
		return
	}
	blockHash, err := chainhash.NewHashFromStr(req.BlockHash)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: block_hash: %v", errBadRequest, err))
		return
	}
	proof := make([]chainhash.Hash, 0, len(req.Proof))
	for i, s := range req.Proof {
		node, err := chainhash.NewHashFromStr(s)
		if err != nil {
			h.writeError(w, fmt.Errorf("%w: proof[%d]: %v", errBadRequest, i, err))
			return
		}
		proof = append(proof, *node)
	}

	result, err := h.claims.SubmitClaim(r.Context(), raw, *blockHash, req.Height, proof, req.TxIndex)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, submitResultResponse(result))
}

func (h *Handler) submitClaimCompact(w http.ResponseWriter, r *http.Request) {
	var req submitCompactRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	raw, err := hex.DecodeString(req.RawTx)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: raw_tx is not hex", errBadRequest))
		return
	}
	compact, err := hex.DecodeString(req.CompactProof)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: compact_proof is not hex", errBadRequest))
		return
	}

	result, err := h.claims.SubmitClaimFromCompactProof(r.Context(), raw, compact)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, submitResultResponse(result))
}

func (h *Handler) getClaim(w http.ResponseWriter, r *http.Request) {
	txid, ok := h.pathTxID(w, r)
	if !ok {
		return
	}
	view, err := h.claims.GetClaim(txid)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if view == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no claim recorded for foreign txid"})
		return
	}
	h.writeJSON(w, http.StatusOK, claimViewResponse(*view))
}

func (h *Handler) claimExists(w http.ResponseWriter, r *http.Request) {
	txid, ok := h.pathTxID(w, r)
	if !ok {
		return
	}
	exists, err := h.claims.ClaimExists(txid)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Exists bool `json:"exists"`
	}{Exists: exists})
}

func (h *Handler) listClaims(w http.ResponseWriter, r *http.Request) {
	filter, err := parseStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	limit := h.queryInt(r, "limit", 100)
	offset := h.queryInt(r, "offset", 0)

	views, err := h.claims.ListClaims(filter, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]claimResponse, 0, len(views))
	for _, view := range views {
		out = append(out, claimViewResponse(view))
	}
	h.writeJSON(w, http.StatusOK, struct {
		Claims []claimResponse `json:"claims"`
	}{Claims: out})
}

func (h *Handler) aggregateStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.claims.AggregateStats()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		TotalRecords       uint64 `json:"total_records"`
		PendingCount       uint64 `json:"pending_count"`
		FinalCount         uint64 `json:"final_count"`
		TotalClaimedAmount uint64 `json:"total_claimed_amount"`
		PendingAmount      uint64 `json:"pending_amount"`
	}{
		TotalRecords:       stats.TotalRecords,
		PendingCount:       stats.PendingCount,
		FinalCount:         stats.FinalCount,
		TotalClaimedAmount: stats.TotalClaimedAmount,
		PendingAmount:      stats.PendingAmount,
	})
}

func (h *Handler) scanStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.scan.Status()
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scanStatusResponse{
		LastHeight:   status.LastHeight,
		LastHash:     status.LastHash,
		TipHeight:    status.TipHeight,
		MinHeight:    status.MinHeight,
		BlocksBehind: status.BlocksBehind,
		Synced:       status.Synced,
	})
}

func (h *Handler) nextScanRange(w http.ResponseWriter, r *http.Request) {
	maxBlocks := uint32(h.queryInt(r, "max_blocks", 0))
	rng, err := h.scan.NextRange(maxBlocks)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scanRangeResponse{
		Start: rng.Start,
		End:   rng.End,
		Count: rng.Count,
		AtTip: rng.AtTip,
	})
}

func (h *Handler) advanceScanCursor(w http.ResponseWriter, r *http.Request) {
	var req advanceScanRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	hash, err := chainhash.NewHashFromStr(req.BlockHash)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: block_hash: %v", errBadRequest, err))
		return
	}
	if err := h.scan.Advance(req.Height, *hash); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) admissionStatus(w http.ResponseWriter, r *http.Request) {
	status := h.admission.Status()
	h.writeJSON(w, http.StatusOK, admissionStatusResponse(status, nil))
}

func (h *Handler) setAdmission(w http.ResponseWriter, r *http.Request) {
	var req setAdmissionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	changed, err := h.admission.SetEnabled(req.Enabled)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, admissionStatusResponse(h.admission.Status(), &changed))
}

func (h *Handler) settlementHealth(w http.ResponseWriter, r *http.Request) {
	latest, deltas, err := h.settlement.Health()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if latest == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no settlement snapshots recorded"})
		return
	}
	resp := settlementStateResponse(latest)
	clean := deltas.Clean()
	resp.A5Delta = &deltas.A5
	resp.A6Delta = &deltas.A6
	resp.Clean = &clean
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) settlementAtHeight(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseUint(r.PathValue("height"), 10, 32)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: height: %v", errBadRequest, err))
		return
	}
	state, err := h.settlement.AtHeight(uint32(height))
	if err != nil {
		h.writeError(w, err)
		return
	}
	if state == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no settlement snapshot at height"})
		return
	}
	h.writeJSON(w, http.StatusOK, settlementStateResponse(state))
}

func submitResultResponse(result *claims.SubmitResult) submitClaimResponse {
	return submitClaimResponse{
		LocalTxID:     result.LocalTxID.String(),
		ForeignTxID:   result.ForeignTxID.String(),
		BurnedAmount:  result.BurnedAmount,
		Destination:   result.Destination.String(),
		Confirmations: result.Confirmations,
	}
}

func claimViewResponse(view model.ClaimView) claimResponse {
	return claimResponse{
		ForeignTxID:      view.ForeignTxID.String(),
		ForeignBlockHash: view.ForeignBlockHash.String(),
		ForeignHeight:    view.ForeignHeight,
		BurnedAmount:     view.BurnedAmount,
		Destination:      view.Destination.String(),
		LocalTxID:        view.LocalTxID.String(),
		ClaimHeight:      view.ClaimHeight,
		Status:           view.EffectiveStatus(),
		FinalHeight:      view.FinalHeight,
		Orphaned:         view.Orphaned,
	}
}

func admissionStatusResponse(status model.KillSwitchStatus, changed *bool) admissionResponse {
	resp := admissionResponse{
		Enabled:       status.Enabled,
		ConfigDefault: status.ConfigDefault,
		Changed:       changed,
	}
	if !status.LastChanged.IsZero() {
		resp.LastChanged = status.LastChanged.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func settlementStateResponse(state *model.SettlementState) settlementResponse {
	return settlementResponse{
		Height:              state.Height,
		BlockHash:           state.BlockHash,
		M0Total:             state.M0Total,
		M0Vaulted:           state.M0Vaulted,
		M0Shielded:          state.M0Shielded,
		M1Supply:            state.M1Supply,
		BurnClaimsThisBlock: state.BurnClaimsThisBlock,
	}
}

func parseStatusFilter(s string) (model.StatusFilter, error) {
	switch s {
	case "", "all":
		return model.FilterAll, nil
	case "pending":
		return model.FilterPending, nil
	case "final":
		return model.FilterFinal, nil
	case "orphaned":
		return model.FilterOrphaned, nil
	default:
		return model.FilterAll, fmt.Errorf("%w: unknown status filter %q", errBadRequest, s)
	}
}

func (h *Handler) pathTxID(w http.ResponseWriter, r *http.Request) (chainhash.Hash, bool) {
	txid, err := chainhash.NewHashFromStr(r.PathValue("txid"))
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: txid: %v", errBadRequest, err))
		return chainhash.Hash{}, false
	}
	return *txid, true
}

func (h *Handler) queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return false
	}
	return true
}

type errorResponse struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("bad request")

// writeError maps domain errors onto HTTP status codes: caller input faults
// are 4xx, retryable preconditions 409/422, infrastructure faults 5xx.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		mismatch     *foreign.NetworkMismatchError
		insufficient *claims.InsufficientConfirmationsError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, foreign.ErrMalformedTransaction),
		errors.Is(err, foreign.ErrNotABurn),
		errors.As(err, &mismatch),
		errors.Is(err, merkle.ErrProofInvalid),
		errors.Is(err, merkle.ErrProofExtractionFailed),
		errors.Is(err, claims.ErrRootMismatch),
		errors.Is(err, claims.ErrTxidMismatch),
		errors.Is(err, spv.ErrHeightMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, spv.ErrHeaderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, claims.ErrDuplicateClaim):
		status = http.StatusConflict
	case errors.As(err, &insufficient),
		errors.Is(err, spv.ErrNotInBestChain):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, claims.ErrBurnsDisabled),
		errors.Is(err, spv.ErrOracleUnavailable),
		errors.Is(err, bolt.ErrUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
