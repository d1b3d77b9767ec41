package transport

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/claims"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

const defaultClientTimeout = 30 * time.Second

// Client is a Go client for the burn-claim API. The scanner daemon uses it
// to submit discovered claims and advance the server-side scan cursor, so
// the API daemon stays the only writer of persistent state.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a Client for the API at baseURL. httpClient may be nil.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("base url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultClientTimeout}
	}
	return &Client{baseURL: baseURL, http: httpClient}, nil
}

// SubmitClaim posts an explicit-proof claim. A conflict response is
// surfaced as the duplicate-claim error so callers can treat resubmission
// as idempotent.
func (c *Client) SubmitClaim(
	ctx context.Context,
	rawForeignTx []byte,
	blockHash chainhash.Hash,
	height uint32,
	proof []chainhash.Hash,
	txIndex uint32,
) (*claims.SubmitResult, error) {
	proofStrs := make([]string, 0, len(proof))
	for _, node := range proof {
		proofStrs = append(proofStrs, node.String())
	}
	req := submitClaimRequest{
		RawTx:     hex.EncodeToString(rawForeignTx),
		BlockHash: blockHash.String(),
		Height:    height,
		TxIndex:   txIndex,
		Proof:     proofStrs,
	}

	var resp submitClaimResponse
	status, err := c.do(ctx, http.MethodPost, "/v1/claims", req, &resp)
	if err != nil {
		return nil, err
	}
	if status == http.StatusConflict {
		return nil, claims.ErrDuplicateClaim
	}
	if status != http.StatusCreated {
		return nil, fmt.Errorf("submit claim: unexpected status %d", status)
	}

	localTxID, err := chainhash.NewHashFromStr(resp.LocalTxID)
	if err != nil {
		return nil, fmt.Errorf("parse local txid: %w", err)
	}
	foreignTxID, err := chainhash.NewHashFromStr(resp.ForeignTxID)
	if err != nil {
		return nil, fmt.Errorf("parse foreign txid: %w", err)
	}
	var dest model.Destination
	destBytes, err := hex.DecodeString(resp.Destination)
	if err != nil || len(destBytes) != len(dest) {
		return nil, fmt.Errorf("parse destination %q", resp.Destination)
	}
	copy(dest[:], destBytes)

	return &claims.SubmitResult{
		LocalTxID:     *localTxID,
		ForeignTxID:   *foreignTxID,
		BurnedAmount:  resp.BurnedAmount,
		Destination:   dest,
		Confirmations: resp.Confirmations,
	}, nil
}

// GetScanProgress reads the server-side scan cursor.
func (c *Client) GetScanProgress() (model.ScanProgress, bool, error) {
	var resp scanStatusResponse
	status, err := c.do(context.Background(), http.MethodGet, "/v1/scan/status", nil, &resp)
	if err != nil {
		return model.ScanProgress{}, false, err
	}
	if status != http.StatusOK {
		return model.ScanProgress{}, false, fmt.Errorf("scan status: unexpected status %d", status)
	}
	if resp.LastHash == "" {
		return model.ScanProgress{}, false, nil
	}
	hash, err := chainhash.NewHashFromStr(resp.LastHash)
	if err != nil {
		return model.ScanProgress{}, false, fmt.Errorf("parse last hash: %w", err)
	}
	return model.ScanProgress{LastHeight: resp.LastHeight, LastHash: *hash}, true, nil
}

// PutScanProgress advances the server-side scan cursor. The server
// re-verifies the block against its oracle before persisting.
func (c *Client) PutScanProgress(progress model.ScanProgress) error {
	req := advanceScanRequest{
		Height:    progress.LastHeight,
		BlockHash: progress.LastHash.String(),
	}
	status, err := c.do(context.Background(), http.MethodPost, "/v1/scan/advance", req, nil)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("advance scan cursor: unexpected status %d", status)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if out != nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
