package foreign

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

// ErrNotABurn marks a well-formed transaction that lacks the required
// metadata output or value-burning output. Terminal.
var ErrNotABurn = errors.New("transaction is not a burn")

// NetworkMismatchError reports a burn targeting a different network than
// the one this instance serves.
type NetworkMismatchError struct {
	Got  byte
	Want model.Network
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("burn network tag 0x%02x does not match network %q", e.Got, e.Want)
}

// metadataPayloadSize is version(1) + network tag(1) + destination hash(20).
const metadataPayloadSize = 2 + model.DestinationSize

// ExtractBurnInfo scans decoded outputs for exactly one metadata-carrying
// output and at least one value-burning output, and returns the typed burn
// metadata. The burned amount is the total value on provably unspendable
// outputs, including any value on the metadata output itself.
func ExtractBurnInfo(tx *model.ForeignTx, network model.Network) (*model.BurnInfo, error) {
	var (
		payload      []byte
		burnedAmount uint64
	)

	for _, out := range tx.Outputs {
		if !txscript.IsUnspendable(out.PkScript) {
			continue
		}
		burnedAmount += out.Value

		p, ok := metadataPayload(out.PkScript)
		if !ok {
			continue
		}
		if payload != nil {
			return nil, fmt.Errorf("%w: multiple metadata outputs", ErrNotABurn)
		}
		payload = p
	}

	if payload == nil {
		return nil, fmt.Errorf("%w: no metadata output", ErrNotABurn)
	}
	if burnedAmount == 0 {
		return nil, fmt.Errorf("%w: no burned value", ErrNotABurn)
	}

	info := &model.BurnInfo{
		Version:      payload[0],
		NetworkTag:   payload[1],
		BurnedAmount: burnedAmount,
	}
	copy(info.Destination[:], payload[2:])

	if !network.MatchesTag(info.NetworkTag) {
		return nil, &NetworkMismatchError{Got: info.NetworkTag, Want: network}
	}

	return info, nil
}

// metadataPayload returns the burn metadata carried by an OP_RETURN script,
// requiring a single canonical push of exactly the expected size.
func metadataPayload(pkScript []byte) ([]byte, bool) {
	if len(pkScript) == 0 || pkScript[0] != txscript.OP_RETURN {
		return nil, false
	}
	pushes, err := txscript.PushedData(pkScript)
	if err != nil || len(pushes) != 1 {
		return nil, false
	}
	if len(pushes[0]) != metadataPayloadSize {
		return nil, false
	}
	return pushes[0], true
}
