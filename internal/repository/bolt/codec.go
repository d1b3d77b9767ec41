package bolt

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/burnbridge7000-backend/internal/model"
)

const (
	claimRecordVersion      = 1
	settlementRecordVersion = 1

	claimRecordSize = 1 + chainhash.HashSize + 4 + 8 + model.DestinationSize + chainhash.HashSize + 4 + 1 + 4
)

// encodeClaim serializes a claim record; the foreign txid is the bucket key
// and is not repeated in the value.
func encodeClaim(rec *model.BurnClaimRecord) []byte {
	buf := make([]byte, 0, claimRecordSize)
	buf = append(buf, claimRecordVersion)
	buf = append(buf, rec.ForeignBlockHash[:]...)
	buf = binary.BigEndian.AppendUint32(buf, rec.ForeignHeight)
	buf = binary.BigEndian.AppendUint64(buf, rec.BurnedAmount)
	buf = append(buf, rec.Destination[:]...)
	buf = append(buf, rec.LocalTxID[:]...)
	buf = binary.BigEndian.AppendUint32(buf, rec.ClaimHeight)
	buf = append(buf, byte(rec.Status))
	buf = binary.BigEndian.AppendUint32(buf, rec.FinalHeight)
	return buf
}

func decodeClaim(key, value []byte) (*model.BurnClaimRecord, error) {
	if len(key) != chainhash.HashSize {
		return nil, fmt.Errorf("claim key length %d", len(key))
	}
	if len(value) != claimRecordSize {
		return nil, fmt.Errorf("claim record length %d", len(value))
	}
	if value[0] != claimRecordVersion {
		return nil, fmt.Errorf("claim record version %d", value[0])
	}

	rec := &model.BurnClaimRecord{}
	copy(rec.ForeignTxID[:], key)
	off := 1
	copy(rec.ForeignBlockHash[:], value[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	rec.ForeignHeight = binary.BigEndian.Uint32(value[off:])
	off += 4
	rec.BurnedAmount = binary.BigEndian.Uint64(value[off:])
	off += 8
	copy(rec.Destination[:], value[off:off+model.DestinationSize])
	off += model.DestinationSize
	copy(rec.LocalTxID[:], value[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	rec.ClaimHeight = binary.BigEndian.Uint32(value[off:])
	off += 4
	rec.Status = model.ClaimStatus(value[off])
	off++
	rec.FinalHeight = binary.BigEndian.Uint32(value[off:])

	if !rec.Status.Valid() {
		return nil, fmt.Errorf("claim record status %d", byte(rec.Status))
	}
	return rec, nil
}

func encodeSettlement(state *model.SettlementState) []byte {
	hash := []byte(state.BlockHash)
	buf := make([]byte, 0, 1+5*8+1+len(hash))
	buf = append(buf, settlementRecordVersion)
	buf = binary.BigEndian.AppendUint64(buf, state.M0Total)
	buf = binary.BigEndian.AppendUint64(buf, state.M0Vaulted)
	buf = binary.BigEndian.AppendUint64(buf, state.M0Shielded)
	buf = binary.BigEndian.AppendUint64(buf, state.M1Supply)
	buf = binary.BigEndian.AppendUint64(buf, state.BurnClaimsThisBlock)
	buf = append(buf, byte(len(hash)))
	buf = append(buf, hash...)
	return buf
}

func decodeSettlement(key, value []byte) (*model.SettlementState, error) {
	if len(key) != 4 {
		return nil, fmt.Errorf("settlement key length %d", len(key))
	}
	if len(value) < 1+5*8+1 {
		return nil, fmt.Errorf("settlement record length %d", len(value))
	}
	if value[0] != settlementRecordVersion {
		return nil, fmt.Errorf("settlement record version %d", value[0])
	}

	state := &model.SettlementState{Height: binary.BigEndian.Uint32(key)}
	off := 1
	state.M0Total = binary.BigEndian.Uint64(value[off:])
	off += 8
	state.M0Vaulted = binary.BigEndian.Uint64(value[off:])
	off += 8
	state.M0Shielded = binary.BigEndian.Uint64(value[off:])
	off += 8
	state.M1Supply = binary.BigEndian.Uint64(value[off:])
	off += 8
	state.BurnClaimsThisBlock = binary.BigEndian.Uint64(value[off:])
	off += 8
	hashLen := int(value[off])
	off++
	if len(value) != off+hashLen {
		return nil, fmt.Errorf("settlement record hash length %d", hashLen)
	}
	state.BlockHash = string(value[off:])
	return state, nil
}

func encodeKillSwitch(status model.KillSwitchStatus) []byte {
	buf := make([]byte, 0, 2+8)
	buf = append(buf, boolByte(status.Enabled), boolByte(status.ConfigDefault))
	buf = binary.BigEndian.AppendUint64(buf, uint64(status.LastChanged.Unix()))
	return buf
}

func decodeKillSwitch(value []byte) (model.KillSwitchStatus, error) {
	if len(value) != 2+8 {
		return model.KillSwitchStatus{}, fmt.Errorf("kill switch record length %d", len(value))
	}
	return model.KillSwitchStatus{
		Enabled:       value[0] == 1,
		ConfigDefault: value[1] == 1,
		LastChanged:   time.Unix(int64(binary.BigEndian.Uint64(value[2:])), 0).UTC(),
	}, nil
}

func encodeScanProgress(progress model.ScanProgress) []byte {
	buf := make([]byte, 0, 4+chainhash.HashSize)
	buf = binary.BigEndian.AppendUint32(buf, progress.LastHeight)
	buf = append(buf, progress.LastHash[:]...)
	return buf
}

func decodeScanProgress(value []byte) (model.ScanProgress, error) {
	if len(value) != 4+chainhash.HashSize {
		return model.ScanProgress{}, fmt.Errorf("scan progress record length %d", len(value))
	}
	progress := model.ScanProgress{LastHeight: binary.BigEndian.Uint32(value)}
	copy(progress.LastHash[:], value[4:])
	return progress, nil
}

func heightKey(height uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, height)
	return key
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
