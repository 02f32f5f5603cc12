package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/epoch"
	"github.com/tusgame/tusworld/engine/persistence"
)

// GetEpochExitCode is the outcome of GetEpochOperator
type GetEpochExitCode uint8

// GetEpochOperator exit codes
const (
	GET_EPOCH_UNEXPECTED_ERROR GetEpochExitCode = iota
	GET_EPOCH_EPOCH_HAS_BEEN_GOT
	GET_EPOCH_EPOCH_HAS_NOT_BEEN_GOT
)

var getEpochExitCodeNames = []string{"UNEXPECTED_ERROR", "EPOCH_HAS_BEEN_GOT", "EPOCH_HAS_NOT_BEEN_GOT"}

// OK tells whether the lookup ran; the epoch may still be missing
func (c GetEpochExitCode) OK() bool {
	return c == GET_EPOCH_EPOCH_HAS_BEEN_GOT || c == GET_EPOCH_EPOCH_HAS_NOT_BEEN_GOT
}

func (c GetEpochExitCode) String() string {
	return exitCodeName("GetEpochExitCode", getEpochExitCodeNames, uint8(c))
}

// GetEpochResult carries the epoch when it has been got
type GetEpochResult struct {
	Code  GetEpochExitCode
	Epoch epoch.Epoch
}

// Found tells whether an epoch has been got
func (r GetEpochResult) Found() bool {
	return r.Code == GET_EPOCH_EPOCH_HAS_BEEN_GOT
}

// GetEpochOperator looks epochs up by world, land or settlement
type GetEpochOperator struct {
	epochs *epoch.Facade
}

// NewGetEpochOperator creates a GetEpochOperator
func NewGetEpochOperator(epochs *epoch.Facade) *GetEpochOperator {
	return &GetEpochOperator{epochs: epochs}
}

// GetEpoch returns the current epoch of a world
func (op *GetEpochOperator) GetEpoch(tx *persistence.Tx, idWorld common.IDWorld) GetEpochResult {
	return op.result(op.epochs.GetEpoch(tx, idWorld))
}

// GetEpochByIDLand returns the epoch of a land
func (op *GetEpochOperator) GetEpochByIDLand(tx *persistence.Tx, idLand common.IDLand) GetEpochResult {
	return op.result(op.epochs.GetEpochByIDLand(tx, idLand))
}

// GetEpochByIDSettlement returns the epoch of a settlement
func (op *GetEpochOperator) GetEpochByIDSettlement(tx *persistence.Tx, idSettlement common.IDSettlement) GetEpochResult {
	return op.result(op.epochs.GetEpochByIDSettlement(tx, idSettlement))
}

// GetEpochByHolder returns the epoch of a ledger holder
func (op *GetEpochOperator) GetEpochByHolder(tx *persistence.Tx, holder common.HolderID) GetEpochResult {
	if holder.Class() != common.HolderClassSettlement {
		return GetEpochResult{Code: GET_EPOCH_EPOCH_HAS_NOT_BEEN_GOT}
	}
	return op.GetEpochByIDSettlement(tx, common.IDSettlement(holder.ID()))
}

func (op *GetEpochOperator) result(e epoch.Epoch, found bool, err error) GetEpochResult {
	if err != nil {
		unexpected("get epoch", err)
		return GetEpochResult{Code: GET_EPOCH_UNEXPECTED_ERROR}
	}
	if !found {
		return GetEpochResult{Code: GET_EPOCH_EPOCH_HAS_NOT_BEEN_GOT}
	}
	return GetEpochResult{Code: GET_EPOCH_EPOCH_HAS_BEEN_GOT, Epoch: e}
}
