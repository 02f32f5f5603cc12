package operator

import (
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/ledger"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/resource"
)

// DismissHumanExitCode is the outcome of DismissHumanOperator
type DismissHumanExitCode uint8

// DismissHumanOperator exit codes
const (
	DISMISS_HUMAN_UNEXPECTED_ERROR DismissHumanExitCode = iota
	DISMISS_HUMAN_TRYING_TO_DISMISS_ZERO_HUMANS
	DISMISS_HUMAN_HUMAN_IS_NOT_DISMISSABLE
	DISMISS_HUMAN_NOT_ENOUGH_HUMANS
	DISMISS_HUMAN_NOT_ENOUGH_RESOURCES
	DISMISS_HUMAN_HUMAN_HAS_BEEN_DISMISSED
)

var dismissHumanExitCodeNames = []string{
	"UNEXPECTED_ERROR",
	"TRYING_TO_DISMISS_ZERO_HUMANS",
	"HUMAN_IS_NOT_DISMISSABLE",
	"NOT_ENOUGH_HUMANS",
	"NOT_ENOUGH_RESOURCES",
	"HUMAN_HAS_BEEN_DISMISSED",
}

// OK tells whether the humans have been dismissed
func (c DismissHumanExitCode) OK() bool {
	return c == DISMISS_HUMAN_HUMAN_HAS_BEEN_DISMISSED
}

func (c DismissHumanExitCode) String() string {
	return exitCodeName("DismissHumanExitCode", dismissHumanExitCodeNames, uint8(c))
}

// DismissHumanOperator returns specialists to the jobless
type DismissHumanOperator struct {
	catalog   *catalog.Catalog
	humans    *human.Facade
	resources *resource.Facade
}

// NewDismissHumanOperator creates a DismissHumanOperator
func NewDismissHumanOperator(cat *catalog.Catalog, humans *human.Facade, resources *resource.Facade) *DismissHumanOperator {
	return &DismissHumanOperator{catalog: cat, humans: humans, resources: resources}
}

// DismissHuman dismisses volume humans of key; they become jobless novices
func (op *DismissHumanOperator) DismissHuman(tx *persistence.Tx, holder common.HolderID, key human.Key, volume common.Volume) DismissHumanExitCode {
	if volume == 0 {
		return DISMISS_HUMAN_TRYING_TO_DISMISS_ZERO_HUMANS
	}
	if !op.catalog.IsDismissable(key) {
		return DISMISS_HUMAN_HUMAN_IS_NOT_DISMISSABLE
	}

	rec, err := op.humans.GetHuman(tx, holder, key)
	if err != nil {
		unexpected("dismiss human", err)
		return DISMISS_HUMAN_UNEXPECTED_ERROR
	}
	if rec.Volume < volume {
		return DISMISS_HUMAN_NOT_ENOUGH_HUMANS
	}

	cost := op.catalog.HumanDismissCost(key, volume)
	have, err := op.resources.GetResourceSet(tx, holder)
	if err != nil {
		unexpected("dismiss human", err)
		return DISMISS_HUMAN_UNEXPECTED_ERROR
	}
	if !ledger.Covers(have, cost) {
		return DISMISS_HUMAN_NOT_ENOUGH_RESOURCES
	}

	if err = op.resources.SubtractResourceSet(tx, holder, cost); err == nil {
		if err = op.humans.SubtractHuman(tx, holder, key, volume); err == nil {
			err = op.humans.AddHuman(tx, holder, human.Jobless, volume)
		}
	}
	if err != nil {
		unexpected("dismiss human", err)
		return DISMISS_HUMAN_UNEXPECTED_ERROR
	}
	return DISMISS_HUMAN_HUMAN_HAS_BEEN_DISMISSED
}
