package operator

import (
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/land"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/world"
)

// GetLandExitCode is the outcome of GetLandOperator
type GetLandExitCode uint8

// GetLandOperator exit codes
const (
	GET_LAND_UNEXPECTED_ERROR GetLandExitCode = iota
	GET_LAND_LAND_HAS_BEEN_GOT
	GET_LAND_LAND_HAS_NOT_BEEN_GOT
)

var getLandExitCodeNames = []string{"UNEXPECTED_ERROR", "LAND_HAS_BEEN_GOT", "LAND_HAS_NOT_BEEN_GOT"}

// OK tells whether the land has been got
func (c GetLandExitCode) OK() bool {
	return c == GET_LAND_LAND_HAS_BEEN_GOT
}

func (c GetLandExitCode) String() string {
	return exitCodeName("GetLandExitCode", getLandExitCodeNames, uint8(c))
}

// GetLandOperator reads one land
type GetLandOperator struct {
	lands *land.Facade
}

// NewGetLandOperator creates a GetLandOperator
func NewGetLandOperator(lands *land.Facade) *GetLandOperator {
	return &GetLandOperator{lands: lands}
}

// GetLand returns the land of id
func (op *GetLandOperator) GetLand(tx *persistence.Tx, idLand common.IDLand) (GetLandExitCode, land.Land) {
	l, found, err := op.lands.GetLand(tx, idLand)
	if err != nil {
		unexpected("get land", err)
		return GET_LAND_UNEXPECTED_ERROR, land.Land{}
	}
	if !found {
		return GET_LAND_LAND_HAS_NOT_BEEN_GOT, land.Land{}
	}
	return GET_LAND_LAND_HAS_BEEN_GOT, l
}

// GetLandsExitCode is the outcome of GetLandsOperator
type GetLandsExitCode uint8

// GetLandsOperator exit codes
const (
	GET_LANDS_UNEXPECTED_ERROR GetLandsExitCode = iota
	GET_LANDS_WORLD_DOES_NOT_EXIST
	GET_LANDS_LANDS_HAVE_BEEN_GOT
)

var getLandsExitCodeNames = []string{"UNEXPECTED_ERROR", "WORLD_DOES_NOT_EXIST", "LANDS_HAVE_BEEN_GOT"}

// OK tells whether the lands have been got
func (c GetLandsExitCode) OK() bool {
	return c == GET_LANDS_LANDS_HAVE_BEEN_GOT
}

func (c GetLandsExitCode) String() string {
	return exitCodeName("GetLandsExitCode", getLandsExitCodeNames, uint8(c))
}

// GetLandsOperator lists the lands of a user in a world
type GetLandsOperator struct {
	worlds *world.Facade
	lands  *land.Facade
}

// NewGetLandsOperator creates a GetLandsOperator
func NewGetLandsOperator(worlds *world.Facade, lands *land.Facade) *GetLandsOperator {
	return &GetLandsOperator{worlds: worlds, lands: lands}
}

// GetLands returns the lands of the user in the world
func (op *GetLandsOperator) GetLands(tx *persistence.Tx, idUser common.IDUser, idWorld common.IDWorld) (GetLandsExitCode, []land.Land) {
	_, found, err := op.worlds.GetWorld(tx, idWorld)
	if err != nil {
		unexpected("get lands", err)
		return GET_LANDS_UNEXPECTED_ERROR, nil
	}
	if !found {
		return GET_LANDS_WORLD_DOES_NOT_EXIST, nil
	}
	lands, err := op.lands.GetLands(tx, idUser, idWorld)
	if err != nil {
		unexpected("get lands", err)
		return GET_LANDS_UNEXPECTED_ERROR, nil
	}
	return GET_LANDS_LANDS_HAVE_BEEN_GOT, lands
}
