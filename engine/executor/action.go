package executor

import (
	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/building"
	"github.com/tusgame/tusworld/engine/catalog"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/human"
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/proto"
	"github.com/tusgame/tusworld/engine/resource"
)

// Action describes one request type: its parameters, which checks it goes
// through, the operator it performs and the messages of the operator exit codes
type Action struct {
	ID   proto.RequestID
	Name string

	Params []param
	// Authenticate requires login and password of an existing user
	Authenticate bool
	// Authorize is nil for actions any authenticated user may perform
	Authorize authorizer
	// Epoch is nil for actions that do not need an active epoch
	Epoch epochGetter
	// VerifyWorld requires the world to run the loaded catalog
	VerifyWorld bool
	// Mutating actions commit their transaction when the operator succeeded
	Mutating bool

	Perform  func(e *execution, tx *persistence.Tx) outcome
	Messages messages
}

type outcome struct {
	code    operator.ExitCode
	objects []proto.Object
}

// authorizer returns whether the check operator succeeded and whether the user is authorized
type authorizer func(e *execution, tx *persistence.Tx) (ok bool, authorized bool)

type epochGetter func(e *execution, tx *persistence.Tx) operator.GetEpochResult

// METAMESSAGE_EVEN_MORE_UNEXPECTED_ERROR_UNKNOWN_EXIT_CODE is replied for exit codes without message
const METAMESSAGE_EVEN_MORE_UNEXPECTED_ERROR_UNKNOWN_EXIT_CODE = "An even more unexpected error occured: unknown exit code."

type messages map[operator.ExitCode]string

func (m messages) message(code operator.ExitCode) string {
	if msg, ok := m[code]; ok {
		return msg
	}
	return METAMESSAGE_EVEN_MORE_UNEXPECTED_ERROR_UNKNOWN_EXIT_CODE
}

// params are the values of one request, raw and processed
type params struct {
	login    string
	password string

	holderClass uint64
	holderID    uint64
	holder      common.HolderID

	idWorld      common.IDWorld
	idLand       common.IDLand
	idSettlement common.IDSettlement
	source       common.IDSettlement
	destination  common.IDSettlement

	name          string
	configuration string
	userLogin     string
	userPassword  string

	key         string
	buildingKey building.Key
	humanKey    human.Key
	resourceKey resource.Key
	volume      common.Volume
}

// param reads one request value, then converts and validates it against the catalog
type param struct {
	get     func(r *proto.Request, p *params) error
	process func(cat *catalog.Catalog, p *params) error
}

func uintParam(name string, set func(p *params, v uint64)) param {
	return param{get: func(r *proto.Request, p *params) error {
		v, err := r.ParamUint(name)
		if err != nil {
			return err
		}
		set(p, v)
		return nil
	}}
}

func stringParam(name string, set func(p *params, v string)) param {
	return param{get: func(r *proto.Request, p *params) error {
		v, err := r.ParamString(name)
		if err != nil {
			return err
		}
		set(p, v)
		return nil
	}}
}

// Parameter names
const (
	PARAM_ID_HOLDER_CLASS           = "id_holder_class"
	PARAM_ID_HOLDER                 = "id_holder"
	PARAM_ID_WORLD                  = "id_world"
	PARAM_ID_LAND                   = "id_land"
	PARAM_ID_SETTLEMENT             = "id_settlement"
	PARAM_ID_SETTLEMENT_SOURCE      = "id_settlement_source"
	PARAM_ID_SETTLEMENT_DESTINATION = "id_settlement_destination"
	PARAM_NAME                      = "name"
	PARAM_CONFIGURATION             = "configuration"
	PARAM_USER_LOGIN                = "user_login"
	PARAM_USER_PASSWORD             = "user_password"
	PARAM_KEY                       = "key"
	PARAM_VOLUME                    = "volume"
)

var (
	paramIDWorld       = uintParam(PARAM_ID_WORLD, func(p *params, v uint64) { p.idWorld = common.IDWorld(v) })
	paramIDLand        = uintParam(PARAM_ID_LAND, func(p *params, v uint64) { p.idLand = common.IDLand(v) })
	paramIDSettlement  = uintParam(PARAM_ID_SETTLEMENT, func(p *params, v uint64) { p.idSettlement = common.IDSettlement(v) })
	paramSource        = uintParam(PARAM_ID_SETTLEMENT_SOURCE, func(p *params, v uint64) { p.source = common.IDSettlement(v) })
	paramDestination   = uintParam(PARAM_ID_SETTLEMENT_DESTINATION, func(p *params, v uint64) { p.destination = common.IDSettlement(v) })
	paramName          = stringParam(PARAM_NAME, func(p *params, v string) { p.name = v })
	paramConfiguration = stringParam(PARAM_CONFIGURATION, func(p *params, v string) { p.configuration = v })
	paramUserLogin     = stringParam(PARAM_USER_LOGIN, func(p *params, v string) { p.userLogin = v })
	paramUserPassword  = stringParam(PARAM_USER_PASSWORD, func(p *params, v string) { p.userPassword = v })

	paramHolder = param{
		get: func(r *proto.Request, p *params) (err error) {
			if p.holderClass, err = r.ParamUint(PARAM_ID_HOLDER_CLASS); err != nil {
				return err
			}
			p.holderID, err = r.ParamUint(PARAM_ID_HOLDER)
			return err
		},
		process: func(cat *catalog.Catalog, p *params) error {
			if p.holderClass > 0xff {
				return errors.Wrapf(common.ErrInvalidHolderClass, "holder class %d", p.holderClass)
			}
			return p.holder.Assign(common.HolderClass(p.holderClass), p.holderID)
		},
	}

	paramBuildingKey = param{
		get: getKey,
		process: func(cat *catalog.Catalog, p *params) (err error) {
			if p.buildingKey, err = building.ParseKey(p.key); err != nil {
				return err
			}
			if _, ok := cat.Building(p.buildingKey); !ok {
				return errors.Errorf("unknown building %s", p.buildingKey)
			}
			return nil
		},
	}

	paramHumanKey = param{
		get: getKey,
		process: func(cat *catalog.Catalog, p *params) (err error) {
			if p.humanKey, err = human.ParseKey(p.key); err != nil {
				return err
			}
			if _, ok := cat.Human(p.humanKey); !ok {
				return errors.Errorf("unknown human %s", p.humanKey)
			}
			return nil
		},
	}

	paramResourceKey = param{
		get: getKey,
		process: func(cat *catalog.Catalog, p *params) error {
			p.resourceKey = resource.Key(p.key)
			if !cat.IsResource(p.resourceKey) {
				return errors.Errorf("unknown resource %s", p.key)
			}
			return nil
		},
	}
)

// paramVolume refuses volumes no ledger record can hold
var paramVolume = param{
	get: uintParam(PARAM_VOLUME, func(p *params, v uint64) { p.volume = common.Volume(v) }).get,
	process: func(cat *catalog.Catalog, p *params) error {
		if p.volume > common.MaxVolume {
			return errors.Errorf("volume %d is above %d", p.volume, common.MaxVolume)
		}
		return nil
	},
}

func getKey(r *proto.Request, p *params) (err error) {
	p.key, err = r.ParamString(PARAM_KEY)
	return
}

func authorizeModerator(e *execution, tx *persistence.Tx) (bool, bool) {
	return true, e.user.Moderator
}

func authorizeLand(e *execution, tx *persistence.Tx) (bool, bool) {
	res := e.Registry.Authorize.AuthorizeUserToLand(tx, e.user.ID, e.p.idLand)
	return res.Code.OK(), res.Authorized
}

func authorizeSettlement(e *execution, tx *persistence.Tx) (bool, bool) {
	res := e.Registry.Authorize.AuthorizeUserToSettlement(tx, e.user.ID, e.p.idSettlement)
	return res.Code.OK(), res.Authorized
}

func authorizeHolder(e *execution, tx *persistence.Tx) (bool, bool) {
	res := e.Registry.Authorize.AuthorizeUserToHolder(tx, e.user.ID, e.p.holder)
	return res.Code.OK(), res.Authorized
}

// authorizeSource checks the source settlement; the operator checks that the destination is on the same land
func authorizeSource(e *execution, tx *persistence.Tx) (bool, bool) {
	res := e.Registry.Authorize.AuthorizeUserToSettlement(tx, e.user.ID, e.p.source)
	return res.Code.OK(), res.Authorized
}

func epochOfLand(e *execution, tx *persistence.Tx) operator.GetEpochResult {
	return e.Registry.GetEpochOf.GetEpochByIDLand(tx, e.p.idLand)
}

func epochOfSettlement(e *execution, tx *persistence.Tx) operator.GetEpochResult {
	return e.Registry.GetEpochOf.GetEpochByIDSettlement(tx, e.p.idSettlement)
}

func epochOfHolder(e *execution, tx *persistence.Tx) operator.GetEpochResult {
	return e.Registry.GetEpochOf.GetEpochByHolder(tx, e.p.holder)
}

func epochOfSource(e *execution, tx *persistence.Tx) operator.GetEpochResult {
	return e.Registry.GetEpochOf.GetEpochByIDSettlement(tx, e.p.source)
}
