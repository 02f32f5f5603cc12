package executor

import (
	"github.com/tusgame/tusworld/engine/operator"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/proto"
)

// EchoExitCode is the outcome of an echo
type EchoExitCode uint8

// ECHO_ECHOED is the only outcome of an echo
const ECHO_ECHOED EchoExitCode = 1

// OK is always true for an echo
func (c EchoExitCode) OK() bool {
	return c == ECHO_ECHOED
}

func (c EchoExitCode) String() string {
	return "ECHOED"
}

// Actions returns the descriptors of every request the server serves
func Actions() []*Action {
	return []*Action{
		{
			ID: proto.REQUEST_ECHO, Name: "echo",
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: ECHO_ECHOED}
			},
			Messages: messages{ECHO_ECHOED: "Echo."},
		},

		// users and worlds
		{
			ID: proto.REQUEST_CREATE_USER, Name: "create_user",
			Params: []param{paramUserLogin, paramUserPassword},
			Authenticate: true, Authorize: authorizeModerator, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.CreateUser.CreateUser(tx, e.p.userLogin, e.p.userPassword)}
			},
			Messages: messages{
				operator.CREATE_USER_UNEXPECTED_ERROR:          "Unexpected error.",
				operator.CREATE_USER_USER_HAS_BEEN_CREATED:     "User has been created.",
				operator.CREATE_USER_USER_HAS_NOT_BEEN_CREATED: "User has not been created.",
			},
		},
		{
			ID: proto.REQUEST_CREATE_WORLD, Name: "create_world",
			Params: []param{paramName, paramConfiguration},
			Authenticate: true, Authorize: authorizeModerator, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.CreateWorld.CreateWorld(tx, e.p.name, e.p.configuration)}
			},
			Messages: messages{
				operator.CREATE_WORLD_UNEXPECTED_ERROR:           "Unexpected error.",
				operator.CREATE_WORLD_WORLD_HAS_BEEN_CREATED:     "World has been created.",
				operator.CREATE_WORLD_WORLD_HAS_NOT_BEEN_CREATED: "World has not been created.",
			},
		},

		// epochs
		{
			ID: proto.REQUEST_CREATE_EPOCH, Name: "create_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.CreateEpoch.CreateEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.CREATE_EPOCH_UNEXPECTED_ERROR:           "Unexpected error.",
				operator.CREATE_EPOCH_WORLD_DOES_NOT_EXIST:       "World does not exist.",
				operator.CREATE_EPOCH_EPOCH_DOES_EXIST:           "Epoch does exist.",
				operator.CREATE_EPOCH_EPOCH_HAS_BEEN_CREATED:     "Epoch has been created.",
				operator.CREATE_EPOCH_EPOCH_HAS_NOT_BEEN_CREATED: "Epoch has not been created.",
			},
		},
		{
			ID: proto.REQUEST_DELETE_EPOCH, Name: "delete_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DeleteEpoch.DeleteEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.DELETE_EPOCH_UNEXPECTED_ERROR:       "Unexpected error.",
				operator.DELETE_EPOCH_WORLD_DOES_NOT_EXIST:   "World does not exist.",
				operator.DELETE_EPOCH_EPOCH_DOES_NOT_EXIST:   "Epoch does not exist.",
				operator.DELETE_EPOCH_EPOCH_IS_ACTIVE:        "Epoch is active.",
				operator.DELETE_EPOCH_EPOCH_HAS_BEEN_DELETED: "Epoch has been deleted.",
			},
		},
		{
			ID: proto.REQUEST_ACTIVATE_EPOCH, Name: "activate_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.ActivateEpoch.ActivateEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.ACTIVATE_EPOCH_UNEXPECTED_ERROR:         "Unexpected error.",
				operator.ACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST:     "World does not exist.",
				operator.ACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST:     "Epoch does not exist.",
				operator.ACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED:  "Epoch has been finished.",
				operator.ACTIVATE_EPOCH_EPOCH_IS_ACTIVE:          "Epoch is active.",
				operator.ACTIVATE_EPOCH_EPOCH_HAS_BEEN_ACTIVATED: "Epoch has been activated.",
			},
		},
		{
			ID: proto.REQUEST_DEACTIVATE_EPOCH, Name: "deactivate_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DeactivateEpoch.DeactivateEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.DEACTIVATE_EPOCH_UNEXPECTED_ERROR:           "Unexpected error.",
				operator.DEACTIVATE_EPOCH_WORLD_DOES_NOT_EXIST:       "World does not exist.",
				operator.DEACTIVATE_EPOCH_EPOCH_DOES_NOT_EXIST:       "Epoch does not exist.",
				operator.DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_FINISHED:    "Epoch has been finished.",
				operator.DEACTIVATE_EPOCH_EPOCH_IS_NOT_ACTIVE:        "Epoch is not active.",
				operator.DEACTIVATE_EPOCH_EPOCH_HAS_BEEN_DEACTIVATED: "Epoch has been deactivated.",
			},
		},
		{
			ID: proto.REQUEST_FINISH_EPOCH, Name: "finish_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.FinishEpoch.FinishEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.FINISH_EPOCH_UNEXPECTED_ERROR:        "Unexpected error.",
				operator.FINISH_EPOCH_WORLD_DOES_NOT_EXIST:    "World does not exist.",
				operator.FINISH_EPOCH_EPOCH_DOES_NOT_EXIST:    "Epoch does not exist.",
				operator.FINISH_EPOCH_EPOCH_HAS_BEEN_FINISHED: "Epoch has been finished.",
				operator.FINISH_EPOCH_EPOCH_IS_ACTIVE:         "Epoch is active.",
				operator.FINISH_EPOCH_EPOCH_IS_FINISHED:       "Epoch is finished.",
			},
		},
		{
			ID: proto.REQUEST_TICK_EPOCH, Name: "tick_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, Authorize: authorizeModerator, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.TickEpoch.TickEpoch(tx, e.p.idWorld)}
			},
			Messages: messages{
				operator.TICK_EPOCH_UNEXPECTED_ERROR:        "Unexpected error.",
				operator.TICK_EPOCH_WORLD_DOES_NOT_EXIST:    "World does not exist.",
				operator.TICK_EPOCH_EPOCH_DOES_NOT_EXIST:    "Epoch does not exist.",
				operator.TICK_EPOCH_EPOCH_HAS_BEEN_FINISHED: "Epoch has been finished.",
				operator.TICK_EPOCH_EPOCH_IS_ACTIVE:         "Epoch is active.",
				operator.TICK_EPOCH_EPOCH_HAS_BEEN_TACK:     "Epoch has been tack.",
			},
		},
		{
			ID: proto.REQUEST_GET_EPOCH, Name: "get_epoch",
			Params: []param{paramIDWorld},
			Authenticate: true, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				res := e.Registry.GetEpochOf.GetEpoch(tx, e.p.idWorld)
				out := outcome{code: res.Code}
				if res.Found() {
					out.objects = []proto.Object{epochObject(res.Epoch)}
				}
				return out
			},
			Messages: messages{
				operator.GET_EPOCH_UNEXPECTED_ERROR:       "Unexpected error.",
				operator.GET_EPOCH_EPOCH_HAS_BEEN_GOT:     "Epoch has been got.",
				operator.GET_EPOCH_EPOCH_HAS_NOT_BEEN_GOT: "Epoch has not been got.",
			},
		},

		// lands
		{
			ID: proto.REQUEST_CREATE_LAND, Name: "create_land",
			Params: []param{paramIDWorld, paramName},
			Authenticate: true, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.CreateLand.CreateLand(tx, e.user.ID, e.p.idWorld, e.p.name)}
			},
			Messages: messages{
				operator.CREATE_LAND_UNEXPECTED_ERROR:          "Unexpected error.",
				operator.CREATE_LAND_WORLD_DOES_NOT_EXIST:      "World does not exist.",
				operator.CREATE_LAND_EPOCH_DOES_NOT_EXIST:      "Epoch does not exist.",
				operator.CREATE_LAND_LAND_HAS_BEEN_CREATED:     "Land has been created.",
				operator.CREATE_LAND_LAND_HAS_NOT_BEEN_CREATED: "Land has not been created.",
			},
		},
		{
			ID: proto.REQUEST_DELETE_LAND, Name: "delete_land",
			Params: []param{paramIDLand},
			Authenticate: true, Authorize: authorizeLand, Epoch: epochOfLand, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DeleteLand.DeleteLand(tx, e.p.idLand)}
			},
			Messages: messages{
				operator.DELETE_LAND_UNEXPECTED_ERROR:      "Unexpected error.",
				operator.DELETE_LAND_LAND_DOES_NOT_EXIST:   "Land does not exist.",
				operator.DELETE_LAND_LAND_HAS_BEEN_DELETED: "Land has been deleted.",
			},
		},
		{
			ID: proto.REQUEST_GET_LAND, Name: "get_land",
			Params: []param{paramIDLand},
			Authenticate: true, Authorize: authorizeLand, Epoch: epochOfLand, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, l := e.Registry.GetLand.GetLand(tx, e.p.idLand)
				out := outcome{code: code}
				if code == operator.GET_LAND_LAND_HAS_BEEN_GOT {
					out.objects = []proto.Object{landObject(l)}
				}
				return out
			},
			Messages: messages{
				operator.GET_LAND_UNEXPECTED_ERROR:      "Unexpected error.",
				operator.GET_LAND_LAND_HAS_BEEN_GOT:     "Land has been got.",
				operator.GET_LAND_LAND_HAS_NOT_BEEN_GOT: "Land has not been got.",
			},
		},
		{
			ID: proto.REQUEST_GET_LANDS, Name: "get_lands",
			Params: []param{paramIDWorld},
			Authenticate: true, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, lands := e.Registry.GetLands.GetLands(tx, e.user.ID, e.p.idWorld)
				out := outcome{code: code}
				for _, l := range lands {
					out.objects = append(out.objects, landObject(l))
				}
				return out
			},
			Messages: messages{
				operator.GET_LANDS_UNEXPECTED_ERROR:     "Unexpected error.",
				operator.GET_LANDS_WORLD_DOES_NOT_EXIST: "World does not exist.",
				operator.GET_LANDS_LANDS_HAVE_BEEN_GOT:  "Lands have been got.",
			},
		},

		// settlements
		{
			ID: proto.REQUEST_CREATE_SETTLEMENT, Name: "create_settlement",
			Params: []param{paramIDLand, paramName},
			Authenticate: true, Authorize: authorizeLand, Epoch: epochOfLand, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.CreateSettlement.CreateSettlement(tx, e.p.idLand, e.p.name)}
			},
			Messages: messages{
				operator.CREATE_SETTLEMENT_UNEXPECTED_ERROR:                "Unexpected error.",
				operator.CREATE_SETTLEMENT_LAND_DOES_NOT_EXIST:             "Land does not exist.",
				operator.CREATE_SETTLEMENT_SETTLEMENT_DOES_EXIST:           "Settlement does exist.",
				operator.CREATE_SETTLEMENT_SETTLEMENT_HAS_BEEN_CREATED:     "Settlement has been created.",
				operator.CREATE_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_CREATED: "Settlement has not been created.",
			},
		},
		{
			ID: proto.REQUEST_DELETE_SETTLEMENT, Name: "delete_settlement",
			Params: []param{paramIDSettlement},
			Authenticate: true, Authorize: authorizeSettlement, Epoch: epochOfSettlement, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DeleteSettlement.DeleteSettlement(tx, e.p.idSettlement)}
			},
			Messages: messages{
				operator.DELETE_SETTLEMENT_UNEXPECTED_ERROR:            "Unexpected error.",
				operator.DELETE_SETTLEMENT_SETTLEMENT_DOES_NOT_EXIST:   "Settlement does not exist.",
				operator.DELETE_SETTLEMENT_SETTLEMENT_HAS_BEEN_DELETED: "Settlement has been deleted.",
			},
		},
		{
			ID: proto.REQUEST_GET_SETTLEMENT, Name: "get_settlement",
			Params: []param{paramIDSettlement},
			Authenticate: true, Authorize: authorizeSettlement, Epoch: epochOfSettlement, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, s := e.Registry.GetSettlement.GetSettlement(tx, e.p.idSettlement)
				out := outcome{code: code}
				if code == operator.GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT {
					out.objects = []proto.Object{settlementObject(s)}
				}
				return out
			},
			Messages: messages{
				operator.GET_SETTLEMENT_UNEXPECTED_ERROR:            "Unexpected error.",
				operator.GET_SETTLEMENT_SETTLEMENT_HAS_BEEN_GOT:     "Settlement has been got.",
				operator.GET_SETTLEMENT_SETTLEMENT_HAS_NOT_BEEN_GOT: "Settlement has not been got.",
			},
		},
		{
			ID: proto.REQUEST_GET_SETTLEMENTS, Name: "get_settlements",
			Params: []param{paramIDLand},
			Authenticate: true, Authorize: authorizeLand, Epoch: epochOfLand, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, settlements := e.Registry.GetSettlements.GetSettlements(tx, e.p.idLand)
				out := outcome{code: code}
				for _, s := range settlements {
					out.objects = append(out.objects, settlementObject(s))
				}
				return out
			},
			Messages: messages{
				operator.GET_SETTLEMENTS_UNEXPECTED_ERROR:          "Unexpected error.",
				operator.GET_SETTLEMENTS_LAND_DOES_NOT_EXIST:       "Land does not exist.",
				operator.GET_SETTLEMENTS_SETTLEMENTS_HAVE_BEEN_GOT: "Settlements have been got.",
			},
		},

		// buildings
		{
			ID: proto.REQUEST_BUILD_BUILDING, Name: "build_building",
			Params: []param{paramHolder, paramBuildingKey, paramVolume},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.BuildBuilding.BuildBuilding(tx, e.p.holder, e.p.buildingKey, e.p.volume)}
			},
			Messages: messages{
				operator.BUILD_BUILDING_UNEXPECTED_ERROR:               "Unexpected error.",
				operator.BUILD_BUILDING_TRYING_TO_BUILD_ZERO_BUILDINGS: "Trying to build zero buildings.",
				operator.BUILD_BUILDING_NOT_ENOUGH_RESOURCES:           "Not enough resources.",
				operator.BUILD_BUILDING_BUILDING_HAS_BEEN_BUILT:        "Building has been built.",
			},
		},
		{
			ID: proto.REQUEST_DESTROY_BUILDING, Name: "destroy_building",
			Params: []param{paramHolder, paramBuildingKey, paramVolume},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DestroyBuilding.DestroyBuilding(tx, e.p.holder, e.p.buildingKey, e.p.volume)}
			},
			Messages: messages{
				operator.DESTROY_BUILDING_UNEXPECTED_ERROR:                  "Unexpected error.",
				operator.DESTROY_BUILDING_TRYING_TO_DESTROY_ZERO_BUILDINGS:  "Trying to destroy zero buildings.",
				operator.DESTROY_BUILDING_THERE_ARE_NO_BUILDINGS:            "There are no buildings.",
				operator.DESTROY_BUILDING_NOT_ENOUGH_BUILDINGS:              "Not enough buildings.",
				operator.DESTROY_BUILDING_NOT_ENOUGH_RESOURCES:              "Not enough resources.",
				operator.DESTROY_BUILDING_BUILDINGS_MISSING_IN_THE_MEANTIME: "Buildings missing in the meantime.",
				operator.DESTROY_BUILDING_RESOURCES_MISSING_IN_THE_MEANTIME: "Resources missing in the meantime.",
				operator.DESTROY_BUILDING_BUILDING_HAS_BEEN_DESTROYED:       "Building has been destroyed.",
			},
		},
		{
			ID: proto.REQUEST_GET_BUILDING, Name: "get_building",
			Params: []param{paramHolder, paramBuildingKey},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, rec := e.Registry.GetBuilding.GetBuilding(tx, e.p.holder, e.p.buildingKey)
				out := outcome{code: code}
				if code.OK() {
					out.objects = []proto.Object{buildingObject(e.p.buildingKey, rec)}
				}
				return out
			},
			Messages: ledgerMessages("Building has been got."),
		},
		{
			ID: proto.REQUEST_GET_BUILDINGS, Name: "get_buildings",
			Params: []param{paramHolder},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, set := e.Registry.GetBuilding.GetBuildings(tx, e.p.holder)
				out := outcome{code: code}
				if code.OK() {
					out.objects = buildingObjects(set)
				}
				return out
			},
			Messages: ledgerMessages("Buildings have been got."),
		},

		// humans
		{
			ID: proto.REQUEST_DISMISS_HUMAN, Name: "dismiss_human",
			Params: []param{paramHolder, paramHumanKey, paramVolume},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.DismissHuman.DismissHuman(tx, e.p.holder, e.p.humanKey, e.p.volume)}
			},
			Messages: messages{
				operator.DISMISS_HUMAN_UNEXPECTED_ERROR:              "Unexpected error.",
				operator.DISMISS_HUMAN_TRYING_TO_DISMISS_ZERO_HUMANS: "Trying to dismiss zero humans.",
				operator.DISMISS_HUMAN_HUMAN_IS_NOT_DISMISSABLE:      "Human is not dismissable.",
				operator.DISMISS_HUMAN_NOT_ENOUGH_HUMANS:             "Not enough humans.",
				operator.DISMISS_HUMAN_NOT_ENOUGH_RESOURCES:          "Not enough resources.",
				operator.DISMISS_HUMAN_HUMAN_HAS_BEEN_DISMISSED:      "Human has been dismissed.",
			},
		},
		{
			ID: proto.REQUEST_ENGAGE_HUMAN, Name: "engage_human",
			Params: []param{paramHolder, paramHumanKey, paramVolume},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.EngageHuman.EngageHuman(tx, e.p.holder, e.p.humanKey, e.p.volume)}
			},
			Messages: messages{
				operator.ENGAGE_HUMAN_UNEXPECTED_ERROR:             "Unexpected error.",
				operator.ENGAGE_HUMAN_TRYING_TO_ENGAGE_ZERO_HUMANS: "Trying to engage zero humans.",
				operator.ENGAGE_HUMAN_HUMAN_IS_NOT_ENGAGEABLE:      "Human is not engageable.",
				operator.ENGAGE_HUMAN_NOT_ENOUGH_JOBLESS:           "Not enough jobless.",
				operator.ENGAGE_HUMAN_NOT_ENOUGH_RESOURCES:         "Not enough resources.",
				operator.ENGAGE_HUMAN_NOT_ENOUGH_BUILDINGS:         "Not enough buildings.",
				operator.ENGAGE_HUMAN_HUMAN_HAS_BEEN_ENGAGED:       "Human has been engaged.",
			},
		},
		{
			ID: proto.REQUEST_GET_HUMAN, Name: "get_human",
			Params: []param{paramHolder, paramHumanKey},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, rec := e.Registry.GetHuman.GetHuman(tx, e.p.holder, e.p.humanKey)
				out := outcome{code: code}
				if code.OK() {
					out.objects = []proto.Object{humanObject(e.p.humanKey, rec)}
				}
				return out
			},
			Messages: ledgerMessages("Human has been got."),
		},
		{
			ID: proto.REQUEST_GET_HUMANS, Name: "get_humans",
			Params: []param{paramHolder},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, set := e.Registry.GetHuman.GetHumans(tx, e.p.holder)
				out := outcome{code: code}
				if code.OK() {
					out.objects = humanObjects(set)
				}
				return out
			},
			Messages: ledgerMessages("Humans have been got."),
		},

		// resources
		{
			ID: proto.REQUEST_GET_RESOURCE, Name: "get_resource",
			Params: []param{paramHolder, paramResourceKey},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, rec := e.Registry.GetResource.GetResource(tx, e.p.holder, e.p.resourceKey)
				out := outcome{code: code}
				if code.OK() {
					out.objects = []proto.Object{resourceObject(e.p.resourceKey, rec)}
				}
				return out
			},
			Messages: ledgerMessages("Resource has been got."),
		},
		{
			ID: proto.REQUEST_GET_RESOURCES, Name: "get_resources",
			Params: []param{paramHolder},
			Authenticate: true, Authorize: authorizeHolder, Epoch: epochOfHolder, VerifyWorld: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				code, set := e.Registry.GetResource.GetResources(tx, e.p.holder)
				out := outcome{code: code}
				if code.OK() {
					out.objects = resourceObjects(set)
				}
				return out
			},
			Messages: ledgerMessages("Resources have been got."),
		},

		// transport
		{
			ID: proto.REQUEST_TRANSPORT_HUMAN, Name: "transport_human",
			Params: []param{paramSource, paramDestination, paramHumanKey, paramVolume},
			Authenticate: true, Authorize: authorizeSource, Epoch: epochOfSource, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.TransportHuman.TransportHuman(tx, e.p.source, e.p.destination, e.p.humanKey, e.p.volume)}
			},
			Messages: messages{
				operator.TRANSPORT_HUMAN_UNEXPECTED_ERROR:                           "Unexpected error.",
				operator.TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_ZERO_HUMANS:            "Trying to transport zero humans.",
				operator.TRANSPORT_HUMAN_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT: "Trying to transport to the same settlement.",
				operator.TRANSPORT_HUMAN_SOURCE_SETTLEMENT_DOES_NOT_EXIST:           "Source settlement does not exist.",
				operator.TRANSPORT_HUMAN_DESTINATION_SETTLEMENT_DOES_NOT_EXIST:      "Destination settlement does not exist.",
				operator.TRANSPORT_HUMAN_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND:     "Settlements are not from the same land.",
				operator.TRANSPORT_HUMAN_NOT_ENOUGH_HUMANS:                          "Not enough humans.",
				operator.TRANSPORT_HUMAN_HUMAN_HAS_BEEN_TRANSPORTED:                 "Human has been transported.",
			},
		},
		{
			ID: proto.REQUEST_TRANSPORT_RESOURCE, Name: "transport_resource",
			Params: []param{paramSource, paramDestination, paramResourceKey, paramVolume},
			Authenticate: true, Authorize: authorizeSource, Epoch: epochOfSource, VerifyWorld: true, Mutating: true,
			Perform: func(e *execution, tx *persistence.Tx) outcome {
				return outcome{code: e.Registry.TransportResource.TransportResource(tx, e.p.source, e.p.destination, e.p.resourceKey, e.p.volume)}
			},
			Messages: messages{
				operator.TRANSPORT_RESOURCE_UNEXPECTED_ERROR:                           "Unexpected error.",
				operator.TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_ZERO_RESOURCES:         "Trying to transport zero resources.",
				operator.TRANSPORT_RESOURCE_TRYING_TO_TRANSPORT_TO_THE_SAME_SETTLEMENT: "Trying to transport to the same settlement.",
				operator.TRANSPORT_RESOURCE_SOURCE_SETTLEMENT_DOES_NOT_EXIST:           "Source settlement does not exist.",
				operator.TRANSPORT_RESOURCE_DESTINATION_SETTLEMENT_DOES_NOT_EXIST:      "Destination settlement does not exist.",
				operator.TRANSPORT_RESOURCE_SETTLEMENTS_ARE_NOT_FROM_THE_SAME_LAND:     "Settlements are not from the same land.",
				operator.TRANSPORT_RESOURCE_NOT_ENOUGH_RESOURCES:                       "Not enough resources.",
				operator.TRANSPORT_RESOURCE_RESOURCE_HAS_BEEN_TRANSPORTED:              "Resource has been transported.",
			},
		},
	}
}

func ledgerMessages(got string) messages {
	return messages{
		operator.GET_LEDGER_UNEXPECTED_ERROR: "Unexpected error.",
		operator.GET_LEDGER_HAS_BEEN_GOT:     got,
	}
}
