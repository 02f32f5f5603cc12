package proto

import "fmt"

// RequestID identifies the action a request asks for
type RequestID uint16

const (
	// REQUEST_INVALID is the invalid request id
	REQUEST_INVALID RequestID = iota
	// REQUEST_ECHO replies without touching the store
	REQUEST_ECHO
	// REPLY_ERROR is the reply id of requests the server does not know
	REPLY_ERROR
	REQUEST_CREATE_LAND
	REQUEST_DELETE_LAND
	REQUEST_GET_LAND
	REQUEST_GET_LANDS
	REQUEST_CREATE_SETTLEMENT
	REQUEST_DELETE_SETTLEMENT
	REQUEST_GET_SETTLEMENT
	REQUEST_GET_SETTLEMENTS
	REQUEST_BUILD_BUILDING
	REQUEST_DESTROY_BUILDING
	REQUEST_GET_BUILDING
	REQUEST_GET_BUILDINGS
	REQUEST_DISMISS_HUMAN
	REQUEST_ENGAGE_HUMAN
	REQUEST_GET_HUMAN
	REQUEST_GET_HUMANS
	REQUEST_GET_RESOURCE
	REQUEST_GET_RESOURCES
	REQUEST_CREATE_USER
	REQUEST_CREATE_WORLD
	REQUEST_CREATE_EPOCH
	REQUEST_DELETE_EPOCH
	REQUEST_ACTIVATE_EPOCH
	REQUEST_DEACTIVATE_EPOCH
	REQUEST_FINISH_EPOCH
	REQUEST_TICK_EPOCH
	REQUEST_GET_EPOCH
	REQUEST_TRANSPORT_HUMAN
	REQUEST_TRANSPORT_RESOURCE
)

var requestIDNames = map[RequestID]string{
	REQUEST_ECHO:               "ECHO",
	REPLY_ERROR:                "ERROR",
	REQUEST_CREATE_LAND:        "CREATE_LAND",
	REQUEST_DELETE_LAND:        "DELETE_LAND",
	REQUEST_GET_LAND:           "GET_LAND",
	REQUEST_GET_LANDS:          "GET_LANDS",
	REQUEST_CREATE_SETTLEMENT:  "CREATE_SETTLEMENT",
	REQUEST_DELETE_SETTLEMENT:  "DELETE_SETTLEMENT",
	REQUEST_GET_SETTLEMENT:     "GET_SETTLEMENT",
	REQUEST_GET_SETTLEMENTS:    "GET_SETTLEMENTS",
	REQUEST_BUILD_BUILDING:     "BUILD_BUILDING",
	REQUEST_DESTROY_BUILDING:   "DESTROY_BUILDING",
	REQUEST_GET_BUILDING:       "GET_BUILDING",
	REQUEST_GET_BUILDINGS:      "GET_BUILDINGS",
	REQUEST_DISMISS_HUMAN:      "DISMISS_HUMAN",
	REQUEST_ENGAGE_HUMAN:       "ENGAGE_HUMAN",
	REQUEST_GET_HUMAN:          "GET_HUMAN",
	REQUEST_GET_HUMANS:         "GET_HUMANS",
	REQUEST_GET_RESOURCE:       "GET_RESOURCE",
	REQUEST_GET_RESOURCES:      "GET_RESOURCES",
	REQUEST_CREATE_USER:        "CREATE_USER",
	REQUEST_CREATE_WORLD:       "CREATE_WORLD",
	REQUEST_CREATE_EPOCH:       "CREATE_EPOCH",
	REQUEST_DELETE_EPOCH:       "DELETE_EPOCH",
	REQUEST_ACTIVATE_EPOCH:     "ACTIVATE_EPOCH",
	REQUEST_DEACTIVATE_EPOCH:   "DEACTIVATE_EPOCH",
	REQUEST_FINISH_EPOCH:       "FINISH_EPOCH",
	REQUEST_TICK_EPOCH:         "TICK_EPOCH",
	REQUEST_GET_EPOCH:          "GET_EPOCH",
	REQUEST_TRANSPORT_HUMAN:    "TRANSPORT_HUMAN",
	REQUEST_TRANSPORT_RESOURCE: "TRANSPORT_RESOURCE",
}

func (id RequestID) String() string {
	if name, ok := requestIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("RequestID(%d)", uint16(id))
}

// Status tells how far a request went through the pipeline
type Status uint8

const (
	// STATUS_OK means the action has been performed; the message tells its outcome
	STATUS_OK Status = iota + 1
	STATUS_INVALID_REQUEST
	STATUS_UNAUTHENTICATED
	STATUS_UNAUTHORIZED
	STATUS_EPOCH_IS_NOT_ACTIVE
	STATUS_WORLD_CONFIGURATION_MISMATCH
	STATUS_UNEXPECTED_ERROR
	STATUS_UNKNOWN_REQUEST
)

var statusNames = []string{
	STATUS_OK:                           "OK",
	STATUS_INVALID_REQUEST:              "INVALID_REQUEST",
	STATUS_UNAUTHENTICATED:              "UNAUTHENTICATED",
	STATUS_UNAUTHORIZED:                 "UNAUTHORIZED",
	STATUS_EPOCH_IS_NOT_ACTIVE:          "EPOCH_IS_NOT_ACTIVE",
	STATUS_WORLD_CONFIGURATION_MISMATCH: "WORLD_CONFIGURATION_MISMATCH",
	STATUS_UNEXPECTED_ERROR:             "UNEXPECTED_ERROR",
	STATUS_UNKNOWN_REQUEST:              "UNKNOWN_REQUEST",
}

func (s Status) String() string {
	if s > 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}
