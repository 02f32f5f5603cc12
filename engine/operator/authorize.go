package operator

import (
	"github.com/tusgame/tusworld/engine/authorization"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
)

// AuthorizeExitCode is the outcome of AuthorizeOperator
type AuthorizeExitCode uint8

// AuthorizeOperator exit codes
const (
	AUTHORIZE_UNEXPECTED_ERROR AuthorizeExitCode = iota
	AUTHORIZE_OK
)

var authorizeExitCodeNames = []string{"UNEXPECTED_ERROR", "OK"}

// OK tells whether the lookup itself succeeded
func (c AuthorizeExitCode) OK() bool {
	return c == AUTHORIZE_OK
}

func (c AuthorizeExitCode) String() string {
	return exitCodeName("AuthorizeExitCode", authorizeExitCodeNames, uint8(c))
}

// AuthorizeResult tells whether the user may act
type AuthorizeResult struct {
	Code       AuthorizeExitCode
	Authorized bool
}

// AuthorizeOperator checks the ownership of lands, settlements and holders
type AuthorizeOperator struct {
	authorization *authorization.Facade
}

// NewAuthorizeOperator creates an AuthorizeOperator
func NewAuthorizeOperator(authorization *authorization.Facade) *AuthorizeOperator {
	return &AuthorizeOperator{authorization: authorization}
}

// AuthorizeUserToLand checks that the user owns the land
func (op *AuthorizeOperator) AuthorizeUserToLand(tx *persistence.Tx, idUser common.IDUser, idLand common.IDLand) AuthorizeResult {
	return op.result(op.authorization.AuthorizeUserToLand(tx, idUser, idLand))
}

// AuthorizeUserToSettlement checks that the user owns the land of the settlement
func (op *AuthorizeOperator) AuthorizeUserToSettlement(tx *persistence.Tx, idUser common.IDUser, idSettlement common.IDSettlement) AuthorizeResult {
	return op.result(op.authorization.AuthorizeUserToSettlement(tx, idUser, idSettlement))
}

// AuthorizeUserToHolder checks that the user may act upon the ledgers of holder
func (op *AuthorizeOperator) AuthorizeUserToHolder(tx *persistence.Tx, idUser common.IDUser, holder common.HolderID) AuthorizeResult {
	return op.result(op.authorization.AuthorizeUserToHolder(tx, idUser, holder))
}

func (op *AuthorizeOperator) result(authorized bool, err error) AuthorizeResult {
	if err != nil {
		unexpected("authorize", err)
		return AuthorizeResult{Code: AUTHORIZE_UNEXPECTED_ERROR}
	}
	return AuthorizeResult{Code: AUTHORIZE_OK, Authorized: authorized}
}
