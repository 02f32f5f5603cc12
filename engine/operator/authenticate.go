package operator

import (
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/user"
)

// AuthenticateExitCode is the outcome of AuthenticateOperator
type AuthenticateExitCode uint8

// AuthenticateOperator exit codes
const (
	AUTHENTICATE_UNEXPECTED_ERROR AuthenticateExitCode = iota
	AUTHENTICATE_OK
)

var authenticateExitCodeNames = []string{"UNEXPECTED_ERROR", "OK"}

// OK tells whether the lookup itself succeeded
func (c AuthenticateExitCode) OK() bool {
	return c == AUTHENTICATE_OK
}

func (c AuthenticateExitCode) String() string {
	return exitCodeName("AuthenticateExitCode", authenticateExitCodeNames, uint8(c))
}

// AuthenticateResult tells who the credentials belong to
type AuthenticateResult struct {
	Code          AuthenticateExitCode
	Authenticated bool
	User          user.User
}

// AuthenticateOperator checks user credentials
type AuthenticateOperator struct {
	users *user.Facade
}

// NewAuthenticateOperator creates an AuthenticateOperator
func NewAuthenticateOperator(users *user.Facade) *AuthenticateOperator {
	return &AuthenticateOperator{users: users}
}

// Authenticate looks up the user matching login and password
func (op *AuthenticateOperator) Authenticate(tx *persistence.Tx, login string, password string) AuthenticateResult {
	u, ok, err := op.users.Authenticate(tx, login, password)
	if err != nil {
		unexpected("authenticate", err)
		return AuthenticateResult{Code: AUTHENTICATE_UNEXPECTED_ERROR}
	}
	return AuthenticateResult{Code: AUTHENTICATE_OK, Authenticated: ok, User: u}
}
