package operator

import (
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/user"
)

// CreateUserExitCode is the outcome of CreateUserOperator
type CreateUserExitCode uint8

// CreateUserOperator exit codes
const (
	CREATE_USER_UNEXPECTED_ERROR CreateUserExitCode = iota
	CREATE_USER_USER_HAS_BEEN_CREATED
	CREATE_USER_USER_HAS_NOT_BEEN_CREATED
)

var createUserExitCodeNames = []string{"UNEXPECTED_ERROR", "USER_HAS_BEEN_CREATED", "USER_HAS_NOT_BEEN_CREATED"}

// OK tells whether the user has been created
func (c CreateUserExitCode) OK() bool {
	return c == CREATE_USER_USER_HAS_BEEN_CREATED
}

func (c CreateUserExitCode) String() string {
	return exitCodeName("CreateUserExitCode", createUserExitCodeNames, uint8(c))
}

// CreateUserOperator registers players
type CreateUserOperator struct {
	users *user.Facade
}

// NewCreateUserOperator creates a CreateUserOperator
func NewCreateUserOperator(users *user.Facade) *CreateUserOperator {
	return &CreateUserOperator{users: users}
}

// CreateUser registers a non-moderator user
func (op *CreateUserOperator) CreateUser(tx *persistence.Tx, login string, password string) CreateUserExitCode {
	_, found, err := op.users.GetUserByLogin(tx, login)
	if err != nil {
		unexpected("create user", err)
		return CREATE_USER_UNEXPECTED_ERROR
	}
	if found || !op.users.CreateUser(tx, login, password, false) {
		return CREATE_USER_USER_HAS_NOT_BEEN_CREATED
	}
	return CREATE_USER_USER_HAS_BEEN_CREATED
}
