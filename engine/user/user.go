package user

import (
	"crypto/subtle"
	"database/sql"
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/tusgame/tusworld/engine/common"
	"github.com/tusgame/tusworld/engine/persistence"
	"github.com/tusgame/tusworld/engine/twlog"
	"lukechampine.com/blake3"
)

// User is an authentication principal
type User struct {
	ID        common.IDUser `db:"id_user"`
	Login     string        `db:"login"`
	Password  string        `db:"password"`
	Moderator bool          `db:"moderator"`
}

const _SELECT_USER = "SELECT id_user, login, password, moderator FROM users"

// Digest returns the stored form of a password
func Digest(login string, password string) string {
	sum := blake3.Sum256([]byte(login + ":" + password))
	return hex.EncodeToString(sum[:])
}

// Facade persists users
type Facade struct{}

// NewFacade creates a Facade
func NewFacade() *Facade {
	return &Facade{}
}

// CreateUser inserts a user, returning false when the login is taken
func (f *Facade) CreateUser(tx *persistence.Tx, login string, password string, moderator bool) bool {
	_, err := tx.Exec("INSERT INTO users(login, password, moderator) VALUES(?, ?, ?)", login, Digest(login, password), moderator)
	if err != nil {
		twlog.Warnf("user: create %s failed: %v", login, err)
		return false
	}
	return true
}

// GetUser returns the user of id
func (f *Facade) GetUser(tx *persistence.Tx, id common.IDUser) (User, bool, error) {
	return f.getOne(tx, _SELECT_USER+" WHERE id_user = ?", id)
}

// GetUserByLogin returns the user of login
func (f *Facade) GetUserByLogin(tx *persistence.Tx, login string) (User, bool, error) {
	return f.getOne(tx, _SELECT_USER+" WHERE login = ?", login)
}

// Authenticate returns the user whose credentials match
func (f *Facade) Authenticate(tx *persistence.Tx, login string, password string) (User, bool, error) {
	u, found, err := f.GetUserByLogin(tx, login)
	if err != nil || !found {
		return User{}, false, err
	}
	if subtle.ConstantTimeCompare([]byte(u.Password), []byte(Digest(login, password))) != 1 {
		return User{}, false, nil
	}
	return u, true, nil
}

func (f *Facade) getOne(tx *persistence.Tx, query string, args ...interface{}) (User, bool, error) {
	var u User
	err := tx.Get(&u, query, args...)
	if err == sql.ErrNoRows {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, errors.Wrap(err, "get user")
	}
	return u, true, nil
}
