package proto

import (
	"github.com/pkg/errors"
	"github.com/xiaonanln/typeconv"
)

// ErrInvalidRequest is returned by Request getters for absent or malformed values
var ErrInvalidRequest = errors.New("invalid request")

// Request is one decoded client request
type Request struct {
	ID       RequestID              `msgpack:"id"`
	Login    string                 `msgpack:"login"`
	Password string                 `msgpack:"password"`
	Params   map[string]interface{} `msgpack:"params"`
}

// NewRequest creates a request with credentials and no parameters
func NewRequest(id RequestID, login string, password string) *Request {
	return &Request{ID: id, Login: login, Password: password, Params: map[string]interface{}{}}
}

// Set sets a parameter and returns the request for chaining
func (r *Request) Set(name string, value interface{}) *Request {
	if r.Params == nil {
		r.Params = map[string]interface{}{}
	}
	r.Params[name] = value
	return r
}

// IDRequest returns the request id
func (r *Request) IDRequest() RequestID {
	return r.ID
}

// LoginValue returns the login, failing when it is empty
func (r *Request) LoginValue() (string, error) {
	if r.Login == "" {
		return "", errors.Wrap(ErrInvalidRequest, "login is missing")
	}
	return r.Login, nil
}

// PasswordValue returns the password, failing when it is empty
func (r *Request) PasswordValue() (string, error) {
	if r.Password == "" {
		return "", errors.Wrap(ErrInvalidRequest, "password is missing")
	}
	return r.Password, nil
}

// ParamUint returns a non-negative integer parameter
func (r *Request) ParamUint(name string) (v uint64, err error) {
	val, ok := r.Params[name]
	if !ok || val == nil {
		return 0, errors.Wrapf(ErrInvalidRequest, "parameter %s is missing", name)
	}

	switch n := val.(type) {
	case uint64:
		return n, nil
	case string, bool:
		return 0, errors.Wrapf(ErrInvalidRequest, "parameter %s is not an integer", name)
	case float32:
		return floatParam(name, float64(n))
	case float64:
		return floatParam(name, n)
	}

	defer func() {
		if recover() != nil {
			v, err = 0, errors.Wrapf(ErrInvalidRequest, "parameter %s is not an integer", name)
		}
	}()
	i := typeconv.Int(val)
	if i < 0 {
		return 0, errors.Wrapf(ErrInvalidRequest, "parameter %s is negative", name)
	}
	return uint64(i), nil
}

// ParamString returns a non-empty string parameter
func (r *Request) ParamString(name string) (string, error) {
	val, ok := r.Params[name]
	if !ok {
		return "", errors.Wrapf(ErrInvalidRequest, "parameter %s is missing", name)
	}
	s, ok := val.(string)
	if !ok || s == "" {
		return "", errors.Wrapf(ErrInvalidRequest, "parameter %s is not a string", name)
	}
	return s, nil
}

func floatParam(name string, f float64) (uint64, error) {
	if f < 0 || f != float64(uint64(f)) {
		return 0, errors.Wrapf(ErrInvalidRequest, "parameter %s is not an unsigned integer", name)
	}
	return uint64(f), nil
}
