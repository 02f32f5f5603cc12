package proto

// Object is one record carried by a reply
type Object map[string]interface{}

// Reply is the answer to one request
type Reply struct {
	ID      RequestID `msgpack:"id"`
	Status  Status    `msgpack:"status"`
	Message string    `msgpack:"message,omitempty"`
	Objects []Object  `msgpack:"objects,omitempty"`
}

// NewReply creates a reply carrying a status only
func NewReply(id RequestID, status Status) *Reply {
	return &Reply{ID: id, Status: status}
}

// NewErrorReply creates the reply to a request the server does not know
func NewErrorReply() *Reply {
	return &Reply{ID: REPLY_ERROR, Status: STATUS_UNKNOWN_REQUEST}
}

// OK tells whether the reply carries an operator outcome
func (r *Reply) OK() bool {
	return r.Status == STATUS_OK
}
