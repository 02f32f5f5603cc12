package netutil

// MsgPacker is used to packs and unpacks messages
type MsgPacker interface {
	PackMsg(msg interface{}, buf []byte) ([]byte, error)
	UnpackMsg(data []byte, msg interface{}) error
}

// MSG_PACKER packs the requests and replies of client connections
var MSG_PACKER MsgPacker = MessagePackMsgPacker{}
