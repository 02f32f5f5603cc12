package netutil

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// MessagePackMsgPacker packs requests, replies and journal entries in MessagePack format
type MessagePackMsgPacker struct{}

// PackMsg appends the MessagePack form of msg to buf
func (mp MessagePackMsgPacker) PackMsg(msg interface{}, buf []byte) ([]byte, error) {
	buffer := bytes.NewBuffer(buf)
	if err := msgpack.NewEncoder(buffer).Encode(msg); err != nil {
		return buf, errors.Wrapf(err, "pack %T", msg)
	}
	return buffer.Bytes(), nil
}

// UnpackMsg decodes data into msg; nested maps are decoded with string keys
func (mp MessagePackMsgPacker) UnpackMsg(data []byte, msg interface{}) error {
	return errors.Wrapf(msgpack.Unmarshal(data, msg), "unpack %T", msg)
}
