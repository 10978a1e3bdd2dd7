package framing

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/warmsocket/rsocket/internal/common"
)

const (
	errCodeLen       = 4
	errDataOff       = errCodeLen
	minErrorFrameLen = errCodeLen
)

// FrameError is error frame.
type FrameError struct {
	*BaseFrame
}

// Validate returns error if frame is invalid.
func (p *FrameError) Validate() (err error) {
	if p.body.Len() < minErrorFrameLen {
		err = errIncompleteFrame
	}
	return
}

func (p *FrameError) String() string {
	return fmt.Sprintf("FrameError{%s,code=%s,data=%s}", p.header, p.ErrorCode(), string(p.ErrorData()))
}

// Error implements the error interface so a FrameError can be propagated
// as a Go error across a stream.
func (p *FrameError) Error() string {
	return makeErrorString(p.ErrorCode(), p.ErrorData())
}

// ErrorCode returns error code.
func (p *FrameError) ErrorCode() common.ErrorCode {
	v := binary.BigEndian.Uint32(p.body.Bytes())
	return common.ErrorCode(v)
}

// ErrorData returns error data bytes.
func (p *FrameError) ErrorData() []byte {
	return p.body.Bytes()[errDataOff:]
}

// NewFrameError returns a new error frame.
func NewFrameError(sid uint32, code common.ErrorCode, data []byte) *FrameError {
	bf := common.BorrowByteBuffer()
	var b4 [4]byte
	binary.BigEndian.PutUint32(b4[:], uint32(code))
	if _, err := bf.Write(b4[:]); err != nil {
		common.ReturnByteBuffer(bf)
		panic(err)
	}
	if len(data) > 0 {
		if _, err := bf.Write(data); err != nil {
			common.ReturnByteBuffer(bf)
			panic(err)
		}
	}
	return &FrameError{
		NewBaseFrame(NewFrameHeader(sid, FrameTypeError, 0), bf),
	}
}

func makeErrorString(code common.ErrorCode, data []byte) string {
	bu := strings.Builder{}
	bu.WriteString(code.String())
	bu.WriteString(": ")
	bu.Write(data)
	return bu.String()
}
