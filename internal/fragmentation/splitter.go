package fragmentation

import (
	"github.com/warmsocket/rsocket/internal/common"
	"github.com/warmsocket/rsocket/internal/framing"
)

// HandleSplitResult is the callback invoked once per fragment. body already
// holds the wire layout of a frame of that fragment's type: an optional
// leading reserved area (see SplitSkip), an optional 3-byte metadata length
// plus metadata, then the data slice.
type HandleSplitResult = func(index int, flag framing.FrameFlag, body *common.ByteBuff)

// Split splits data and metadata across as many mtu-sized frame bodies as
// required.
func Split(mtu int, data []byte, metadata []byte, onFrame HandleSplitResult) {
	SplitSkip(mtu, 0, data, metadata, onFrame)
}

// SplitSkip is like Split but reserves skip leading bytes in the first
// fragment's body, for a leading fixed-size field (e.g. InitialRequestN)
// the caller fills in after the fragment is built.
func SplitSkip(mtu int, skip int, data []byte, metadata []byte, onFrame HandleSplitResult) {
	mlen, dlen := len(metadata), len(data)
	var idx, cursor1, cursor2 int
	var follow bool
	for {
		left := mtu - framing.HeaderLen
		if idx == 0 && skip > 0 {
			left -= skip
		}
		hasMetadata := cursor1 < mlen
		if hasMetadata {
			left -= 3
		}
		begin1, begin2 := cursor1, cursor2
		for wrote := 0; wrote < left; wrote++ {
			if cursor1 < mlen {
				cursor1++
			} else if cursor2 < dlen {
				cursor2++
			} else {
				break
			}
		}
		curMetadata := metadata[begin1:cursor1]
		curData := data[begin2:cursor2]
		follow = cursor1+cursor2 < mlen+dlen

		var flag framing.FrameFlag
		if follow {
			flag |= framing.FlagFollow
		}
		if hasMetadata {
			flag |= framing.FlagMetadata
		}

		body := common.BorrowByteBuffer()
		if idx == 0 && skip > 0 {
			var zero [4]byte
			if _, err := body.Write(zero[:skip]); err != nil {
				common.ReturnByteBuffer(body)
				panic(err)
			}
		}
		if hasMetadata {
			if err := body.WriteUint24(len(curMetadata)); err != nil {
				common.ReturnByteBuffer(body)
				panic(err)
			}
			if _, err := body.Write(curMetadata); err != nil {
				common.ReturnByteBuffer(body)
				panic(err)
			}
		}
		if len(curData) > 0 {
			if _, err := body.Write(curData); err != nil {
				common.ReturnByteBuffer(body)
				panic(err)
			}
		}

		onFrame(idx, flag, body)
		if !follow {
			break
		}
		idx++
	}
}
