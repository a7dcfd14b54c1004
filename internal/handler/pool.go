package handler

import (
	"bytes"
	"sync"
)

// bufferPool reuses encode buffers across responses. Most payloads here
// are small (ids, amounts, single tournaments), so 512 bytes covers the
// common case without a grow.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets buf before handing it back to the pool.
func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
