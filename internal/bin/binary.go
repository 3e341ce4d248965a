package bin

import "encoding/binary"

func PutU32BE(dst []byte, v uint32) { binary.BigEndian.PutUint32(dst, v) }
func U32BE(src []byte) uint32       { return binary.BigEndian.Uint32(src) }
