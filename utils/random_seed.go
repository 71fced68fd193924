package utils

import (
	"crypto/rand"
	"encoding/binary"
)

// RandomUint64 reads a seed from the operating system entropy source.
func RandomUint64() uint64 {
	var data [8]byte
	if _, err := rand.Read(data[:]); err != nil {
		panic(err)
	}
	return binary.BigEndian.Uint64(data[:])
}
