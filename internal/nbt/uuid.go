package nbt

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// UUIDFromIntArray decodes the four big-endian words NBT uses to store a UUID.
func UUIDFromIntArray(a IntArray) (uuid.UUID, bool) {
	var u uuid.UUID
	if len(a) != 4 {
		return u, false
	}
	for i, word := range a {
		binary.BigEndian.PutUint32(u[i*4:], uint32(word))
	}
	return u, true
}

func IntArrayFromUUID(u uuid.UUID) IntArray {
	a := make(IntArray, 4)
	for i := range a {
		a[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return a
}
