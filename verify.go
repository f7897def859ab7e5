package tinyjambu

import "crypto/subtle"

// tagsEqual reports whether two 8-byte tags are equal, in constant time.
func tagsEqual(a, b [8]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// wipeOnFailure implements release-of-unverified-plaintext defense: on a
// failed verification, every byte of pt is zeroed before it reaches the
// caller.
func wipeOnFailure(pt []byte, ok bool) {
	if ok {
		return
	}
	for i := range pt {
		pt[i] = 0
	}
}
