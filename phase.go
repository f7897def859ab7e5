package tinyjambu

// initialize mixes the key and nonce into a freshly zeroed state.
// See section 3.3.1 of the TinyJambu specification.
func initialize(s *state, key []uint32, v Variant, nonce []byte) {
	*s = state{}
	stateUpdate(s, key, v.keySetup())

	for i := 0; i < 3; i++ {
		s[1] ^= fbNonce
		stateUpdate(s, key, roundsBlock)
		s[3] ^= fromLEBytes(nonce[4*i:])
	}
}

// absorbAD mixes associated data into the state, one 32-bit block at a
// time, with a framebit-tagged permutation call ahead of every block.
// See section 3.3.2 of the TinyJambu specification.
func absorbAD(s *state, key []uint32, data []byte) {
	full := len(data) / 4
	for i := 0; i < full; i++ {
		s[1] ^= fbAD
		stateUpdate(s, key, roundsBlock)
		s[3] ^= fromLEBytes(data[4*i:])
	}

	if part := len(data) % 4; part > 0 {
		s[1] ^= fbAD
		stateUpdate(s, key, roundsBlock)
		s[3] ^= fromLEPartial(data[4*full:])
		s[1] ^= uint32(part)
	}
}

// processTextEnc encrypts pt into ct, block by block, mixing plaintext
// into the state as it is consumed. See section 3.3.3.
func processTextEnc(s *state, key []uint32, v Variant, pt, ct []byte) {
	rounds := v.textBlock()
	full := len(pt) / 4
	for i := 0; i < full; i++ {
		s[1] ^= fbCT
		stateUpdate(s, key, rounds)
		w := fromLEBytes(pt[4*i:])
		s[3] ^= w
		toLEBytes(s[2]^w, ct[4*i:])
	}

	if part := len(pt) % 4; part > 0 {
		off := full * 4
		s[1] ^= fbCT
		stateUpdate(s, key, rounds)
		w := fromLEPartial(pt[off:])
		s[3] ^= w
		toLEPartial(s[2]^w, ct[off:off+part])
		s[1] ^= uint32(part)
	}
}

// processTextDec decrypts ct into pt, mirroring processTextEnc. The
// partial tail only feeds the low 8*part bits of the decrypted word back
// into the state; the rest must not affect subsequent blocks.
// See section 3.3.5.
func processTextDec(s *state, key []uint32, v Variant, ct, pt []byte) {
	rounds := v.textBlock()
	full := len(ct) / 4
	for i := 0; i < full; i++ {
		s[1] ^= fbCT
		stateUpdate(s, key, rounds)
		w := fromLEBytes(ct[4*i:])
		dec := s[2] ^ w
		s[3] ^= dec
		toLEBytes(dec, pt[4*i:])
	}

	if part := len(ct) % 4; part > 0 {
		off := full * 4
		s[1] ^= fbCT
		stateUpdate(s, key, rounds)
		w := fromLEPartial(ct[off:])
		dec := s[2] ^ w
		s[3] ^= dec & partialMask(part)
		toLEPartial(dec, pt[off:off+part])
		s[1] ^= uint32(part)
	}
}

// finalize produces the 64-bit tag in two framebit-tagged halves.
// See section 3.3.4.
func finalize(s *state, key []uint32, v Variant, tag []byte) {
	s[1] ^= fbTag
	stateUpdate(s, key, v.textBlock())
	toLEBytes(s[2], tag[0:4])

	s[1] ^= fbTag
	stateUpdate(s, key, roundsBlock)
	toLEBytes(s[2], tag[4:8])
}
