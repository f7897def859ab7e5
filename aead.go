package tinyjambu

// NonceSize is the required nonce length, in bytes, for every variant.
const NonceSize = 96 / 8

// TagSize is the authentication tag length, in bytes, for every variant.
const TagSize = 64 / 8

// seal drives key setup, nonce/AD absorption, text encryption and
// finalization in order, appending ciphertext and tag to dst.
func seal(keyWords []uint32, v Variant, dst, nonce, pt, ad []byte) []byte {
	if len(nonce) != NonceSize {
		panic("tinyjambu: bad nonce length")
	}

	var s state
	initialize(&s, keyWords, v, nonce)
	absorbAD(&s, keyWords, ad)

	dstLen := len(dst)
	dst = growNoClear(dst, len(pt)+TagSize)
	ct := dst[dstLen : dstLen+len(pt)]
	processTextEnc(&s, keyWords, v, pt, ct)

	finalize(&s, keyWords, v, dst[dstLen+len(pt):])
	return dst
}

// open verifies tag against a freshly recomputed tag and decrypts ct into
// dst. On verification failure the appended plaintext is zeroed and
// errAuthFailed is returned; dst still grows by len(ct) bytes.
func open(keyWords []uint32, v Variant, dst, nonce, tag, ad, ct []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("tinyjambu: bad nonce length")
	}
	if len(tag) != TagSize {
		panic("tinyjambu: bad tag length")
	}

	var s state
	initialize(&s, keyWords, v, nonce)
	absorbAD(&s, keyWords, ad)

	dstLen := len(dst)
	dst = growNoClear(dst, len(ct))
	pt := dst[dstLen:]
	processTextDec(&s, keyWords, v, ct, pt)

	var wantTag, gotTag [8]byte
	copy(wantTag[:], tag)
	finalize(&s, keyWords, v, gotTag[:])

	ok := tagsEqual(wantTag, gotTag)
	wipeOnFailure(pt, ok)
	if !ok {
		return dst, errAuthFailed
	}
	return dst, nil
}

// growNoClear extends dst by n bytes. When dst has spare capacity the new
// bytes are left as they are, so an input that shares dst's storage (the
// in-place dst=text[:0] idiom) is still intact when it is read.
func growNoClear(dst []byte, n int) []byte {
	if total := len(dst) + n; cap(dst) >= total {
		return dst[:total]
	}
	grown := make([]byte, len(dst)+n)
	copy(grown, dst)
	return grown
}
