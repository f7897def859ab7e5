//go:build cgo

// Package main exports the tinyjambu AEAD package under a C ABI, so the
// Go implementation can be linked into non-Go callers the way the
// reference C++ wrapper at tinyjambu/wrapper/tinyjambu.cpp was. Symbol
// names match that wrapper's: tinyjambu_{128,192,256}_{encrypt,decrypt}.
package main

// #include <stdbool.h>
// #include <stddef.h>
// #include <stdint.h>
import "C"

import (
	"unsafe"

	"github.com/magical/go-tinyjambu"
)

// sealer is the subset of crypto/cipher.AEAD every tinyjambu variant
// satisfies; used here so the encrypt/decrypt helpers below don't repeat
// themselves per variant.
type sealer interface {
	Seal(dst, nonce, plaintext, ad []byte) []byte
	Open(dst, nonce, ciphertext, ad []byte) ([]byte, error)
}

func cBytes(ptr *C.uint8_t, n C.size_t) []byte {
	if n == 0 || ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(n))
}

func cEncrypt(a sealer, nonce, ad, text []byte, enc *C.uint8_t, ctLen C.size_t, tag *C.uint8_t) {
	out := a.Seal(nil, nonce, text, ad)
	copy(cBytes(enc, ctLen), out[:len(text)])
	copy(cBytes(tag, 8), out[len(text):])
}

func cDecrypt(a sealer, nonce, tagBytes, ad, enc []byte, dec *C.uint8_t, ctLen C.size_t) bool {
	blob := append(append([]byte{}, enc...), tagBytes...)
	pt, err := a.Open(nil, nonce, blob, ad)
	copy(cBytes(dec, ctLen), pt)
	return err == nil
}

//export tinyjambu_128_encrypt
func tinyjambu_128_encrypt(key, nonce, data *C.uint8_t, dLen C.size_t, text, enc *C.uint8_t, ctLen C.size_t, tag *C.uint8_t) {
	a, err := tinyjambu.NewAEAD128(cBytes(key, tinyjambu.KeySize128))
	if err != nil {
		return
	}
	cEncrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(data, dLen), cBytes(text, ctLen), enc, ctLen, tag)
}

//export tinyjambu_128_decrypt
func tinyjambu_128_decrypt(key, nonce, tag, data *C.uint8_t, dLen C.size_t, enc, dec *C.uint8_t, ctLen C.size_t) C.bool {
	a, err := tinyjambu.NewAEAD128(cBytes(key, tinyjambu.KeySize128))
	if err != nil {
		return C.bool(false)
	}
	ok := cDecrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(tag, tinyjambu.TagSize), cBytes(data, dLen), cBytes(enc, ctLen), dec, ctLen)
	return C.bool(ok)
}

//export tinyjambu_192_encrypt
func tinyjambu_192_encrypt(key, nonce, data *C.uint8_t, dLen C.size_t, text, enc *C.uint8_t, ctLen C.size_t, tag *C.uint8_t) {
	a, err := tinyjambu.NewAEAD192(cBytes(key, tinyjambu.KeySize192))
	if err != nil {
		return
	}
	cEncrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(data, dLen), cBytes(text, ctLen), enc, ctLen, tag)
}

//export tinyjambu_192_decrypt
func tinyjambu_192_decrypt(key, nonce, tag, data *C.uint8_t, dLen C.size_t, enc, dec *C.uint8_t, ctLen C.size_t) C.bool {
	a, err := tinyjambu.NewAEAD192(cBytes(key, tinyjambu.KeySize192))
	if err != nil {
		return C.bool(false)
	}
	ok := cDecrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(tag, tinyjambu.TagSize), cBytes(data, dLen), cBytes(enc, ctLen), dec, ctLen)
	return C.bool(ok)
}

//export tinyjambu_256_encrypt
func tinyjambu_256_encrypt(key, nonce, data *C.uint8_t, dLen C.size_t, text, enc *C.uint8_t, ctLen C.size_t, tag *C.uint8_t) {
	a, err := tinyjambu.NewAEAD256(cBytes(key, tinyjambu.KeySize256))
	if err != nil {
		return
	}
	cEncrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(data, dLen), cBytes(text, ctLen), enc, ctLen, tag)
}

//export tinyjambu_256_decrypt
func tinyjambu_256_decrypt(key, nonce, tag, data *C.uint8_t, dLen C.size_t, enc, dec *C.uint8_t, ctLen C.size_t) C.bool {
	a, err := tinyjambu.NewAEAD256(cBytes(key, tinyjambu.KeySize256))
	if err != nil {
		return C.bool(false)
	}
	ok := cDecrypt(a, cBytes(nonce, tinyjambu.NonceSize), cBytes(tag, tinyjambu.TagSize), cBytes(data, dLen), cBytes(enc, ctLen), dec, ctLen)
	return C.bool(ok)
}

func main() {}
