package tinyjambu

import "fmt"

// KeySize192 is the AEAD192 key length, in bytes.
const KeySize192 = 24

// AEAD192 implements TinyJambu-192. It satisfies crypto/cipher.AEAD.
type AEAD192 struct {
	key [KeySize192]byte
}

// NewAEAD192 constructs an AEAD192 bound to key, which must be exactly
// KeySize192 bytes.
func NewAEAD192(key []byte) (*AEAD192, error) {
	a := new(AEAD192)
	a.SetKey(key)
	return a, nil
}

// SetKey rebinds a to a new key. Not safe for concurrent use with Seal or
// Open.
func (a *AEAD192) SetKey(key []byte) {
	if len(key) != KeySize192 {
		panic("tinyjambu: wrong key size")
	}
	copy(a.key[:], key)
}

func (*AEAD192) NonceSize() int { return NonceSize }
func (*AEAD192) Overhead() int  { return TagSize }

// Seal encrypts and authenticates plaintext, appending ciphertext and tag
// to dst and returning the extended slice.
func (a *AEAD192) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	return seal(Variant192.packKey(a.key[:]), Variant192, dst, nonce, plaintext, additionalData)
}

// Open verifies and decrypts ciphertext, appending plaintext to dst. On
// authentication failure it returns errAuthFailed and the appended bytes
// are all zero.
func (a *AEAD192) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return dst, errAuthFailed
	}
	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]
	return open(Variant192.packKey(a.key[:]), Variant192, dst, nonce, tag, additionalData, ct)
}
