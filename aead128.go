package tinyjambu

import "fmt"

// KeySize128 is the AEAD128 key length, in bytes.
const KeySize128 = 16

// AEAD128 implements TinyJambu-128. It satisfies crypto/cipher.AEAD.
type AEAD128 struct {
	key [KeySize128]byte
}

// NewAEAD128 constructs an AEAD128 bound to key, which must be exactly
// KeySize128 bytes.
func NewAEAD128(key []byte) (*AEAD128, error) {
	a := new(AEAD128)
	a.SetKey(key)
	return a, nil
}

// SetKey rebinds a to a new key. Not safe for concurrent use with Seal or
// Open.
func (a *AEAD128) SetKey(key []byte) {
	if len(key) != KeySize128 {
		panic("tinyjambu: wrong key size")
	}
	copy(a.key[:], key)
}

func (*AEAD128) NonceSize() int { return NonceSize }
func (*AEAD128) Overhead() int  { return TagSize }

// Seal encrypts and authenticates plaintext, appending ciphertext and tag
// to dst and returning the extended slice.
func (a *AEAD128) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	return seal(Variant128.packKey(a.key[:]), Variant128, dst, nonce, plaintext, additionalData)
}

// Open verifies and decrypts ciphertext, appending plaintext to dst. On
// authentication failure it returns errAuthFailed and the appended bytes
// are all zero.
func (a *AEAD128) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return dst, errAuthFailed
	}
	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]
	return open(Variant128.packKey(a.key[:]), Variant128, dst, nonce, tag, additionalData, ct)
}
