package tinyjambu

import "fmt"

// KeySize256 is the AEAD256 key length, in bytes.
const KeySize256 = 32

// AEAD256 implements TinyJambu-256. It satisfies crypto/cipher.AEAD.
type AEAD256 struct {
	key [KeySize256]byte
}

// NewAEAD256 constructs an AEAD256 bound to key, which must be exactly
// KeySize256 bytes.
func NewAEAD256(key []byte) (*AEAD256, error) {
	a := new(AEAD256)
	a.SetKey(key)
	return a, nil
}

// SetKey rebinds a to a new key. Not safe for concurrent use with Seal or
// Open.
func (a *AEAD256) SetKey(key []byte) {
	if len(key) != KeySize256 {
		panic("tinyjambu: wrong key size")
	}
	copy(a.key[:], key)
}

func (*AEAD256) NonceSize() int { return NonceSize }
func (*AEAD256) Overhead() int  { return TagSize }

// Seal encrypts and authenticates plaintext, appending ciphertext and tag
// to dst and returning the extended slice.
func (a *AEAD256) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	return seal(Variant256.packKey(a.key[:]), Variant256, dst, nonce, plaintext, additionalData)
}

// Open verifies and decrypts ciphertext, appending plaintext to dst. On
// authentication failure it returns errAuthFailed and the appended bytes
// are all zero.
func (a *AEAD256) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("tinyjambu: bad nonce (len %d)", len(nonce)))
	}
	if len(ciphertext) < TagSize {
		return dst, errAuthFailed
	}
	ct := ciphertext[:len(ciphertext)-TagSize]
	tag := ciphertext[len(ciphertext)-TagSize:]
	return open(Variant256.packKey(a.key[:]), Variant256, dst, nonce, tag, additionalData, ct)
}
