package tinyjambu

import (
	"bytes"
	"crypto/cipher"
	"errors"
	"testing"
)

func newVariantAEAD(t *testing.T, v Variant) cipher.AEAD {
	t.Helper()
	key := make([]byte, v.keyBytes())
	for i := range key {
		key[i] = byte(i * 7)
	}
	switch v {
	case Variant128:
		a, err := NewAEAD128(key)
		if err != nil {
			t.Fatal(err)
		}
		return a
	case Variant192:
		a, err := NewAEAD192(key)
		if err != nil {
			t.Fatal(err)
		}
		return a
	case Variant256:
		a, err := NewAEAD256(key)
		if err != nil {
			t.Fatal(err)
		}
		return a
	default:
		t.Fatalf("unknown variant %v", v)
		return nil
	}
}

var allVariants = []Variant{Variant128, Variant192, Variant256}

func fill(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(int(seed) + i)
	}
	return b
}

func TestRoundTrip(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 16, 31, 63, 257}
	for _, v := range allVariants {
		a := newVariantAEAD(t, v)
		nonce := fill(NonceSize, 0x24)
		for _, adLen := range sizes {
			for _, ptLen := range sizes {
				ad := fill(adLen, 0x11)
				pt := fill(ptLen, 0x42)

				ct := a.Seal(nil, nonce, pt, ad)
				if len(ct) != len(pt)+TagSize {
					t.Fatalf("%v ad=%d pt=%d: len(ct)=%d, want %d", v, adLen, ptLen, len(ct), len(pt)+TagSize)
				}

				got, err := a.Open(nil, nonce, ct, ad)
				if err != nil {
					t.Fatalf("%v ad=%d pt=%d: Open failed: %v", v, adLen, ptLen, err)
				}
				if !bytes.Equal(got, pt) {
					t.Fatalf("%v ad=%d pt=%d: round trip mismatch: got %x, want %x", v, adLen, ptLen, got, pt)
				}
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	for _, v := range allVariants {
		a1 := newVariantAEAD(t, v)
		a2 := newVariantAEAD(t, v)
		nonce := fill(NonceSize, 0x01)
		ad := fill(13, 0x02)
		pt := fill(37, 0x03)

		ct1 := a1.Seal(nil, nonce, pt, ad)
		ct2 := a2.Seal(nil, nonce, pt, ad)
		if !bytes.Equal(ct1, ct2) {
			t.Errorf("%v: two identical Seal calls diverged", v)
		}
	}
}

func TestSealInPlaceAliasing(t *testing.T) {
	for _, v := range allVariants {
		a := newVariantAEAD(t, v)
		nonce := fill(NonceSize, 0x05)
		ad := fill(9, 0x06)
		pt := fill(40, 0x07)

		wantCT := a.Seal(nil, nonce, pt, ad)

		buf := make([]byte, len(pt), len(pt)+TagSize)
		copy(buf, pt)
		inPlace := a.Seal(buf[:0], nonce, buf, ad)

		if !bytes.Equal(inPlace, wantCT) {
			t.Errorf("%v: in-place Seal diverged from out-of-place Seal", v)
		}
	}
}

func TestBitFlipDetection(t *testing.T) {
	for _, v := range allVariants {
		key := make([]byte, v.keyBytes())
		for i := range key {
			key[i] = byte(i * 3)
		}
		nonce := fill(NonceSize, 0x09)
		ad := fill(5, 0x0a)
		pt := fill(20, 0x0b)

		mk := func() cipher.AEAD {
			switch v {
			case Variant128:
				a, _ := NewAEAD128(key)
				return a
			case Variant192:
				a, _ := NewAEAD192(key)
				return a
			default:
				a, _ := NewAEAD256(key)
				return a
			}
		}

		ct := mk().Seal(nil, nonce, pt, ad)

		// buf is the buffer to flip; sealed is the ciphertext||tag handed
		// to Open (it contains buf when a ciphertext or tag byte is flipped).
		flipAndExpectFailure := func(name string, buf, sealed []byte) {
			if len(buf) == 0 {
				return
			}
			orig := buf[0]
			buf[0] ^= 0x01
			_, err := mk().Open(nil, nonce, sealed, ad)
			buf[0] = orig
			if err == nil {
				t.Errorf("%v: flipping %s did not cause authentication failure", v, name)
			} else if !errors.Is(err, errAuthFailed) {
				t.Errorf("%v: flipping %s: unexpected error %v", v, name, err)
			}
		}

		flipAndExpectFailure("key", key, ct)
		flipAndExpectFailure("nonce", nonce, ct)
		flipAndExpectFailure("ad", ad, ct)

		ctCopy := append([]byte(nil), ct...)
		flipAndExpectFailure("ciphertext", ctCopy, ctCopy)
		if _, err := mk().Open(nil, nonce, ctCopy, ad); err != nil {
			t.Errorf("%v: ciphertext copy should still verify after undoing the flip", v)
		}

		tagCopy := append([]byte(nil), ct...)
		flipAndExpectFailure("tag", tagCopy[len(tagCopy)-TagSize:], tagCopy)
	}
}

func TestRUPZeroization(t *testing.T) {
	for _, v := range allVariants {
		a := newVariantAEAD(t, v)
		nonce := fill(NonceSize, 0x0c)
		ad := fill(3, 0x0d)
		pt := fill(50, 0x0e)

		ct := a.Seal(nil, nonce, pt, ad)
		ct[0] ^= 0x01 // corrupt the tag-relevant ciphertext

		got, err := a.Open(nil, nonce, ct, ad)
		if err == nil {
			t.Fatalf("%v: expected authentication failure", v)
		}
		for i, b := range got {
			if b != 0 {
				t.Fatalf("%v: RUP violation, byte %d of released plaintext is %#x", v, i, b)
			}
		}
	}
}

func TestEmptyADAndCTFlipsAreNoops(t *testing.T) {
	for _, v := range allVariants {
		a := newVariantAEAD(t, v)
		nonce := fill(NonceSize, 0x14)

		ct := a.Seal(nil, nonce, nil, nil)
		if len(ct) != TagSize {
			t.Fatalf("%v: expected bare tag, got %d bytes", v, len(ct))
		}
		if _, err := a.Open(nil, nonce, ct, nil); err != nil {
			t.Fatalf("%v: empty ad/pt round trip failed: %v", v, err)
		}
	}
}
