package tinyjambu

import "testing"

func benchSeal128(b *testing.B, size int64) {
	b.SetBytes(size)
	key := make([]byte, KeySize128)
	nonce := make([]byte, NonceSize)
	pt := make([]byte, size)
	a, err := NewAEAD128(key)
	if err != nil {
		b.Fatal(err)
	}
	out := make([]byte, 0, size+TagSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = a.Seal(out[:0], nonce, pt, nil)
	}
}

func BenchmarkSeal128_64B(b *testing.B)  { benchSeal128(b, 64) }
func BenchmarkSeal128_1K(b *testing.B)   { benchSeal128(b, 1024) }
func BenchmarkSeal128_8K(b *testing.B)   { benchSeal128(b, 8192) }
func BenchmarkSeal128_64K(b *testing.B)  { benchSeal128(b, 65536) }
