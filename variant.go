package tinyjambu

// Variant selects one of the three TinyJambu key sizes. It fixes the
// key-schedule modulus and every per-phase round count.
type Variant int

const (
	Variant128 Variant = iota
	Variant192
	Variant256
)

// String returns the canonical variant name, e.g. "TinyJambu-128".
func (v Variant) String() string {
	switch v {
	case Variant128:
		return "TinyJambu-128"
	case Variant192:
		return "TinyJambu-192"
	case Variant256:
		return "TinyJambu-256"
	default:
		return "TinyJambu-unknown"
	}
}

type variantParams struct {
	keyBytes  int
	keySetup  int // round count for the key-setup phase
	textBlock int // round count for each text block, and finalize's first half
}

var params = [3]variantParams{
	Variant128: {keyBytes: 16, keySetup: 1024, textBlock: 1024},
	Variant192: {keyBytes: 24, keySetup: 1152, textBlock: 1152},
	Variant256: {keyBytes: 32, keySetup: 1280, textBlock: 1280},
}

func (v Variant) keyBytes() int  { return params[v].keyBytes }
func (v Variant) keyWords() int  { return params[v].keyBytes / 4 }
func (v Variant) keySetup() int  { return params[v].keySetup }
func (v Variant) textBlock() int { return params[v].textBlock }

// packKey converts a raw key of v.keyBytes() bytes into little-endian
// 32-bit words. Produces identical words regardless of host byte order.
func (v Variant) packKey(key []byte) []uint32 {
	if len(key) != v.keyBytes() {
		panic("tinyjambu: wrong key size")
	}
	words := make([]uint32, v.keyWords())
	for i := range words {
		words[i] = fromLEBytes(key[4*i:])
	}
	return words
}
