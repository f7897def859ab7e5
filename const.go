package tinyjambu

// Framebits are three-bit domain separators, pre-shifted into bits 4..6 of
// state[1] (bits 36..38 of the abstract 128-bit register).
const (
	fbNonce uint32 = 0x10 // 0b001 << 4
	fbAD    uint32 = 0x30 // 0b011 << 4
	fbCT    uint32 = 0x50 // 0b101 << 4
	fbTag   uint32 = 0x70 // 0b111 << 4
)

// roundsBlock is the round count shared by every nonce/AD block and the
// second half of finalization, across all three variants.
const roundsBlock = 640
