// Package tinyjambu implements the TinyJambu family of authenticated
// encryption with associated data (AEAD) ciphers, a NIST Lightweight
// Cryptography finalist built on a keyed non-linear feedback shift register
// permutation.
//
// Three variants are provided, differing only in key size and the
// resulting per-phase round counts: AEAD128 (128-bit key), AEAD192
// (192-bit key) and AEAD256 (256-bit key). All three share a 128-bit
// permutation state, a 96-bit nonce and a 64-bit tag.
//
// https://csrc.nist.gov/CSRC/media/Projects/lightweight-cryptography/documents/finalist-round/updated-spec-doc/tinyjambu-spec-final.pdf
package tinyjambu
