//go:build !fbk64 && !fbk128

package tinyjambu

// UnrollingName identifies the feedback-width chosen at build time. Reported
// by the bench CLI subcommand so throughput numbers can be compared across
// builds.
const UnrollingName = "fbk32"

// stateUpdate is the hot-path permutation entry point selected at build
// time. Default: 32 feedback bits per iteration (FBK_32).
func stateUpdate(s *state, key []uint32, rounds int) {
	stateUpdate32(s, key, rounds)
}
