//go:build fbk64

package tinyjambu

// UnrollingName identifies the feedback-width chosen at build time. Reported
// by the bench CLI subcommand so throughput numbers can be compared across
// builds.
const UnrollingName = "fbk64"

// stateUpdate is the hot-path permutation entry point selected at build
// time via the fbk64 build tag: 64 feedback bits per iteration.
func stateUpdate(s *state, key []uint32, rounds int) {
	stateUpdate64(s, key, rounds)
}
