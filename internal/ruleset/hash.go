package ruleset

import (
	"crypto/sha256"
	"fmt"
)

// Digest is a fixed 256-bit hash, compatible with source.File.Hash.
type Digest [32]byte

// Hash fingerprints the effective policy. Results cached under one
// digest are only reused while the whole configuration is identical.
func (rs *Ruleset) Hash() Digest {
	t := rs.RuleSet
	payload := fmt.Sprintf("v1|%t|%t|%t|%t|%t|%t|%t|%t|%d",
		t.RestrictGoto, t.RestrictSetjmp, t.RestrictLongjmp, t.RestrictRecursion,
		t.FixedLoopBounds, t.RestrictHeapAllocation, t.RestrictFunctionSize,
		t.CheckReturnValue, rs.Limits.MaxFunctionLines)
	return sha256.Sum256([]byte(payload))
}

// Combine builds a compound digest: H(content || extra1 || extra2 ...).
// The caller must pass extras in a deterministic order.
func Combine(content Digest, extras ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range extras {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
