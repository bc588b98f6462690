//go:build invariants

package abstract

// invariants enables a full Check after every mutation.
const invariants = true
