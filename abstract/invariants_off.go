//go:build !invariants

package abstract

const invariants = false
