// Package domain provides the type-safe primitives shared across the ledger:
// signer identities, derived storage addresses, and validated natural keys.
package domain

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"

	dErrors "academy/pkg/domain-errors"
)

// Identity is a 32-byte ed25519 public key identifying a signer: the root
// authority, the backend signer, a learner, a course creator, or a minter.
type Identity [32]byte

// ZeroIdentity is the all-zero identity, used for "not set".
var ZeroIdentity Identity

// ParseIdentity parses a hex-encoded 32-byte public key. Use at trust
// boundaries (handlers, API inputs).
func ParseIdentity(s string) (Identity, error) {
	if s == "" {
		return Identity{}, dErrors.New(dErrors.CodeBadRequest, "identity cannot be empty")
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return Identity{}, dErrors.New(dErrors.CodeBadRequest, "identity must be 32 hex-encoded bytes")
	}
	var id Identity
	copy(id[:], raw)
	return id, nil
}

// IdentityFromPublicKey converts an ed25519 public key into an Identity.
func IdentityFromPublicKey(pub ed25519.PublicKey) Identity {
	var id Identity
	copy(id[:], pub)
	return id
}

func (id Identity) String() string { return hex.EncodeToString(id[:]) }

func (id Identity) IsZero() bool { return id == ZeroIdentity }

func (id Identity) Equal(other Identity) bool { return id == other }

// Bytes returns the raw key bytes for address derivation and binary layouts.
func (id Identity) Bytes() []byte { return id[:] }

// Verify checks an ed25519 signature made by this identity over msg.
func (id Identity) Verify(msg, sig []byte) bool {
	if len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(id[:]), msg, sig)
}

// Address is a 32-byte derived storage address. Addresses are computed by the
// ledger derivation function, never assigned; see internal/ledger.
type Address [32]byte

// ZeroAddress is the all-zero address, used for "not set".
var ZeroAddress Address

// ParseAddress parses a hex-encoded 32-byte address.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, dErrors.New(dErrors.CodeBadRequest, "address cannot be empty")
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return Address{}, dErrors.New(dErrors.CodeBadRequest, "address must be 32 hex-encoded bytes")
	}
	var a Address
	copy(a[:], raw)
	return a, nil
}

func (a Address) String() string { return hex.EncodeToString(a[:]) }

func (a Address) IsZero() bool { return a == ZeroAddress }

func (a Address) Equal(other Address) bool { return a == other }

func (a Address) Bytes() []byte { return a[:] }

// Less provides a stable ordering for deterministic iteration in stores.
func (a Address) Less(other Address) bool {
	return bytes.Compare(a[:], other[:]) < 0
}
