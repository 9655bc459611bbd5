// Package token models the reward-token subledger: fungible XP balances plus
// the non-fungible credential and achievement assets. On deployment platforms
// these live in the host token programs; here they are in-process collaborators
// gated by the same mint authority the Config account holds.
package token

import (
	"math"
	"sync"

	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// Ledger tracks fungible XP balances keyed by owner identity. Minting is
// gated by a single mint authority and overflow-checked against both the
// recipient balance and the total supply.
type Ledger struct {
	mu          sync.RWMutex
	mint        domain.Address
	authority   domain.Address
	balances    map[domain.Identity]uint64
	totalSupply uint64
}

// NewLedger creates the XP ledger for the given mint, gated by authority.
func NewLedger(mint, authority domain.Address) *Ledger {
	return &Ledger{
		mint:      mint,
		authority: authority,
		balances:  make(map[domain.Identity]uint64),
	}
}

// Mint returns the token identifier this ledger tracks.
func (l *Ledger) Mint() domain.Address { return l.mint }

// CanMintTo reports whether minting amount to recipient would stay within the
// supply representation. Guard-phase check: it never mutates.
func (l *Ledger) CanMintTo(recipient domain.Identity, amount uint64) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.checkMint(recipient, amount)
}

func (l *Ledger) checkMint(recipient domain.Identity, amount uint64) error {
	if l.totalSupply > math.MaxUint64-amount {
		return dErrors.New(dErrors.CodeOverflow, "total supply overflow")
	}
	if bal := l.balances[recipient]; bal > math.MaxUint64-amount {
		return dErrors.New(dErrors.CodeOverflow, "recipient balance overflow")
	}
	return nil
}

// MintTo credits amount to recipient. The recipient's balance record is
// created on first mint; no separate account-creation step exists.
func (l *Ledger) MintTo(authority domain.Address, recipient domain.Identity, amount uint64) error {
	if !authority.Equal(l.authority) {
		return dErrors.New(dErrors.CodeUnauthorized, "not the mint authority")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.checkMint(recipient, amount); err != nil {
		return err
	}
	l.balances[recipient] += amount
	l.totalSupply += amount
	return nil
}

// BurnFrom debits amount from owner. Gated by the same mint authority; the
// XP token is non-transferable, so only the platform can remove balance.
func (l *Ledger) BurnFrom(authority domain.Address, owner domain.Identity, amount uint64) error {
	if !authority.Equal(l.authority) {
		return dErrors.New(dErrors.CodeUnauthorized, "not the mint authority")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[owner] < amount {
		return dErrors.New(dErrors.CodeOverflow, "burn exceeds balance")
	}
	l.balances[owner] -= amount
	l.totalSupply -= amount
	return nil
}

// Balance returns the owner's XP balance; absent records read as zero.
func (l *Ledger) Balance(owner domain.Identity) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balances[owner]
}

// TotalSupply returns the total minted XP.
func (l *Ledger) TotalSupply() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalSupply
}
