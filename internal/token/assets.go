package token

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"

	"academy/pkg/domain"
	dErrors "academy/pkg/domain-errors"
)

// Asset is a non-fungible record bound to an owner: a course credential or an
// achievement. Assets are frozen on creation; only the registry authority may
// update their metadata (the credential upgrade path).
type Asset struct {
	Address     domain.Address
	Owner       domain.Identity
	Name        string
	MetadataURI string
	Attributes  map[string]string
	Frozen      bool
	CreatedAt   int64
	UpdatedAt   int64
}

// CredentialAssetAddress derives the asset address for a learner's credential
// in a track. One credential per (track, learner); completing higher levels
// upgrades the same asset.
func CredentialAssetAddress(trackID uint16, learner domain.Identity) domain.Address {
	var seed [2]byte
	binary.BigEndian.PutUint16(seed[:], trackID)
	return deriveAsset("credential", seed[:], learner.Bytes())
}

// AchievementAssetAddress derives the asset address for an achievement award.
func AchievementAssetAddress(achievementID string, recipient domain.Identity) domain.Address {
	return deriveAsset("achievement-asset", []byte(achievementID), recipient.Bytes())
}

func deriveAsset(namespace string, seeds ...[]byte) domain.Address {
	h := sha256.New()
	h.Write([]byte(namespace))
	for _, seed := range seeds {
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}
	var addr domain.Address
	h.Sum(addr[:0])
	return addr
}

// AssetRegistry holds non-fungible assets, creation and update gated by a
// single authority (the Config address).
type AssetRegistry struct {
	mu        sync.RWMutex
	authority domain.Address
	assets    map[domain.Address]*Asset
}

// NewAssetRegistry creates an empty registry gated by authority.
func NewAssetRegistry(authority domain.Address) *AssetRegistry {
	return &AssetRegistry{
		authority: authority,
		assets:    make(map[domain.Address]*Asset),
	}
}

// Create mints a new frozen asset. Fails if an asset already exists at the
// address.
func (r *AssetRegistry) Create(authority domain.Address, asset Asset) error {
	if !authority.Equal(r.authority) {
		return dErrors.New(dErrors.CodeUnauthorized, "not the asset authority")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.assets[asset.Address]; exists {
		return dErrors.New(dErrors.CodeConflict, fmt.Sprintf("asset %s already exists", asset.Address))
	}
	asset.Frozen = true
	stored := asset
	stored.Attributes = cloneAttrs(asset.Attributes)
	r.assets[asset.Address] = &stored
	return nil
}

// Update rewrites an existing asset's name, URI, and attributes in place.
// Ownership and freeze state never change.
func (r *AssetRegistry) Update(authority domain.Address, addr domain.Address, name, metadataURI string, attrs map[string]string, now int64) error {
	if !authority.Equal(r.authority) {
		return dErrors.New(dErrors.CodeUnauthorized, "not the asset authority")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	asset, ok := r.assets[addr]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("asset %s not found", addr))
	}
	asset.Name = name
	asset.MetadataURI = metadataURI
	asset.Attributes = cloneAttrs(attrs)
	asset.UpdatedAt = now
	return nil
}

// Get returns a copy of the asset at addr.
func (r *AssetRegistry) Get(addr domain.Address) (Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	asset, ok := r.assets[addr]
	if !ok {
		return Asset{}, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("asset %s not found", addr))
	}
	out := *asset
	out.Attributes = cloneAttrs(asset.Attributes)
	return out, nil
}

// Exists reports whether an asset is present at addr.
func (r *AssetRegistry) Exists(addr domain.Address) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.assets[addr]
	return ok
}

func cloneAttrs(attrs map[string]string) map[string]string {
	if attrs == nil {
		return nil
	}
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
