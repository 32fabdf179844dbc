// Package xyzpub normalizes extended public keys that carry SLIP-132 version
// prefixes (xpub/ypub/zpub and the testnet tpub/upub/vpub) into a parsed
// BIP32 key tagged with the network and output script convention the prefix
// declared. It also derives the script hash identifying an address's
// spending condition.
package xyzpub

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	// serializedKeyLen is the size of a serialized BIP32 extended key:
	// 4 bytes version, 1 byte depth, 4 bytes parent fingerprint, 4 bytes
	// child number, 32 bytes chain code and 33 bytes key material.
	serializedKeyLen = 78

	// versionLen is the size of the version prefix that leads a
	// serialized extended key.
	versionLen = 4

	// checksumLen is the size of the double-SHA256 checksum that trails
	// the base58 encoding.
	checksumLen = 4
)

// ScriptType is the output script convention a SLIP-132 version prefix
// declares for the addresses derived from a key.
type ScriptType uint8

const (
	// ScriptTypeP2PKH is the legacy pay-to-pubkey-hash convention.
	ScriptTypeP2PKH ScriptType = iota

	// ScriptTypeP2WPKH is the native segwit pay-to-witness-pubkey-hash
	// convention.
	ScriptTypeP2WPKH

	// ScriptTypeNP2WPKH is the p2wpkh-nested-in-p2sh convention.
	ScriptTypeNP2WPKH
)

// String returns a human readable name for the script type.
func (s ScriptType) String() string {
	switch s {
	case ScriptTypeP2PKH:
		return "p2pkh"
	case ScriptTypeP2WPKH:
		return "p2wpkh"
	case ScriptTypeNP2WPKH:
		return "p2sh-p2wpkh"
	default:
		return fmt.Sprintf("<unknown script type %d>", uint8(s))
	}
}

// ParseScriptType maps a script type name back to its ScriptType value.
func ParseScriptType(name string) (ScriptType, error) {
	switch name {
	case "p2pkh":
		return ScriptTypeP2PKH, nil
	case "p2wpkh":
		return ScriptTypeP2WPKH, nil
	case "p2sh-p2wpkh", "np2wpkh":
		return ScriptTypeNP2WPKH, nil
	default:
		return 0, fmt.Errorf("unknown script type %q", name)
	}
}

// versionEntry ties a SLIP-132 version prefix to the network and script type
// it declares.
type versionEntry struct {
	params     *chaincfg.Params
	scriptType ScriptType
}

// hdVersions is the set of version prefixes this package recognizes, the
// product of {mainnet, testnet3} x {p2pkh, p2wpkh, p2sh-p2wpkh}. Regtest
// shares testnet3's prefixes and has no row of its own. Supporting further
// SLIP-132 prefixes means adding rows here only.
var hdVersions = map[[versionLen]byte]versionEntry{
	{0x04, 0x88, 0xb2, 0x1e}: {&chaincfg.MainNetParams, ScriptTypeP2PKH},
	{0x04, 0xb2, 0x47, 0x46}: {&chaincfg.MainNetParams, ScriptTypeP2WPKH},
	{0x04, 0x9d, 0x7c, 0xb2}: {&chaincfg.MainNetParams, ScriptTypeNP2WPKH},
	{0x04, 0x35, 0x87, 0xcf}: {&chaincfg.TestNet3Params, ScriptTypeP2PKH},
	{0x04, 0x5f, 0x1c, 0xf6}: {&chaincfg.TestNet3Params, ScriptTypeP2WPKH},
	{0x04, 0x4a, 0x52, 0x62}: {&chaincfg.TestNet3Params, ScriptTypeNP2WPKH},
}

// versionForType returns the SLIP-132 version prefix declaring the given
// script type on the given network.
func versionForType(params *chaincfg.Params,
	scriptType ScriptType) ([versionLen]byte, bool) {

	for version, entry := range hdVersions {
		if entry.params.Net == params.Net &&
			entry.scriptType == scriptType {

			return version, true
		}
	}

	return [versionLen]byte{}, false
}

// Key is an extended public key normalized from its SLIP-132 encoding. The
// network and script type the original version prefix declared travel
// alongside the parsed key.
type Key struct {
	// Network is the network the version prefix declared. This is either
	// MainNetParams or TestNet3Params; regtest shares testnet's prefixes
	// and is never produced here.
	Network *chaincfg.Params

	// ScriptType is the output script convention the version prefix
	// declared.
	ScriptType ScriptType

	// ExtendedKey is the parsed BIP32 key. Its version bytes were
	// rewritten to the network's plain p2pkh prefix before parsing, so
	// any fingerprint or serialization derived from it reflects the
	// substituted prefix and will not match what software that keeps the
	// original prefix reports for the same key. The values are stable
	// and consistent within this package.
	ExtendedKey *hdkeychain.ExtendedKey
}

// Parse decodes a SLIP-132 encoded extended public key. The version prefix
// is looked up to determine the declared network and script type, then
// rewritten to the plain p2pkh HD prefix hdkeychain understands before the
// key itself is parsed. The caller's input is never mutated.
func Parse(s string) (*Key, error) {
	decoded := base58.Decode(s)
	if len(decoded) < checksumLen {
		return nil, ErrInvalidEncoding
	}

	payload := decoded[:len(decoded)-checksumLen]
	checksum := decoded[len(decoded)-checksumLen:]
	expected := chainhash.DoubleHashB(payload)[:checksumLen]
	if !bytes.Equal(checksum, expected) {
		return nil, ErrBadChecksum
	}

	if len(payload) != serializedKeyLen {
		return nil, &InvalidLengthError{Length: len(payload)}
	}

	var version [versionLen]byte
	copy(version[:], payload[:versionLen])

	entry, ok := hdVersions[version]
	if !ok {
		return nil, &InvalidVersionError{Version: version}
	}

	// Rewrite the version bytes in a fresh copy of the payload. The
	// original declaration travels out-of-band on the returned Key.
	buf := make([]byte, serializedKeyLen)
	copy(buf, payload)
	copy(buf[:versionLen], entry.params.HDPublicKeyID[:])

	extendedKey, err := hdkeychain.NewKeyFromString(checkEncode(buf))
	if err != nil {
		return nil, err
	}

	return &Key{
		Network:     entry.params,
		ScriptType:  entry.scriptType,
		ExtendedKey: extendedKey,
	}, nil
}

// MatchesNetwork reports whether the key's declared network is usable on the
// target network. Regtest shares testnet's encoding prefixes, so a key
// declared on testnet is accepted for a regtest target. Everything else
// requires an exact match.
func (k *Key) MatchesNetwork(params *chaincfg.Params) bool {
	return k.Network.Net == params.Net ||
		(k.Network.Net == wire.TestNet3 && params.Net == wire.TestNet)
}

// Convert re-serializes the key under the SLIP-132 version prefix declaring
// the given script type on the key's network.
func (k *Key) Convert(scriptType ScriptType) (string, error) {
	version, ok := versionForType(k.Network, scriptType)
	if !ok {
		return "", fmt.Errorf("no version prefix for %v on %v",
			scriptType, k.Network.Name)
	}

	decoded := base58.Decode(k.ExtendedKey.String())
	payload := decoded[:len(decoded)-checksumLen]

	buf := make([]byte, serializedKeyLen)
	copy(buf, payload)
	copy(buf[:versionLen], version[:])

	return checkEncode(buf), nil
}

// checkEncode serializes payload with a trailing double-SHA256 checksum. This
// is the framing base58.CheckEncode uses, minus its single leading version
// byte which doesn't fit the 4-byte HD prefixes.
func checkEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, chainhash.DoubleHashB(payload)[:checksumLen]...)

	return base58.Encode(buf)
}
