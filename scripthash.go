package xyzpub

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
)

// ScriptHashSize is the size of a script hash in bytes, the output width of
// Hash160.
const ScriptHashSize = 20

// ScriptHash identifies an output script by its Hash160 digest
// (RIPEMD160 of SHA256). Identical scripts always produce identical hashes,
// which makes the value usable as a lookup key for an address's spending
// condition.
type ScriptHash [ScriptHashSize]byte

// HashScript returns the script hash of the given raw output script.
func HashScript(script []byte) ScriptHash {
	var scriptHash ScriptHash
	copy(scriptHash[:], btcutil.Hash160(script))

	return scriptHash
}

// AddressScriptHash returns the script hash of the address's canonical
// output script.
func AddressScriptHash(addr btcutil.Address) (ScriptHash, error) {
	pkScript, err := txscript.PayToAddrScript(addr)
	if err != nil {
		return ScriptHash{}, fmt.Errorf("unable to build output "+
			"script for %v: %w", addr, err)
	}

	return HashScript(pkScript), nil
}

// String returns the hex encoding of the script hash.
func (h ScriptHash) String() string {
	return hex.EncodeToString(h[:])
}
