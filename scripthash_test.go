package xyzpub

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

// TestHashScriptDeterministic asserts that identical scripts always hash to
// the same value and distinct scripts do not collide in practice.
func TestHashScriptDeterministic(t *testing.T) {
	t.Parallel()

	script := []byte{0x00, 0x14, 0xde, 0xad, 0xbe, 0xef}

	require.Equal(t, HashScript(script), HashScript(script))
	require.NotEqual(
		t, HashScript(script),
		HashScript([]byte{0x00, 0x14, 0xde, 0xad, 0xbe, 0xee}),
	)
}

// TestAddressScriptHash asserts that the hash of an address's canonical
// output script matches hashing the same script assembled by hand.
func TestAddressScriptHash(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		address     string
		buildScript func(scriptAddr []byte) []byte
	}{
		{
			name:    "p2pkh",
			address: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			buildScript: func(scriptAddr []byte) []byte {
				// OP_DUP OP_HASH160 <20 bytes>
				// OP_EQUALVERIFY OP_CHECKSIG.
				script := []byte{0x76, 0xa9, 0x14}
				script = append(script, scriptAddr...)
				return append(script, 0x88, 0xac)
			},
		},
		{
			name:    "p2wpkh",
			address: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			buildScript: func(scriptAddr []byte) []byte {
				// OP_0 <20 bytes>.
				script := []byte{0x00, 0x14}
				return append(script, scriptAddr...)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			addr, err := btcutil.DecodeAddress(
				tc.address, &chaincfg.MainNetParams,
			)
			require.NoError(t, err)

			scriptHash, err := AddressScriptHash(addr)
			require.NoError(t, err)

			expected := HashScript(
				tc.buildScript(addr.ScriptAddress()),
			)
			require.Equal(t, expected, scriptHash)
		})
	}
}

// TestScriptHashString asserts the hex rendering used as a lookup key.
func TestScriptHashString(t *testing.T) {
	t.Parallel()

	var scriptHash ScriptHash
	scriptHash[0] = 0xab
	scriptHash[ScriptHashSize-1] = 0x01

	rendered := scriptHash.String()
	require.Len(t, rendered, ScriptHashSize*2)
	require.Equal(t, "ab", rendered[:2])
	require.Equal(t, "01", rendered[len(rendered)-2:])
}
