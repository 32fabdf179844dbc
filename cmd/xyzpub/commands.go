package main

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/bwt-dev/xyzpub"
	"github.com/urfave/cli"
)

// networkParams maps a network name to its chain parameters.
func networkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}

var decodeCommand = cli.Command{
	Name:      "decode",
	Usage:     "Decode a SLIP-132 extended public key.",
	ArgsUsage: "extended_key",
	Description: `
	Decode an xpub/ypub/zpub (or testnet tpub/upub/vpub) and print the
	network and script type its version prefix declares, along with the
	parsed key fields.

	Note that the printed serialization uses the network's plain p2pkh
	prefix regardless of the input prefix, and fingerprints derived from
	it will differ from tools that keep the original prefix.`,
	Action: decode,
}

func decode(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "decode")
	}

	key, err := xyzpub.Parse(ctx.Args().First())
	if err != nil {
		return err
	}

	pubKey, err := key.ExtendedKey.ECPubKey()
	if err != nil {
		return err
	}

	printJSON(struct {
		Network           string `json:"network"`
		ScriptType        string `json:"script_type"`
		Depth             uint8  `json:"depth"`
		ParentFingerprint uint32 `json:"parent_fingerprint"`
		ChildIndex        uint32 `json:"child_index"`
		PubKey            string `json:"pub_key"`
		NormalizedKey     string `json:"normalized_key"`
	}{
		Network:           key.Network.Name,
		ScriptType:        key.ScriptType.String(),
		Depth:             key.ExtendedKey.Depth(),
		ParentFingerprint: key.ExtendedKey.ParentFingerprint(),
		ChildIndex:        key.ExtendedKey.ChildIndex(),
		PubKey: hex.EncodeToString(
			pubKey.SerializeCompressed(),
		),
		NormalizedKey: key.ExtendedKey.String(),
	})

	return nil
}

var convertCommand = cli.Command{
	Name:      "convert",
	Usage:     "Re-encode an extended public key under another prefix.",
	ArgsUsage: "extended_key script_type",
	Description: `
	Re-encode the key under the SLIP-132 prefix declaring the given
	script type (p2pkh, p2wpkh or p2sh-p2wpkh) on the key's network.`,
	Action: convert,
}

func convert(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowCommandHelp(ctx, "convert")
	}

	key, err := xyzpub.Parse(ctx.Args().First())
	if err != nil {
		return err
	}

	scriptType, err := xyzpub.ParseScriptType(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	converted, err := key.Convert(scriptType)
	if err != nil {
		return err
	}

	printJSON(struct {
		ScriptType string `json:"script_type"`
		Key        string `json:"key"`
	}{
		ScriptType: scriptType.String(),
		Key:        converted,
	})

	return nil
}

var scriptHashCommand = cli.Command{
	Name:      "scripthash",
	Usage:     "Compute the script hash of an address.",
	ArgsUsage: "address",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "net",
			Usage: "the network the address belongs to",
			Value: "mainnet",
		},
	},
	Action: scriptHash,
}

func scriptHash(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "scripthash")
	}

	params, err := networkParams(ctx.String("net"))
	if err != nil {
		return err
	}

	addr, err := btcutil.DecodeAddress(ctx.Args().First(), params)
	if err != nil {
		return err
	}
	if !addr.IsForNet(params) {
		return fmt.Errorf("address %v is not valid for %v",
			addr, params.Name)
	}

	hash, err := xyzpub.AddressScriptHash(addr)
	if err != nil {
		return err
	}

	printJSON(struct {
		Address    string `json:"address"`
		ScriptHash string `json:"script_hash"`
	}{
		Address:    addr.EncodeAddress(),
		ScriptHash: hash.String(),
	})

	return nil
}

var matchesNetworkCommand = cli.Command{
	Name:      "matchesnetwork",
	Usage:     "Check whether a key is usable on a target network.",
	ArgsUsage: "extended_key network",
	Description: `
	Check whether the network declared by the key's version prefix is
	compatible with the target network (mainnet, testnet or regtest).
	Testnet keys are accepted for regtest targets since regtest shares
	testnet's encoding prefixes.`,
	Action: matchesNetwork,
}

func matchesNetwork(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowCommandHelp(ctx, "matchesnetwork")
	}

	key, err := xyzpub.Parse(ctx.Args().First())
	if err != nil {
		return err
	}

	params, err := networkParams(ctx.Args().Get(1))
	if err != nil {
		return err
	}

	printJSON(struct {
		KeyNetwork string `json:"key_network"`
		Target     string `json:"target_network"`
		Matches    bool   `json:"matches"`
	}{
		KeyNetwork: key.Network.Name,
		Target:     params.Name,
		Matches:    key.MatchesNetwork(params),
	})

	return nil
}
