package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[xyzpub] %v\n", err)
	os.Exit(1)
}

func printJSON(resp interface{}) {
	b, err := json.MarshalIndent(resp, "", "    ")
	if err != nil {
		fatal(err)
	}

	fmt.Println(string(b))
}

func main() {
	app := cli.NewApp()
	app.Name = "xyzpub"
	app.Version = "0.1.0"
	app.Usage = "inspect and convert SLIP-132 extended public keys"
	app.Commands = []cli.Command{
		decodeCommand,
		convertCommand,
		scriptHashCommand,
		matchesNetworkCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
