package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/1broseidon/nativewin/internal/input"
	"github.com/1broseidon/nativewin/internal/nativewindow"
	"github.com/1broseidon/nativewin/internal/platform"
)

func runKeys(args []string) int {
	fs := flag.NewFlagSet("keys", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	unmapped := fs.Bool("unmapped", false, "Only list codes without a generic key")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: nativewin keys [--unmapped]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print how each native key code translates to a generic key.")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNATIVE\tGENERIC")
	for _, code := range platform.KeyCodes() {
		key, err := nativewindow.TranslateKey(code)
		generic := key.String()
		switch {
		case err != nil:
			generic = "unsupported"
		case *unmapped && key != input.KeyUnknown:
			continue
		}
		fmt.Fprintf(tw, "%d\t%v\t%s\n", int(code), code, generic)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
