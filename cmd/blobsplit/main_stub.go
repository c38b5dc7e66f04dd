//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of blobsplit requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/blobsplit` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For headless play use `go run ./cmd/blobsplit-sim`.")
	os.Exit(2)
}
