// Command verify is the player-facing half of the commit-reveal protocol
// (spec §6): given a server seed a game already revealed and the hash
// that was published before the game ran, it recomputes SHA-256 and
// reports whether they match.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/proofplay/gridiron/internal/rng"
)

func main() {
	serverSeed := flag.String("server-seed", "", "revealed server seed, hex-encoded")
	wantHash := flag.String("hash", "", "published server seed hash, hex-encoded")
	flag.Parse()

	if *serverSeed == "" || *wantHash == "" {
		fmt.Fprintln(os.Stderr, "usage: verify -server-seed <hex> -hash <hex>")
		os.Exit(2)
	}

	got := rng.HashServerSeed(*serverSeed)
	if rng.VerifyServerSeed(*serverSeed, *wantHash) {
		fmt.Printf("PASS: sha256(%s) = %s\n", *serverSeed, got)
		return
	}

	fmt.Printf("FAIL: sha256(%s) = %s, expected %s\n", *serverSeed, got, *wantHash)
	os.Exit(1)
}
