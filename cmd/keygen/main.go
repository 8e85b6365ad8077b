// Command keygen generates an Ed25519 key pair in the hex form the webhook
// uses, and can sign a payload for exercising an endpoint by hand.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "sign" {
		sign(os.Args[2:])
		return
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generating key pair: %v", err)
	}

	fmt.Printf("public key:  %s\n", hex.EncodeToString(pub))
	fmt.Printf("private key: %s\n", hex.EncodeToString(priv))
	fmt.Println()
	fmt.Println("Export the public key for the webhook:")
	fmt.Printf("  COMPOSURE_DISCORD__PUBLIC_KEY=%s\n", hex.EncodeToString(pub))
}

// sign reads the body from stdin and prints the signature headers for the
// given private key and timestamp.
func sign(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: keygen sign <private-key-hex> <timestamp> < body.json")
		os.Exit(1)
	}

	raw, err := hex.DecodeString(args[0])
	if err != nil || len(raw) != ed25519.PrivateKeySize {
		log.Fatal("private key must be a hex encoded 64 byte Ed25519 key")
	}
	timestamp := args[1]

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("reading body: %v", err)
	}

	sig := ed25519.Sign(ed25519.PrivateKey(raw), append([]byte(timestamp), body...))
	fmt.Printf("X-Signature-Ed25519: %s\n", hex.EncodeToString(sig))
	fmt.Printf("X-Signature-Timestamp: %s\n", timestamp)
}
