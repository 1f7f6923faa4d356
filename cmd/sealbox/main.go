// Command sealbox is a small helper for working with sealbox envelopes
// and keys from the shell. Keys and nonces are hex; envelopes and
// signatures are URL-safe base64.
//
// SEALBOX_KEY and SEALBOX_NONCE are read from the environment, with
// optional .env file support.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	sealbox "github.com/sealbox/sealbox-go"
	"github.com/sealbox/sealbox-go/internal/crypto"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: sealbox <keygen|pubkey|seal|open|exchange|random> [args]")
	}

	// .env is optional; the environment wins when both are set.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "keygen":
		keygen()
	case "pubkey":
		if len(os.Args) < 3 {
			fatal("usage: sealbox pubkey <secret-key-hex>")
		}
		pubkey(os.Args[2])
	case "seal":
		seal()
	case "open":
		openEnvelope(os.Args[2:])
	case "exchange":
		if len(os.Args) < 4 {
			fatal("usage: sealbox exchange <my-secret-key-hex> <their-public-key-hex>")
		}
		exchange(os.Args[2], os.Args[3])
	case "random":
		if len(os.Args) < 3 {
			fatal("usage: sealbox random <n>")
		}
		random(os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func keygen() {
	publicKey, secretKey, err := sealbox.GenerateKeypair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}

	fmt.Printf("public: %s\n", crypto.ToHex(publicKey))
	fmt.Printf("secret: %s\n", crypto.ToHex(secretKey))
}

func pubkey(secretHex string) {
	secretKey, err := crypto.FromHex(secretHex)
	if err != nil {
		fatal("decode secret key: %v", err)
	}

	publicKey, err := sealbox.DerivePublicKey(secretKey)
	if err != nil {
		fatal("derive public key: %v", err)
	}

	fmt.Println(crypto.ToHex(publicKey))
}

func seal() {
	key, nonce := envKeyNonce()

	plaintext, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	envelope, err := sealbox.Lock(key, nonce, plaintext, nil)
	if err != nil {
		fatal("seal: %v", err)
	}

	fmt.Println(crypto.ToBase64URL(envelope))
}

func openEnvelope(args []string) {
	if len(args) < 1 {
		fatal("usage: sealbox open <envelope-base64> [offset]")
	}

	key, nonce := envKeyNonce()

	envelope, err := crypto.FromBase64URL(args[0])
	if err != nil {
		fatal("decode envelope: %v", err)
	}

	offset := 0
	if len(args) > 1 {
		offset, err = strconv.Atoi(args[1])
		if err != nil {
			fatal("parse offset: %v", err)
		}
	}

	plaintext, err := sealbox.Unlock(key, nonce, envelope, offset)
	if err != nil {
		fatal("open: %v", err)
	}

	os.Stdout.Write(plaintext)
}

func exchange(secretHex, publicHex string) {
	secretKey, err := crypto.FromHex(secretHex)
	if err != nil {
		fatal("decode secret key: %v", err)
	}

	publicKey, err := crypto.FromHex(publicHex)
	if err != nil {
		fatal("decode public key: %v", err)
	}

	sessionKey, err := sealbox.DeriveSessionKey(secretKey, publicKey)
	if err != nil {
		fatal("derive session key: %v", err)
	}

	fmt.Println(crypto.ToHex(sessionKey))
}

func random(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fatal("parse count: %v", err)
	}

	buf, err := sealbox.GetRandomBytes(n)
	if err != nil {
		fatal("random: %v", err)
	}

	fmt.Println(crypto.ToHex(buf))
}

func envKeyNonce() (key, nonce []byte) {
	key, err := crypto.FromHex(os.Getenv("SEALBOX_KEY"))
	if err != nil || len(key) != sealbox.KeySize {
		fatal("SEALBOX_KEY must be %d hex-encoded bytes", sealbox.KeySize)
	}

	nonce, err = crypto.FromHex(os.Getenv("SEALBOX_NONCE"))
	if err != nil || len(nonce) != sealbox.NonceSize {
		fatal("SEALBOX_NONCE must be %d hex-encoded bytes", sealbox.NonceSize)
	}

	return key, nonce
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
