// Package main provides a CLI tool for generating learner/backend keypairs
// and dev bearer tokens for the academy relay. Tokens use the dev signing key
// and will NOT work in production.
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "academy/internal/jwt_token"
	"academy/pkg/domain"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuer   = "academy-relay"
	defaultTokenTTL = 15 * time.Minute
)

type keypairOutput struct {
	Identity   string `json:"identity"`
	PrivateKey string `json:"private_key"`
}

type tokenOutput struct {
	Token     string `json:"token"`
	Identity  string `json:"identity"`
	ExpiresIn string `json:"expires_in"`
	Usage     string `json:"usage"`
}

func main() {
	identityCmd := flag.NewFlagSet("identity", flag.ExitOnError)
	identityJSON := identityCmd.Bool("json", false, "Output as JSON")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenIdentity := tokenCmd.String("identity", "", "Hex identity to embed. Generated if empty.")
	tokenTTL := tokenCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	tokenIssuer := tokenCmd.String("issuer", defaultIssuer, "Token issuer")
	tokenJSON := tokenCmd.Bool("json", false, "Output as JSON")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "identity":
		identityCmd.Parse(os.Args[2:])
		generateKeypair(*identityJSON)
	case "token":
		tokenCmd.Parse(os.Args[2:])
		generateToken(*tokenIdentity, *tokenIssuer, *tokenTTL, *tokenJSON)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func generateKeypair(asJSON bool) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate keypair: %v\n", err)
		os.Exit(1)
	}

	out := keypairOutput{
		Identity:   hex.EncodeToString(pub),
		PrivateKey: hex.EncodeToString(priv.Seed()),
	}
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(out)
		return
	}
	fmt.Printf("identity:    %s\n", out.Identity)
	fmt.Printf("private key: %s\n", out.PrivateKey)
}

func generateToken(identityHex, issuer string, ttl time.Duration, asJSON bool) {
	if identityHex == "" {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate keypair: %v\n", err)
			os.Exit(1)
		}
		identityHex = hex.EncodeToString(pub)
	}

	identity, err := domain.ParseIdentity(identityHex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid identity: %v\n", err)
		os.Exit(1)
	}

	svc := jwttoken.New(devSigningKey, issuer, ttl)
	token, err := svc.GenerateToken(identity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}

	out := tokenOutput{
		Token:     token,
		Identity:  identity.String(),
		ExpiresIn: ttl.String(),
		Usage:     fmt.Sprintf("curl -H 'Authorization: Bearer %s' http://localhost:8080/v1/config", token),
	}
	if asJSON {
		json.NewEncoder(os.Stdout).Encode(out)
		return
	}
	fmt.Printf("token:      %s\n", out.Token)
	fmt.Printf("identity:   %s\n", out.Identity)
	fmt.Printf("expires in: %s\n", out.ExpiresIn)
	fmt.Printf("\n%s\n", out.Usage)
}

func printUsage() {
	fmt.Println(`keygen - academy dev key and token generator

Usage:
  keygen identity [-json]
      Generate an ed25519 keypair; the public key is the ledger identity.

  keygen token [-identity <hex>] [-issuer <iss>] [-ttl <dur>] [-json]
      Mint a dev bearer token for the relay.

Examples:
  keygen identity
  keygen token -identity 4f2a... -ttl 1h`)
}
