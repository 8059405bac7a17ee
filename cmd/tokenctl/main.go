// Command tokenctl mints and revokes tokens for local testing of the
// create-ticket action.
//
//	tokenctl issue --sub <user-id> [--role customer]
//	tokenctl revoke --token <token>
//	tokenctl revoke --jti <id> [--ttl 24h]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"duka/internal/auth"
	"duka/internal/shared/config"
	"duka/internal/shared/database"
	"duka/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWT.Secret == "" {
		log.Fatal("AUTHJWT_SECRET_KEY is not set")
	}

	switch os.Args[1] {
	case "issue":
		issue(cfg, os.Args[2:])
	case "revoke":
		revoke(cfg, os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tokenctl issue --sub <user-id> [--role <role>] | tokenctl revoke --token <token> | --jti <id> [--ttl <d>]")
	os.Exit(2)
}

func issue(cfg *config.Config, args []string) {
	fs := pflag.NewFlagSet("issue", pflag.ExitOnError)
	sub := fs.String("sub", "", "user id placed in the sub claim")
	role := fs.String("role", "customer", "role claim")
	_ = fs.Parse(args)

	if *sub == "" {
		log.Fatal("--sub is required")
	}

	pair, err := auth.NewService(cfg.JWT, nil).GenerateTokenPair(*sub, *role)
	if err != nil {
		log.Fatalf("Failed to sign tokens: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(pair); err != nil {
		log.Fatal(err)
	}
}

func revoke(cfg *config.Config, args []string) {
	fs := pflag.NewFlagSet("revoke", pflag.ExitOnError)
	token := fs.String("token", "", "token to revoke; its jti and exp are used")
	jti := fs.String("jti", "", "token id to revoke when the token itself is not at hand")
	ttl := fs.Duration("ttl", 0, "how long the jti stays denylisted (with --jti)")
	_ = fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, expiry := *jti, *ttl
	switch {
	case *token != "":
		claims, err := auth.NewService(cfg.JWT, nil).Verify(ctx, "Bearer "+*token)
		if err != nil {
			log.Fatalf("Token rejected: %v", err)
		}
		if claims.ExpiresAt == nil {
			log.Fatal("Token has no exp claim")
		}
		id, expiry = claims.ID, time.Until(claims.ExpiresAt.Time)
	case id == "":
		log.Fatal("--token or --jti is required")
	case expiry <= 0:
		expiry = cfg.JWT.RefreshExpiresIn
	}

	cfg.JWT.DenylistEnabled = true
	db, err := database.InitDB(cfg, logger.GetDefault())
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer db.Close()

	if err := auth.NewRedisDenylist(db.Redis, cfg.JWT.DenylistPrefix).Revoke(ctx, id, expiry); err != nil {
		log.Fatalf("Failed to revoke token: %v", err)
	}
	fmt.Printf("Revoked %s for %s\n", id, expiry.Round(time.Second))
}
