// Command devtoken prints a bearer token for a local account, signed with JWT_SECRET.
//
//	go run ./cmd/devtoken -account acc-1 -email owner@example.com
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"eventmanagement/config"
	"eventmanagement/internal/adapters/auth"
	"eventmanagement/internal/domain"
)

func main() {
	accountID := flag.String("account", "", "account ID (token subject)")
	email := flag.String("email", "", "account contact email")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if cfg.IsProduction() {
		slog.Error("refusing to mint tokens in production")
		os.Exit(1)
	}
	if *accountID == "" {
		slog.Error("-account is required")
		os.Exit(2)
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret, *ttl).Issue(domain.Principal{AccountID: *accountID, Email: *email})
	if err != nil {
		slog.Error("failed to issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
