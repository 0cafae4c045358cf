// Command token issues an API bearer token for one of the configured
// participants.
//
//	token -id 1001 -handle alice
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"wager-tracker/config"
	"wager-tracker/internal/core/domain"
	"wager-tracker/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	var (
		id     int64
		handle string
		expiry time.Duration
	)
	flag.Int64Var(&id, "id", 0, "participant id (Telegram user id)")
	flag.StringVar(&handle, "handle", "", "participant handle")
	flag.DurationVar(&expiry, "expiry", 0, "token lifetime (default: jwt.expiry from config)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fail("failed to load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		fail("jwt.secret must be set")
	}
	if id <= 0 || handle == "" {
		flag.Usage()
		os.Exit(2)
	}
	if !cfg.Participants.Roster().IsRegistered(handle) {
		fail("%q is not a configured participant", handle)
	}
	if expiry <= 0 {
		expiry = cfg.JWT.Expiry
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, expiry, cfg.JWT.Issuer)
	token, expiresAt, err := tokenSvc.Generate(domain.Actor{ID: id, Handle: handle})
	if err != nil {
		fail("failed to sign token: %v", err)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.UTC().Format(time.RFC3339))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
