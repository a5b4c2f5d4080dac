package main

import (
	"context"
	"flag"
	"fmt"
	logslog "log/slog"
	"os"
	"strconv"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/auth"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs"
	"github.com/JulianoL13/identity-verify-sdk/internal/common/logs/slog"
	"github.com/JulianoL13/identity-verify-sdk/internal/identity"
	"github.com/joho/godotenv"
)

type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Endpoint: getEnv("IDV_ENDPOINT", "http://localhost:8080/graphql"),
		Token:    getEnv("IDV_TOKEN", ""),
		Timeout:  time.Duration(getEnvInt("IDV_TIMEOUT_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := loadConfig()
	logger := slog.New(logslog.LevelInfo)

	provider := auth.NewStatic(cfg.Token)
	client, err := identity.New(identity.Config{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.Timeout,
	}, provider, logger)
	if err != nil {
		logger.Error("failed to build client", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "countries":
		countries, err := client.ListSupportedCountries(ctx)
		exitOn(logger, err)
		for _, c := range countries {
			fmt.Println(c)
		}
	case "verify":
		runVerify(ctx, client, logger, os.Args[2:])
	case "check":
		runCheck(ctx, client, logger, os.Args[2:])
	case "reset":
		exitOn(logger, client.Reset(ctx))
		fmt.Println("cache cleared")
	default:
		usage()
		os.Exit(2)
	}
}

func runVerify(ctx context.Context, client *identity.Client, logger logs.Logger, args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	in := identity.VerifyInput{}
	fs.StringVar(&in.FirstName, "first-name", "", "first name (required)")
	fs.StringVar(&in.LastName, "last-name", "", "last name (required)")
	fs.StringVar(&in.Address, "address", "", "street address (required)")
	fs.StringVar(&in.City, "city", "", "city")
	fs.StringVar(&in.State, "state", "", "state or province")
	fs.StringVar(&in.PostalCode, "postal-code", "", "postal code (required)")
	fs.StringVar(&in.Country, "country", "", "3-letter ISO country code (required)")
	fs.StringVar(&in.DateOfBirth, "date-of-birth", "", "yyyy-MM-dd (required)")
	fs.Parse(args)

	vi, err := client.VerifyIdentity(ctx, in)
	exitOn(logger, err)
	printIdentity(vi)
}

func runCheck(ctx context.Context, client *identity.Client, logger logs.Logger, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cached := fs.Bool("cached", false, "read from the local cache only")
	fs.Parse(args)

	option := identity.RemoteOnly
	if *cached {
		option = identity.CacheOnly
	}

	vi, err := client.CheckIdentityVerification(ctx, option)
	exitOn(logger, err)
	printIdentity(vi)
}

func printIdentity(vi *identity.VerifiedIdentity) {
	fmt.Printf("owner:             %s\n", vi.Owner)
	fmt.Printf("verified:          %t\n", vi.Verified)
	if vi.VerifiedAt != nil {
		fmt.Printf("verified at:       %s\n", vi.VerifiedAt.Format(time.RFC3339))
	}
	fmt.Printf("method:            %s\n", vi.Method)
	fmt.Printf("can attempt again: %t\n", vi.CanAttemptAgain)
	if vi.IDScanURL != "" {
		fmt.Printf("id scan url:       %s\n", vi.IDScanURL)
	}
}

func exitOn(logger logs.Logger, err error) {
	if err != nil {
		logger.Error("operation failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: verifyctl <countries|verify|check|reset> [flags]")
}
