// Command client is a smoke check against a running travel-diary server:
// it registers (or reuses) an account, logs in and lists the diary entries.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-travel-diary/internal/adapter"
	"github.com/MKhiriev/go-travel-diary/internal/logger"
	"github.com/MKhiriev/go-travel-diary/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	address := flag.String("a", "localhost:3004", "server address host:port or base URL")
	username := flag.String("u", "", "username")
	password := flag.String("p", "", "password")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("travel-diary-client")
	if *username == "" || *password == "" {
		log.Fatal().Msg("username (-u) and password (-p) are required")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{HTTPAddress: *address, RequestTimeout: *timeout}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = run(context.Background(), serverAdapter, models.User{Username: *username, Password: *password}, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.User, log *logger.Logger) error {
	greeting, err := serverAdapter.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	log.Info().Str("greeting", greeting).Msg("server is up")

	if err = serverAdapter.Register(ctx, user); err != nil && !errors.Is(err, adapter.ErrConflict) {
		return fmt.Errorf("register: %w", err)
	}

	if _, err = serverAdapter.Login(ctx, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	entries, err := serverAdapter.ListDiaryEntries(ctx)
	if err != nil {
		return fmt.Errorf("list diary entries: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
