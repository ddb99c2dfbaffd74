// Command catalogctl drives a client session against the catalog API from
// the shell. Session keys persist in a JSON file, or in Redis with -redis.
//
//	catalogctl [flags] login <username> <password>
//	catalogctl [flags] register <username> <password>
//	catalogctl [flags] logout
//	catalogctl [flags] whoami
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/animal-catalog/pkg/session"
)

func main() {
	home, _ := os.UserHomeDir()
	server := flag.String("server", envOr("CATALOG_SERVER", "http://localhost:3000"), "catalog API base URL")
	file := flag.String("session-file", filepath.Join(home, ".catalogctl", "session.json"), "session file")
	redisAddr := flag.String("redis", os.Getenv("CATALOG_SESSION_REDIS"), "store the session in Redis at this address instead of a file")
	namespace := flag.String("namespace", envOr("USER", "default"), "Redis session namespace")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	verbose := flag.Bool("v", false, "log session warnings to stderr")
	flag.Usage = usage
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if l, err := cfg.Build(); err == nil {
			logger = l
		}
	}
	defer logger.Sync() //nolint:errcheck

	var storage session.Storage = session.NewFileStorage(*file)
	if *redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: *redisAddr})
		defer client.Close()
		storage = session.NewRedisStorage(client, *namespace)
	}

	var landed string
	a := session.New(session.Options{
		API:       session.NewAPIClient(*server).WithTimeout(*timeout),
		Storage:   storage,
		Navigator: session.NavigatorFunc(func(path string) { landed = path }),
		Logger:    logger,
	})

	if err := run(a, flag.Args(), &landed); err != nil {
		fmt.Fprintln(os.Stderr, "catalogctl:", err)
		os.Exit(1)
	}
}

func run(a *session.Auth, args []string, landed *string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}
	ctx := context.Background()

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		if err := a.Login(ctx, args[1], args[2]); err != nil {
			return err
		}
		u := a.User().Get()
		fmt.Printf("logged in as %s (%s), landing on %s\n", u.Username, u.Role, *landed)
	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: register <username> <password>")
		}
		if err := a.Register(ctx, args[1], args[2]); err != nil {
			return err
		}
		fmt.Printf("registered %s; run login to start a session\n", args[1])
	case "logout":
		if err := a.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
	case "whoami":
		if !session.AuthGuard(a, session.NavigatorFunc(func(string) {})) {
			fmt.Println("not logged in")
			return nil
		}
		u := a.User().Get()
		fmt.Printf("%s (%s) id=%s admin=%t legacy-customer=%t\n",
			u.Username, u.Role, u.ID, a.IsAdmin(), a.Customer().IsLoggedIn())
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: catalogctl [flags] login|register|logout|whoami [args]\n")
	flag.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
