package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mw "credopass/internal/http/middleware"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken signs a role token the Auth middleware accepts.
func makeToken(secret, role string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})

	return t.SignedString([]byte(secret))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	adminSecret := envOr("ADMIN_JWT_SECRET", "admin_secret_key")
	staffSecret := envOr("STAFF_JWT_SECRET", "staff_secret_key")

	adminToken, err := makeToken(adminSecret, mw.RoleAdmin, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign admin token:", err)
		os.Exit(1)
	}
	staffToken, err := makeToken(staffSecret, mw.RoleStaff, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign staff token:", err)
		os.Exit(1)
	}

	fmt.Println("ADMIN_TOKEN=" + adminToken)
	fmt.Println("STAFF_TOKEN=" + staffToken)
}
