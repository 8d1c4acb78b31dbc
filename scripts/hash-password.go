//go:build ignore

// Generates bcrypt hashes for the API users file.
//
// Usage:
//
//	go run scripts/hash-password.go            # prompt on stdin
//	go run scripts/hash-password.go <password> # hash the argument
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) > 1 {
		emit(os.Args[1])
		return
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Password to hash: ")
	password, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}
	emit(strings.TrimSpace(password))
}

func emit(password string) {
	if password == "" {
		fmt.Fprintln(os.Stderr, "empty password")
		os.Exit(1)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash error:", err)
		os.Exit(1)
	}
	fmt.Printf(`{"username": "...", "password_hash": %q, "rate_limit_rpm": 60, "enabled": true}%s`, string(hash), "\n")
}
