// Package auth guards the mutating palette API endpoints with HTTP
// basic auth backed by a bcrypt users file.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// User represents an API user with credentials and limits
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	RateLimitRPM int    `json:"rate_limit_rpm"` // Requests per minute, 0 = unlimited
	Enabled      bool   `json:"enabled"`
}

// UsersConfig holds all user configuration
type UsersConfig struct {
	Users []User `json:"users"`
}

// UserStore manages user authentication and per-user rate limiting
type UserStore struct {
	mu          sync.RWMutex
	users       map[string]*User
	rateLimiter *RateLimiter
}

// NewUserStore creates a new user store from a config file
func NewUserStore(configPath string) (*UserStore, error) {
	store := &UserStore{
		users:       make(map[string]*User),
		rateLimiter: NewRateLimiter(),
	}

	if err := store.LoadFromFile(configPath); err != nil {
		return nil, err
	}

	return store, nil
}

// LoadFromFile loads user configuration from a JSON file
func (s *UserStore) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read users file: %w", err)
	}

	var cfg UsersConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse users file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make(map[string]*User)
	for i := range cfg.Users {
		user := &cfg.Users[i]
		if user.Enabled {
			s.users[strings.ToLower(user.Username)] = user
			if user.RateLimitRPM > 0 {
				s.rateLimiter.SetLimit(user.Username, user.RateLimitRPM)
			}
		}
	}

	return nil
}

// Authenticate verifies a username/password pair against the stored
// bcrypt hash. Disabled or unknown users fail the same way as a bad
// password.
func (s *UserStore) Authenticate(username, password string) bool {
	s.mu.RLock()
	user, ok := s.users[strings.ToLower(username)]
	s.mu.RUnlock()

	if !ok {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Allow reports whether the user is within their rate limit. Users
// without a configured limit are always allowed.
func (s *UserStore) Allow(username string) bool {
	return s.rateLimiter.Allow(username)
}

// UserCount returns the number of enabled users
func (s *UserStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
