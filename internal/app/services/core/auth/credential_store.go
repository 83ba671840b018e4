package auth

import (
	"docplanner-gateway/internal/app/config"
	"docplanner-gateway/internal/app/contracts"
	"docplanner-gateway/internal/pkg/utils"
)

type credential struct {
	username string
	password string
	hashed   bool
}

// credentialStore is built once at startup and never mutated afterwards,
// so concurrent reads need no locking.
type credentialStore struct {
	entries []credential
}

func NewCredentialStore(credentials []config.AppCredential) contracts.CredentialStore {
	entries := make([]credential, 0, len(credentials))
	for _, c := range credentials {
		entries = append(entries, credential{
			username: c.Username,
			password: c.Password,
			hashed:   utils.IsBcryptHash(c.Password),
		})
	}
	return &credentialStore{entries: entries}
}

// Contains reports whether the exact, case-sensitive pair is configured.
func (s *credentialStore) Contains(username, password string) bool {
	for _, entry := range s.entries {
		if !utils.ConstantTimeEquals(entry.username, username) {
			continue
		}
		if entry.hashed {
			if utils.CheckPasswordHash(password, entry.password) {
				return true
			}
			continue
		}
		if utils.ConstantTimeEquals(entry.password, password) {
			return true
		}
	}
	return false
}

func (s *credentialStore) Len() int {
	return len(s.entries)
}
