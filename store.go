package stockgame

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// startingBalance is the cash every new player begins the game with.
var startingBalance = M(10000.0, DefaultCurrency)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 6

// emailRe is deliberately permissive: something before the @, something
// after, and a domain-like suffix.
var emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Store persists the whole account collection to a single JSONL file, one
// record per account. Every mutation path of the game funnels through Save,
// so swapping in a real transactional store later only touches this type.
type Store struct {
	path string
	cost int // bcrypt cost, lowered in tests
}

// NewStore returns a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path, cost: bcrypt.DefaultCost}
}

// Load reads the persisted account collection. A store file that does not
// exist yet is an empty collection, not an error.
func (s *Store) Load() (*Accounts, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewAccounts(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open account store %q: %w", s.path, err)
	}
	defer f.Close()

	accounts, err := DecodeAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("account store %q: %w", s.path, err)
	}
	return accounts, nil
}

// Save serializes the entire collection, replacing the prior persisted state.
// It writes to a temporary file in the same directory and renames it over the
// store, so a crash mid-write never leaves a half-written store behind.
func (s *Store) Save(accounts *Accounts) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create store directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".accounts-*.jsonl")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := EncodeAccounts(tmp, accounts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace account store %q: %w", s.path, err)
	}
	return nil
}

// CreateAccount registers a new player: it validates the email and password,
// assigns a unique 4-digit user id, hashes the password, seeds the starting
// balance, inserts the account into the collection and persists it.
func (s *Store) CreateAccount(accounts *Accounts, email, password string) (*Account, error) {
	if !emailRe.MatchString(email) {
		return nil, fmt.Errorf("create account %q: %w", email, ErrInvalidEmail)
	}
	if accounts.Has(email) {
		return nil, fmt.Errorf("create account %q: %w", email, ErrDuplicateEmail)
	}
	if len([]rune(password)) < minPasswordLen {
		return nil, fmt.Errorf("create account %q: %w: want at least %d characters", email, ErrWeakPassword, minPasswordLen)
	}

	hash, err := hashPassword(password, s.cost)
	if err != nil {
		return nil, fmt.Errorf("create account %q: %w", email, err)
	}

	acc := &Account{
		Email:        email,
		UserID:       s.newUserID(accounts),
		PasswordHash: hash,
		Balance:      startingBalance,
		Holdings:     make(map[string]int64),
		History:      make([]Trade, 0),
	}
	if err := accounts.Add(acc); err != nil {
		return nil, err
	}
	if err := s.Save(accounts); err != nil {
		accounts.remove(acc.Email)
		return nil, err
	}
	return acc, nil
}

// Authenticate looks up the account by email and verifies the password
// against the stored digest.
func (s *Store) Authenticate(accounts *Accounts, email, password string) (*Account, error) {
	acc := accounts.Get(email)
	if acc == nil {
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrUnknownAccount)
	}
	if !verifyPassword(password, acc.PasswordHash) {
		return nil, fmt.Errorf("authenticate %q: %w", email, ErrBadCredentials)
	}
	return acc, nil
}

// newUserID draws 4-digit ids by rejection sampling until one is free.
func (s *Store) newUserID(accounts *Accounts) string {
	for {
		id := fmt.Sprintf("%d", 1000+rand.IntN(9000))
		if !accounts.hasUserID(id) {
			return id
		}
	}
}

// hashPassword derives the stored credential digest from a raw password.
func hashPassword(password string, cost int) (string, error) {
	// bcrypt rejects inputs over 72 bytes, truncate like web portals do.
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(passwordBytes, cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword reports whether the raw password matches the stored digest.
func verifyPassword(password, digest string) bool {
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), passwordBytes) == nil
}
