package stockgame

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeAccounts decodes an account collection from a stream of JSONL data,
// one account record per line. Every record is validated on the way in;
// any malformed or inconsistent record fails the whole load with
// ErrCorruptStore, because account integrity can no longer be guaranteed.
func DecodeAccounts(r io.Reader) (*Accounts, error) {
	accounts := NewAccounts()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		acc := new(Account)
		if err := json.Unmarshal(lineBytes, acc); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptStore, line, err)
		}
		if err := acc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptStore, line, err)
		}
		if err := accounts.Add(acc); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorruptStore, line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading account store: %w", err)
	}
	return accounts, nil
}

// EncodeAccount marshals a single account to JSON and writes it to the
// writer, followed by a newline, in JSONL format.
func EncodeAccount(w io.Writer, acc *Account) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(acc)
	if err != nil {
		return fmt.Errorf("failed to marshal account %q: %w", acc.Email, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write account %q: %w", acc.Email, err)
	}
	return nil
}

// EncodeAccounts persists the whole collection to an io.Writer in JSONL
// format, in insertion order, so that a later load observes the same order.
func EncodeAccounts(w io.Writer, accounts *Accounts) error {
	decimal.MarshalJSONWithoutQuotes = true
	for acc := range accounts.All() {
		if err := EncodeAccount(w, acc); err != nil {
			return err
		}
	}
	return nil
}
