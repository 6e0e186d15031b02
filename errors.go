package stockgame

import "errors"

// Every failure mode of the game ledger maps to one of these sentinels so
// callers can branch with errors.Is regardless of the wrapping context.
var (
	// ErrInvalidEmail reports an account identity that is not a plausible email address.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrDuplicateEmail reports an attempt to register an email twice.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
	// ErrWeakPassword reports a password below the minimum length.
	ErrWeakPassword = errors.New("password is too weak")
	// ErrUnknownAccount reports a lookup for an email with no account.
	ErrUnknownAccount = errors.New("no account found with this email")
	// ErrBadCredentials reports a failed password verification.
	ErrBadCredentials = errors.New("incorrect password")

	// ErrInvalidQuantity reports a trade for zero or negative shares.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInsufficientFunds reports a buy whose cost exceeds the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInsufficientShares reports a sell for more shares than are held.
	ErrInsufficientShares = errors.New("insufficient shares")
	// ErrUnknownHolding reports a sell of a ticker not in the portfolio.
	ErrUnknownHolding = errors.New("ticker not held")

	// ErrPriceUnavailable reports that the market price of a ticker could not
	// be resolved. Transient by nature; retrying is the caller's call.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrCorruptStore reports persisted account data that cannot be decoded
	// back into a valid account collection. A store that fails to load this
	// way must not be written to.
	ErrCorruptStore = errors.New("corrupt account store")
)
