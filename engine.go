package stockgame

import (
	"fmt"
	"time"
)

// Engine applies buy and sell orders to an account as atomic in-process state
// transitions. Either the whole trade happens (balance, holdings, history and
// the persisted store all reflect it before the call returns) or none of it
// does.
//
// Prices are always resolved at execution time through the Quoter; repeated
// identical calls may legitimately settle at different prices because the
// market moves. That is the game, not a bug.
type Engine struct {
	store  *Store
	quotes Quoter
	now    func() time.Time // test seam
}

// NewEngine returns an engine trading through quotes and persisting through store.
func NewEngine(store *Store, quotes Quoter) *Engine {
	return &Engine{store: store, quotes: quotes, now: time.Now}
}

// Buy purchases quantity shares of ticker at the current market price,
// debiting the account's cash balance. The executed trade is returned.
func (e *Engine) Buy(accounts *Accounts, acc *Account, ticker string, quantity int64) (Trade, error) {
	if quantity <= 0 {
		return Trade{}, fmt.Errorf("buy %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	price, err := e.quotes.CurrentPrice(ticker)
	if err != nil {
		return Trade{}, fmt.Errorf("buy %s: %w", ticker, err)
	}
	cost := price.MulInt(quantity)
	if acc.Balance.LessThan(cost) {
		return Trade{}, fmt.Errorf("buy %d %s for %s with balance %s: %w",
			quantity, ticker, cost, acc.Balance, ErrInsufficientFunds)
	}

	trade := Trade{Type: TradeBuy, Ticker: ticker, Quantity: quantity, Price: price, Time: e.now()}
	acc.Balance = acc.Balance.Sub(cost)
	acc.Holdings[ticker] += quantity
	acc.History = append(acc.History, trade)

	if err := e.commit(accounts, acc, trade); err != nil {
		return Trade{}, err
	}
	return trade, nil
}

// Sell disposes of quantity shares of ticker at the current market price,
// crediting the account's cash balance. A position sold down to zero is
// removed from the holdings entirely.
//
// Holdings preconditions are checked before the quote, so a sell that cannot
// possibly settle never triggers a market-data call.
func (e *Engine) Sell(accounts *Accounts, acc *Account, ticker string, quantity int64) (Trade, error) {
	if quantity <= 0 {
		return Trade{}, fmt.Errorf("sell %d %s: %w", quantity, ticker, ErrInvalidQuantity)
	}
	held, ok := acc.Holdings[ticker]
	if !ok {
		return Trade{}, fmt.Errorf("sell %s: %w", ticker, ErrUnknownHolding)
	}
	if held < quantity {
		return Trade{}, fmt.Errorf("sell %d %s holding only %d: %w", quantity, ticker, held, ErrInsufficientShares)
	}
	price, err := e.quotes.CurrentPrice(ticker)
	if err != nil {
		return Trade{}, fmt.Errorf("sell %s: %w", ticker, err)
	}

	trade := Trade{Type: TradeSell, Ticker: ticker, Quantity: quantity, Price: price, Time: e.now()}
	acc.Balance = acc.Balance.Add(price.MulInt(quantity))
	if held == quantity {
		delete(acc.Holdings, ticker)
	} else {
		acc.Holdings[ticker] = held - quantity
	}
	acc.History = append(acc.History, trade)

	if err := e.commit(accounts, acc, trade); err != nil {
		return Trade{}, err
	}
	return trade, nil
}

// commit writes the mutated collection through to the store. If persisting
// fails the in-memory mutation is rolled back, so the account is left exactly
// as before the call.
func (e *Engine) commit(accounts *Accounts, acc *Account, trade Trade) error {
	if err := e.store.Save(accounts); err != nil {
		e.rollback(acc, trade)
		return fmt.Errorf("could not persist %s of %d %s: %w", trade.Type, trade.Quantity, trade.Ticker, err)
	}
	return nil
}

func (e *Engine) rollback(acc *Account, trade Trade) {
	acc.History = acc.History[:len(acc.History)-1]
	switch trade.Type {
	case TradeBuy:
		acc.Balance = acc.Balance.Add(trade.Amount())
		if acc.Holdings[trade.Ticker] == trade.Quantity {
			delete(acc.Holdings, trade.Ticker)
		} else {
			acc.Holdings[trade.Ticker] -= trade.Quantity
		}
	case TradeSell:
		acc.Balance = acc.Balance.Sub(trade.Amount())
		acc.Holdings[trade.Ticker] += trade.Quantity
	}
}
