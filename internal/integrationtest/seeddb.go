package integrationtest

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/pkg/dbpkg"
	"github.com/go-petr/devbank/pkg/passpkg"
	"github.com/go-petr/devbank/pkg/randompkg"
)

// SeedUser creates a random user with the given role and password.
func SeedUser(t *testing.T, db dbpkg.SQLInterface, role domain.Role, password string) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		t.Fatalf("passpkg.Hash(%q) returned error: %v", password, err)
	}

	u := domain.User{
		ID:             randompkg.ID(),
		Username:       randompkg.Owner(),
		HashedPassword: hashedPassword,
		Name:           randompkg.String(8),
		Surname:        randompkg.String(10),
		Role:           role,
		CreatedAt:      time.Now().Truncate(time.Second).UTC(),
	}

	const query = `
	INSERT INTO users (id, username, hashed_password, name, surname, role, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := db.ExecContext(context.Background(), query,
		u.ID, u.Username, u.HashedPassword, u.Name, u.Surname, u.Role, u.CreatedAt,
	); err != nil {
		t.Fatalf("SeedUser(%+v) returned error: %v", u, err)
	}

	return u
}

// SeedAccount creates a current account of the customer created at the given time.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, customerID string, balance decimal.Decimal, createdAt time.Time) domain.Account {
	t.Helper()

	number := randompkg.AccountNumber()

	a := domain.Account{
		ID:                  randompkg.ID(),
		CustomerID:          customerID,
		AccountType:         domain.AccountTypeCurrent,
		Balance:             balance,
		UniqueAccountNumber: &number,
		CreatedAt:           createdAt.Truncate(time.Second).UTC(),
	}

	const query = `
	INSERT INTO accounts (account_id, customer_id, account_type, balance, unique_account_number, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := db.ExecContext(context.Background(), query,
		a.ID, a.CustomerID, a.AccountType, a.Balance, a.UniqueAccountNumber, a.CreatedAt,
	); err != nil {
		t.Fatalf("SeedAccount(%+v) returned error: %v", a, err)
	}

	return a
}

// SeedTransfer creates a transfer between two accounts.
func SeedTransfer(
	t *testing.T,
	db dbpkg.SQLInterface,
	sender, receiver string,
	amount decimal.Decimal,
	status domain.TransferStatus,
	at time.Time,
) domain.Transfer {
	t.Helper()

	tr := domain.Transfer{
		ID:                randompkg.ID(),
		SenderAccountID:   sender,
		ReceiverAccountID: receiver,
		Amount:            amount,
		Description:       randompkg.String(12),
		Status:            status,
		TransferTime:      at.Truncate(time.Second).UTC(),
	}

	const query = `
	INSERT INTO transfers (id, sender_account_id, receiver_account_id, amount, description, status, transfer_time)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := db.ExecContext(context.Background(), query,
		tr.ID, tr.SenderAccountID, tr.ReceiverAccountID, tr.Amount, tr.Description, tr.Status, tr.TransferTime,
	); err != nil {
		t.Fatalf("SeedTransfer(%+v) returned error: %v", tr, err)
	}

	return tr
}

// SeedLoan creates a pending loan application of the customer.
func SeedLoan(t *testing.T, db dbpkg.SQLInterface, customerID string) domain.Loan {
	t.Helper()

	loan := domain.Loan{
		ID:           randompkg.ID(),
		CustomerID:   customerID,
		Amount:       randompkg.MoneyAmountBetween(1000, 50_000),
		TermInMonths: randompkg.IntBetween(6, 120),
		InterestRate: decimal.RequireFromString("4.5"),
		LoanType:     randompkg.OneOf(domain.LoanPersonal, domain.LoanVehicle, domain.LoanBusiness, domain.LoanMortgage),
		Status:       domain.LoanPending,
		CreatedAt:    time.Now().Truncate(time.Second).UTC(),
	}

	const query = `
	INSERT INTO loans (id, customer_id, amount, term_in_months, interest_rate, loan_type, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := db.ExecContext(context.Background(), query,
		loan.ID, loan.CustomerID, loan.Amount, loan.TermInMonths, loan.InterestRate, loan.LoanType, loan.Status, loan.CreatedAt,
	); err != nil {
		t.Fatalf("SeedLoan(%+v) returned error: %v", loan, err)
	}

	return loan
}

// SeedCard creates an active debit card of the user.
func SeedCard(t *testing.T, db dbpkg.SQLInterface, userID string) domain.Card {
	t.Helper()

	c := domain.Card{
		ID:             randompkg.ID(),
		UserID:         userID,
		CardNumber:     randompkg.CardNumber(),
		CardType:       domain.DebitCard,
		Status:         domain.CardActive,
		ExpirationDate: time.Now().AddDate(3, 0, 0).Truncate(time.Second).UTC(),
		CreditLimit:    decimal.Zero,
		Balance:        randompkg.MoneyAmountBetween(0, 1000),
	}

	const query = `
	INSERT INTO cards (card_id, user_id, card_number, card_type, status, expiration_date, credit_limit, balance)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := db.ExecContext(context.Background(), query,
		c.ID, c.UserID, c.CardNumber, c.CardType, c.Status, c.ExpirationDate, c.CreditLimit, c.Balance,
	); err != nil {
		t.Fatalf("SeedCard(%+v) returned error: %v", c, err)
	}

	return c
}

// SeedLogin records a login of the user at the given time.
func SeedLogin(t *testing.T, db dbpkg.SQLInterface, userID string, at time.Time) domain.LoginInfo {
	t.Helper()

	li := domain.LoginInfo{
		UserID:    userID,
		IPAddress: "10.0.0." + randompkg.String(2),
		LoginTime: at.Truncate(time.Second).UTC(),
	}

	const query = `INSERT INTO login_info (user_id, ip_address, login_time) VALUES ($1, $2, $3)`

	if _, err := db.ExecContext(context.Background(), query, li.UserID, li.IPAddress, li.LoginTime); err != nil {
		t.Fatalf("SeedLogin(%+v) returned error: %v", li, err)
	}

	return li
}
