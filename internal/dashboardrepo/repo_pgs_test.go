//go:build integration

package dashboardrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/go-petr/devbank/internal/dashboardrepo"
	"github.com/go-petr/devbank/internal/domain"
	"github.com/go-petr/devbank/internal/integrationtest"
)

var dbSource string

func TestMain(m *testing.M) {
	ctx := context.Background()

	ctr, source, err := integrationtest.StartPostgres(ctx)
	if err != nil {
		log.Fatal("cannot start postgres:", err)
	}

	dbSource = source

	code := m.Run()

	if err := ctr.Terminate(ctx); err != nil {
		log.Println("cannot terminate postgres:", err)
	}

	os.Exit(code)
}

func TestCountAndGroup(t *testing.T) {
	db := integrationtest.SetupDB(t, dbSource)

	admin := integrationtest.SeedUser(t, db, domain.RoleAdmin, "secret")
	customer := integrationtest.SeedUser(t, db, domain.RoleCustomer, "secret")
	integrationtest.SeedUser(t, db, domain.RoleCustomer, "secret")

	a1 := integrationtest.SeedAccount(t, db, customer.ID, decimal.RequireFromString("10"), time.Now())
	a2 := integrationtest.SeedAccount(t, db, customer.ID, decimal.RequireFromString("20"), time.Now())
	integrationtest.SeedTransfer(t, db, a1.ID, a2.ID, decimal.RequireFromString("1"), domain.TransferPending, time.Now())
	integrationtest.SeedTransfer(t, db, a2.ID, a1.ID, decimal.RequireFromString("2"), domain.TransferCompleted, time.Now())
	integrationtest.SeedTransfer(t, db, a2.ID, a1.ID, decimal.RequireFromString("3"), domain.TransferCompleted, time.Now())
	integrationtest.SeedLogin(t, db, admin.ID, time.Now())

	repo := dashboardrepo.NewRepoPGS(db)
	ctx := context.Background()

	counts := map[domain.Collection]int64{
		domain.Users:     3,
		domain.Accounts:  2,
		domain.Transfers: 3,
		domain.Logins:    1,
	}

	for table, want := range counts {
		got, err := repo.Count(ctx, table)
		if err != nil {
			t.Fatalf("repo.Count(ctx, %v) returned error: %v", table, err)
		}

		if got != want {
			t.Errorf("repo.Count(ctx, %v) = %v, want %v", table, got, want)
		}
	}

	groups := map[domain.Grouping][]domain.GroupCount{
		domain.AccountsByType: {{ID: "CURRENT", Count: 2}},
		domain.UsersByRole:    {{ID: "ROLE_ADMIN", Count: 1}, {ID: "ROLE_CUSTOMER", Count: 2}},
		domain.TransfersByStatus: {
			{ID: "COMPLETED", Count: 2},
			{ID: "PENDING", Count: 1},
		},
	}

	for g, want := range groups {
		got, err := repo.Group(ctx, g)
		if err != nil {
			t.Fatalf("repo.Group(ctx, %v) returned error: %v", g, err)
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("repo.Group(ctx, %v) returned unexpected difference (-want +got):\n%s", g, diff)
		}
	}
}

func TestLastTransfers(t *testing.T) {
	db := integrationtest.SetupDB(t, dbSource)

	start := time.Now().Add(-time.Hour)
	for i := 0; i < dashboardrepo.RecentLimit+2; i++ {
		integrationtest.SeedTransfer(t, db, "A1", "A2", decimal.NewFromInt(int64(i+1)), domain.TransferCompleted,
			start.Add(time.Duration(i)*time.Minute))
	}

	got, err := dashboardrepo.NewRepoPGS(db).LastTransfers(context.Background())
	if err != nil {
		t.Fatalf("repo.LastTransfers(ctx) returned error: %v", err)
	}

	if len(got) != dashboardrepo.RecentLimit {
		t.Fatalf("len(repo.LastTransfers(ctx)) = %d, want %d", len(got), dashboardrepo.RecentLimit)
	}

	for i := 1; i < len(got); i++ {
		if got[i].TransferTime.After(got[i-1].TransferTime) {
			t.Errorf("transfer %d is newer than transfer %d, want newest first", i, i-1)
		}
	}

	if want := decimal.NewFromInt(dashboardrepo.RecentLimit + 2); !got[0].Amount.Equal(want) {
		t.Errorf("got[0].Amount = %v, want %v", got[0].Amount, want)
	}
}

func TestLastLogins(t *testing.T) {
	db := integrationtest.SetupDB(t, dbSource)

	user := integrationtest.SeedUser(t, db, domain.RoleCustomer, "secret")
	older := integrationtest.SeedLogin(t, db, user.ID, time.Now().Add(-time.Hour))
	newer := integrationtest.SeedLogin(t, db, user.ID, time.Now())

	got, err := dashboardrepo.NewRepoPGS(db).LastLogins(context.Background())
	if err != nil {
		t.Fatalf("repo.LastLogins(ctx) returned error: %v", err)
	}

	if len(got) != 2 || got[0].IPAddress != newer.IPAddress || got[1].IPAddress != older.IPAddress {
		t.Errorf("repo.LastLogins(ctx) = %+v, want newest first", got)
	}
}
