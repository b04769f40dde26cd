// Package dashboardservice composes the admin dashboard figures.
package dashboardservice

import (
	"context"

	"github.com/go-petr/devbank/internal/domain"
)

// Repo provides the dashboard aggregates of the read model.
//
//go:generate mockgen -source service.go -destination service_mock.go -package dashboardservice
type Repo interface {
	Count(ctx context.Context, c domain.Collection) (int64, error)
	Group(ctx context.Context, g domain.Grouping) ([]domain.GroupCount, error)
	LastTransfers(ctx context.Context) ([]domain.Transfer, error)
	LastLogins(ctx context.Context) ([]domain.LoginInfo, error)
}

// Service facilitates dashboard service layer logic.
type Service struct {
	repo Repo
}

// New returns dashboard service.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Total returns the number of records in the collection.
func (s *Service) Total(ctx context.Context, c domain.Collection) (int64, error) {
	return s.repo.Count(ctx, c)
}

// Summary returns the four headline counts. Any failed count fails the summary.
func (s *Service) Summary(ctx context.Context) (domain.Summary, error) {
	var sum domain.Summary

	counts := []struct {
		c   domain.Collection
		dst *int64
	}{
		{domain.Users, &sum.TotalUsers},
		{domain.Accounts, &sum.TotalAccounts},
		{domain.Transfers, &sum.TotalTransfers},
		{domain.Logins, &sum.TotalLogins},
	}

	for _, cnt := range counts {
		n, err := s.repo.Count(ctx, cnt.c)
		if err != nil {
			return domain.Summary{}, err
		}

		*cnt.dst = n
	}

	return sum, nil
}

// Groups returns the record counts per value of the grouping column.
func (s *Service) Groups(ctx context.Context, g domain.Grouping) ([]domain.GroupCount, error) {
	groups, err := s.repo.Group(ctx, g)
	if err != nil {
		return nil, err
	}

	if groups == nil {
		groups = []domain.GroupCount{}
	}

	return groups, nil
}

// LastTransfers returns the newest transfers first, with display dates.
func (s *Service) LastTransfers(ctx context.Context) ([]domain.RecentTransfer, error) {
	transfers, err := s.repo.LastTransfers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecentTransfer, 0, len(transfers))
	for _, t := range transfers {
		result = append(result, domain.RecentTransfer{
			Sender:      t.SenderAccountID,
			Receiver:    t.ReceiverAccountID,
			Amount:      t.Amount,
			Description: t.Description,
			Status:      t.Status,
			Date:        domain.FormatLocaleTime(t.TransferTime),
		})
	}

	return result, nil
}

// LastLogins returns the newest logins first, with display times.
func (s *Service) LastLogins(ctx context.Context) ([]domain.RecentLogin, error) {
	logins, err := s.repo.LastLogins(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecentLogin, 0, len(logins))
	for _, li := range logins {
		result = append(result, domain.RecentLogin{
			UserID:    li.UserID,
			IPAddress: li.IPAddress,
			LoginTime: domain.FormatLocaleTime(li.LoginTime),
		})
	}

	return result, nil
}
