package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socx/event-announcer/internal/domain/company"
	"github.com/socx/event-announcer/internal/domain/record"
	"github.com/socx/event-announcer/internal/message"
)

type fakeCompanyRepo struct {
	companies    []company.Company
	officers     []company.Officer
	companiesErr error
	officersErr  error
}

func (f *fakeCompanyRepo) ListCompanies(context.Context) ([]company.Company, error) {
	return f.companies, f.companiesErr
}

func (f *fakeCompanyRepo) ListOfficers(context.Context) ([]company.Officer, error) {
	return f.officers, f.officersErr
}

func newTestCompanyService(repo company.Repository, emailSender *fakeEmailSender) *CompanyReminderService {
	d := NewDispatcher(emailSender, &fakeChatSender{}, message.Defaults(), "Event Announcer", quietLogger())
	s := NewCompanyReminderService(repo, d, 30, quietLogger())
	s.now = func() time.Time { return time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC) }
	return s
}

func TestCompanyRunFlagsOnlyExactThirtyDayDueDates(t *testing.T) {
	repo := &fakeCompanyRepo{
		companies: []company.Company{
			{ID: "1", CompanyName: "ABC Ltd", CompanyNumber: "12345", AccountsDueDate: record.NewDate(2025, time.July, 15)},
			{ID: "2", CompanyName: "Soon Ltd", CompanyNumber: "55555", AccountsDueDate: record.NewDate(2025, time.June, 30)},
		},
		officers: []company.Officer{{ID: "1", FirstName: "John", Email: "john@example.com"}},
	}
	emailSender := &fakeEmailSender{}
	s := newTestCompanyService(repo, emailSender)

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, emailSender.sent, 1)
	assert.Contains(t, emailSender.sent[0].body, "ABC Ltd(12345)")
	assert.NotContains(t, emailSender.sent[0].body, "Soon Ltd", "a company due in 15 days is not flagged by the exact-day match")
}

func TestCompanyRunFailsOnOfficerSourceReadError(t *testing.T) {
	boom := errors.New("no such file")
	repo := &fakeCompanyRepo{officersErr: boom}
	s := newTestCompanyService(repo, &fakeEmailSender{})

	err := s.Run(context.Background())
	var runErr *RunError
	require.ErrorAs(t, err, &runErr)
	assert.Equal(t, StepLoadRecipients, runErr.Step)
	assert.ErrorIs(t, err, boom)
}

func TestCompanyRunNoMatchesSendsNothing(t *testing.T) {
	repo := &fakeCompanyRepo{
		companies: []company.Company{
			{ID: "1", CompanyName: "Quiet Ltd", AccountsDueDate: record.NewDate(2026, time.January, 1)},
		},
		officers: []company.Officer{{ID: "1", FirstName: "John", Email: "john@example.com"}},
	}
	emailSender := &fakeEmailSender{}
	s := newTestCompanyService(repo, emailSender)

	require.NoError(t, s.Run(context.Background()))
	assert.Empty(t, emailSender.sent)
}
