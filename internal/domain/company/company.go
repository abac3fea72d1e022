package company

import (
	"github.com/socx/event-announcer/internal/domain/record"
)

// Company represents a registered company in the company record set. Only
// the "Due" dates participate in window matching; the next-due and
// last-made-up dates are carried through for completeness.
type Company struct {
	ID                     string          `csv:"id"`
	CompanyName            string          `csv:"company_name"`
	CompanyNumber          string          `csv:"company_number"`
	CompanyType            string          `csv:"company_type"`
	IncorporationDate      record.NullDate `csv:"incorporation_date"`
	CompanyStatus          string          `csv:"company_status"`
	RegisteredAddress      string          `csv:"registered_address"`
	AccountsDueDate        record.NullDate `csv:"accounts_due_date"`
	AccountsNextDueDate    record.NullDate `csv:"accounts_next_due_date"`
	AccountsLastMadeUpDate record.NullDate `csv:"accounts_last_made_up_date"`
	ReturnsDueDate         record.NullDate `csv:"returns_due_date"`
	ReturnsNextDueDate     record.NullDate `csv:"returns_next_due_date"`
	ReturnsLastMadeUpDate  record.NullDate `csv:"returns_last_made_up_date"`
}

// DisplayName returns "companyName(companyNumber)" for log and message lists.
func (c Company) DisplayName() string {
	return c.CompanyName + "(" + c.CompanyNumber + ")"
}

// Officer plays the recipient role for the company domain. Officers are
// never "the celebrant", so there is no relationship exclusion here.
type Officer struct {
	ID        string `csv:"id"`
	FirstName string `csv:"firstname"`
	LastName  string `csv:"lastname"`
	MobileNo  string `csv:"mobileNo"`
	Email     string `csv:"email"`
}
