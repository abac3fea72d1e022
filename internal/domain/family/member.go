package family

import (
	"github.com/socx/event-announcer/internal/domain/record"
)

// Member represents a person in the family record set.
type Member struct {
	ID          string          `csv:"id"`
	FirstName   string          `csv:"firstname"`
	MiddleName  string          `csv:"middlename"`
	LastName    string          `csv:"lastname"`
	BirthDate   record.NullDate `csv:"birthDate"`
	Gender      string          `csv:"gender"`
	Parents     record.IDList   `csv:"parents"`
	WeddingDate record.NullDate `csv:"weddingDate"`
	Spouses     record.IDList   `csv:"spouses"`
	DeathDate   record.NullDate `csv:"deathDate"`
}

// FullName returns "firstname lastname".
func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// Recipient is someone who receives event notifications. FamilyID optionally
// links the recipient to a Member record; a recipient without one is always
// treated as an unrelated third party.
type Recipient struct {
	ID        string `csv:"id"`
	FirstName string `csv:"firstname"`
	LastName  string `csv:"lastname"`
	MobileNo  string `csv:"mobileNo"`
	Email     string `csv:"email"`
	FamilyID  string `csv:"familyId"`
}
