package event

import (
	"github.com/socx/event-announcer/internal/domain/family"
)

// Sentinel labels substituted for a celebrant's name when the recipient is
// that celebrant, or the celebrant's spouse.
const (
	LabelSelf   = "Yourself"
	LabelSpouse = "Your spouse"
)

// IsCelebrant reports whether the recipient's linked family record is the
// celebrant. A recipient with no family link is always a third party.
func IsCelebrant(r family.Recipient, m family.Member) bool {
	return r.FamilyID != "" && r.FamilyID == m.ID
}

// IsSpouse reports whether the recipient's linked family record appears in
// the celebrant's spouse list.
func IsSpouse(r family.Recipient, m family.Member) bool {
	return m.Spouses.Contains(r.FamilyID)
}

// CelebrantLabel resolves how a birthday celebrant is referred to in a
// message to the recipient: the self marker when the recipient is the
// celebrant, otherwise the celebrant's full name.
func CelebrantLabel(r family.Recipient, m family.Member) string {
	if IsCelebrant(r, m) {
		return LabelSelf
	}
	return m.FullName()
}

// AnniversaryLabel resolves how an anniversary celebrant is referred to:
// self marker, then spouse marker, then full name, in that priority order.
func AnniversaryLabel(r family.Recipient, m family.Member) string {
	if IsCelebrant(r, m) {
		return LabelSelf
	}
	if IsSpouse(r, m) {
		return LabelSpouse
	}
	return m.FullName()
}
