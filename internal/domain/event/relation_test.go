package event

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socx/event-announcer/internal/domain/family"
	"github.com/socx/event-announcer/internal/domain/record"
)

func TestCelebrantLabel(t *testing.T) {
	mark := family.Member{ID: "1", FirstName: "Mark", LastName: "Obi"}

	tests := []struct {
		name      string
		recipient family.Recipient
		want      string
	}{
		{name: "recipient is the celebrant", recipient: family.Recipient{ID: "9", FamilyID: "1"}, want: LabelSelf},
		{name: "unrelated recipient gets full name", recipient: family.Recipient{ID: "9", FamilyID: "2"}, want: "Mark Obi"},
		{name: "no family link is third party", recipient: family.Recipient{ID: "9"}, want: "Mark Obi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CelebrantLabel(tc.recipient, mark))
		})
	}
}

func TestAnniversaryLabel(t *testing.T) {
	celebrant := family.Member{ID: "1", FirstName: "Mark", LastName: "Obi", Spouses: record.IDList{"2"}}

	tests := []struct {
		name      string
		recipient family.Recipient
		want      string
	}{
		{name: "self beats spouse", recipient: family.Recipient{FamilyID: "1"}, want: LabelSelf},
		{name: "spouse marker", recipient: family.Recipient{FamilyID: "2"}, want: LabelSpouse},
		{name: "unrelated gets full name", recipient: family.Recipient{FamilyID: "3"}, want: "Mark Obi"},
		{name: "no family link never matches spouse list", recipient: family.Recipient{}, want: "Mark Obi"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AnniversaryLabel(tc.recipient, celebrant))
		})
	}
}
