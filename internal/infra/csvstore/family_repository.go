package csvstore

import (
	"context"

	"github.com/socx/event-announcer/internal/domain/family"
)

// FamilyRepository reads family members and recipients from CSV files.
// It implements family.Repository.
type FamilyRepository struct {
	membersPath    string
	recipientsPath string
}

func NewFamilyRepository(membersPath, recipientsPath string) *FamilyRepository {
	return &FamilyRepository{
		membersPath:    membersPath,
		recipientsPath: recipientsPath,
	}
}

// ListMembers reads the full family member record set.
func (r *FamilyRepository) ListMembers(ctx context.Context) ([]family.Member, error) {
	return readAll[family.Member](ctx, r.membersPath)
}

// ListRecipients reads the full recipient record set.
func (r *FamilyRepository) ListRecipients(ctx context.Context) ([]family.Recipient, error) {
	return readAll[family.Recipient](ctx, r.recipientsPath)
}
