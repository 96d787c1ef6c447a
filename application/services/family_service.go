package services

import (
	"context"

	"muzac-backend/application/ports"
	"muzac-backend/domain/family"
	apperrors "muzac-backend/pkg/errors"
	"muzac-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FamilyService implements the family-relationship store operations on top of
// the member repository.
type FamilyService struct {
	repo   ports.FamilyRepository
	logger *zap.Logger
}

// NewFamilyService creates a new family service
func NewFamilyService(repo ports.FamilyRepository, logger *zap.Logger) *FamilyService {
	return &FamilyService{
		repo:   repo,
		logger: logger,
	}
}

// CreateMember persists a new member. A missing id is assigned, creation time
// is stamped, and the stored record is returned. No duplicate or referential
// integrity checks are made.
func (s *FamilyService) CreateMember(ctx context.Context, member family.Member) (family.Member, error) {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	member.CreatedAt = utils.NowRFC3339()

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error("Failed to create family member",
			zap.String("memberID", member.ID),
			zap.Error(err),
		)
		return family.Member{}, err
	}

	return member, nil
}

// GetMember returns a single member by id.
func (s *FamilyService) GetMember(ctx context.Context, id string) (family.Member, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllMembers returns every member, unordered.
func (s *FamilyService) GetAllMembers(ctx context.Context) ([]family.Member, error) {
	return s.repo.GetAll(ctx)
}

// GetChildren returns the union of members whose mom or dad is the parent,
// deduplicated by id and ordered by birthday ascending.
func (s *FamilyService) GetChildren(ctx context.Context, parentID string) ([]family.Member, error) {
	momKids, err := s.repo.GetByMom(ctx, parentID)
	if err != nil {
		return nil, err
	}
	dadKids, err := s.repo.GetByDad(ctx, parentID)
	if err != nil {
		return nil, err
	}

	children := family.DedupByID(append(momKids, dadKids...))
	family.SortByBirthday(children)
	return children, nil
}

// GetParents returns the 0-2 resolvable parents of the child. A mom or dad
// reference that does not resolve to a stored member is skipped silently; an
// unknown child id is an error.
func (s *FamilyService) GetParents(ctx context.Context, childID string) ([]family.Member, error) {
	child, err := s.repo.GetByID(ctx, childID)
	if err != nil {
		return nil, err
	}

	parents := make([]family.Member, 0, 2)
	for _, parentID := range []string{child.Mom, child.Dad} {
		if parentID == "" {
			continue
		}
		parent, err := s.repo.GetByID(ctx, parentID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				s.logger.Warn("Dangling parent reference",
					zap.String("childID", childID),
					zap.String("parentID", parentID),
				)
				continue
			}
			return nil, err
		}
		parents = append(parents, parent)
	}

	return parents, nil
}
