package services

import (
	"fmt"
	"sort"
	"strings"

	intconfig "travelplan/internal/config"
	"travelplan/internal/domain"
	"travelplan/internal/domain/models"
	"travelplan/internal/repositories"
	"travelplan/internal/utils"
)

// MembershipService maintains the many-to-many relation between users and
// travels. Adding members validates the whole batch before any write and is
// idempotent; removing a non-member is an error.
type MembershipService struct {
	Travels   repositories.Store[models.Travel]
	Members   repositories.MembershipRepository
	RequestID string
}

// AddMembers attaches users to a travel. The entire sequence (existence
// checks, diff, delta insert) runs in one transaction; users already attached
// are skipped, and if any id does not exist nothing is written.
func (s MembershipService) AddMembers(travelID int64, userIDs []int64) (models.TravelWithMembers, error) {
	var out models.TravelWithMembers

	ids := dedupeIDs(userIDs)

	tx, err := s.Members.Begin()
	if err != nil {
		return out, err
	}
	defer tx.Rollback()

	travel, err := s.Travels.GetTx(tx, travelID)
	if err != nil {
		return out, err
	}

	existing, err := s.Members.ExistingUserIDs(tx, ids)
	if err != nil {
		return out, err
	}
	if missing := diffIDs(ids, existing); len(missing) > 0 {
		return out, domain.NotFoundError{Resource: userLabel(missing)}
	}

	current, err := s.Members.MemberIDs(tx, travelID)
	if err != nil {
		return out, err
	}
	toAdd := diffIDs(ids, current)
	if len(toAdd) > 0 {
		if err := s.Members.AddPairs(tx, travelID, toAdd); err != nil {
			return out, err
		}
		utils.LogEvent(s.RequestID, "membership", "add_members",
			fmt.Sprintf("travel_id=%d added=%d", travelID, len(toAdd)))
	}

	members, err := s.Members.MembersOf(tx, travelID)
	if err != nil {
		return out, err
	}
	if err := tx.Commit(); err != nil {
		return out, err
	}

	out.Travel = travel
	out.Users = members
	return out, nil
}

// RemoveMember detaches one user from a travel. Removing a user who is not a
// member fails with not-found rather than succeeding silently.
func (s MembershipService) RemoveMember(travelID, userID int64) error {
	tx, err := s.Members.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := s.Travels.GetTx(tx, travelID); err != nil {
		return err
	}

	removed, err := s.Members.RemovePair(tx, travelID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.NotFoundError{Resource: fmt.Sprintf("user %d in travel %d", userID, travelID)}
	}

	utils.LogEvent(s.RequestID, "membership", "remove_member",
		fmt.Sprintf("travel_id=%d user_id=%d", travelID, userID))
	return tx.Commit()
}

// ListMembers returns the travel's member users.
func (s MembershipService) ListMembers(travelID int64) ([]models.User, error) {
	if _, err := s.Travels.Get(travelID); err != nil {
		return nil, err
	}
	var q repositories.DBTX = s.Members.DB
	if s.Members.DB == nil {
		q = intconfig.DB
	}
	return s.Members.MembersOf(q, travelID)
}

func dedupeIDs(ids []int64) []int64 {
	seen := map[int64]bool{}
	out := []int64{}
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func diffIDs(ids, have []int64) []int64 {
	held := map[int64]bool{}
	for _, id := range have {
		held[id] = true
	}
	out := []int64{}
	for _, id := range ids {
		if !held[id] {
			out = append(out, id)
		}
	}
	return out
}

func userLabel(missing []int64) string {
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	parts := make([]string, len(missing))
	for i, id := range missing {
		parts[i] = fmt.Sprintf("%d", id)
	}
	if len(parts) == 1 {
		return "user " + parts[0]
	}
	return "users " + strings.Join(parts, ", ")
}
