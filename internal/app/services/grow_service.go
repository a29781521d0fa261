package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	appAuth "github.com/Naveenkumar3327/Campus-link/internal/app/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/models/dto"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/apperrors"
)

// GrowService defines the GrowTogether gamification operations.
// Achievements, leaderboard and activities are seeded data served
// read-only; challenges are the one mutable piece.
type GrowService interface {
	Achievements(ctx context.Context, search, category string) ([]models.Achievement, error)
	Leaderboard(ctx context.Context, scope dto.LeaderboardScope) ([]models.LeaderboardEntry, error)
	Activities(ctx context.Context) ([]models.Activity, error)
	Challenges(ctx context.Context, userID, search, category string) ([]dto.ChallengeResponse, error)
	JoinChallenge(ctx context.Context, actor *models.User, challengeID string) (*dto.ChallengeResponse, error)
	LeaveChallenge(ctx context.Context, actor *models.User, challengeID string) (*dto.ChallengeResponse, error)
}

type growServiceImpl struct {
	achievements *repositories.Collection[models.Achievement]
	leaderboard  *repositories.Collection[models.LeaderboardEntry]
	activities   *repositories.Collection[models.Activity]
	challenges   *repositories.Collection[models.Challenge]
	logger       zerolog.Logger
}

// NewGrowService creates a new GrowService
func NewGrowService(
	achievements *repositories.Collection[models.Achievement],
	leaderboard *repositories.Collection[models.LeaderboardEntry],
	activities *repositories.Collection[models.Activity],
	challenges *repositories.Collection[models.Challenge],
	logger zerolog.Logger,
) GrowService {
	return &growServiceImpl{
		achievements: achievements,
		leaderboard:  leaderboard,
		activities:   activities,
		challenges:   challenges,
		logger:       logger,
	}
}

// Achievements returns achievements matching the search term ANDed with
// the category filter. Progress values are seeded constants.
func (s *growServiceImpl) Achievements(ctx context.Context, search, category string) ([]models.Achievement, error) {
	all, err := s.achievements.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Achievement, 0, len(all))
	for _, a := range all {
		if matchText(search, a.Title, a.Description) && matchEquals(category, string(a.Category)) {
			result = append(result, a)
		}
	}
	return result, nil
}

// Leaderboard returns entries sorted descending by the scope's point
// total. The sort is stable: equal scores keep their seed order.
func (s *growServiceImpl) Leaderboard(ctx context.Context, scope dto.LeaderboardScope) ([]models.LeaderboardEntry, error) {
	if !scope.Valid() {
		return nil, apperrors.NewValidationError("scope must be overall, weekly or monthly")
	}

	entries, err := s.leaderboard.Load(ctx)
	if err != nil {
		return nil, err
	}

	points := func(e models.LeaderboardEntry) int {
		switch scope {
		case dto.ScopeWeekly:
			return e.WeeklyPoints
		case dto.ScopeMonthly:
			return e.MonthlyPoints
		default:
			return e.TotalPoints
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return points(entries[i]) > points(entries[j])
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}

// Activities returns the seeded activity feed.
func (s *growServiceImpl) Activities(ctx context.Context) ([]models.Activity, error) {
	return s.activities.Load(ctx)
}

// Challenges returns the per-user view of challenges matching the
// search term ANDed with the category filter.
func (s *growServiceImpl) Challenges(ctx context.Context, userID, search, category string) ([]dto.ChallengeResponse, error) {
	all, err := s.challenges.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.ChallengeResponse, 0, len(all))
	for _, c := range all {
		if matchText(search, c.Title, c.Description) && matchEquals(category, string(c.Category)) {
			result = append(result, dto.NewChallengeResponse(c, userID))
		}
	}
	return result, nil
}

// JoinChallenge enrolls the user. A join is rejected when the challenge
// is at its participant limit or the user is already a member; either
// way the stored state is unchanged.
func (s *growServiceImpl) JoinChallenge(ctx context.Context, actor *models.User, challengeID string) (*dto.ChallengeResponse, error) {
	if !appAuth.Can(appAuth.ActionJoinChallenge, actor.Role) {
		return nil, apperrors.NewForbiddenError("only students can join challenges")
	}

	var joined models.Challenge
	_, err := s.challenges.Update(ctx, func(items []models.Challenge) ([]models.Challenge, error) {
		for i := range items {
			if items[i].ID != challengeID {
				continue
			}
			if items[i].HasJoined(actor.ID) {
				return nil, apperrors.ErrAlreadyJoined
			}
			if items[i].Participants >= items[i].MaxParticipants {
				return nil, apperrors.ErrChallengeFull
			}
			items[i].Participants++
			items[i].JoinedUsers = append(items[i].JoinedUsers, actor.ID)
			joined = items[i]
			return items, nil
		}
		return nil, apperrors.NewResourceNotFoundError("challenge not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("challengeId", challengeID).Str("userId", actor.ID).Msg("Challenge joined")
	resp := dto.NewChallengeResponse(joined, actor.ID)
	return &resp, nil
}

// LeaveChallenge withdraws the user. Leaving requires prior membership.
func (s *growServiceImpl) LeaveChallenge(ctx context.Context, actor *models.User, challengeID string) (*dto.ChallengeResponse, error) {
	var left models.Challenge
	_, err := s.challenges.Update(ctx, func(items []models.Challenge) ([]models.Challenge, error) {
		for i := range items {
			if items[i].ID != challengeID {
				continue
			}
			if !items[i].HasJoined(actor.ID) {
				return nil, apperrors.ErrNotJoined
			}
			members := items[i].JoinedUsers[:0]
			for _, id := range items[i].JoinedUsers {
				if id != actor.ID {
					members = append(members, id)
				}
			}
			items[i].JoinedUsers = members
			items[i].Participants--
			left = items[i]
			return items, nil
		}
		return nil, apperrors.NewResourceNotFoundError("challenge not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("challengeId", challengeID).Str("userId", actor.ID).Msg("Challenge left")
	resp := dto.NewChallengeResponse(left, actor.ID)
	return &resp, nil
}
