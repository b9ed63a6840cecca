package data

import (
	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/logger"
	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// EvaluationMemberships manages the principal/role grants of one
// evaluation at a time, with member/non-member partitions over the user
// and group stores.
type EvaluationMemberships struct {
	*memberships[models.EvaluationMembership]
}

func NewEvaluationMemberships(c *api.Client, users *store.Store[models.User], groups *store.Store[models.Group], log logger.Logger) *EvaluationMemberships {
	return &EvaluationMemberships{newMemberships(
		membershipAPI[models.EvaluationMembership]{
			list:   c.GetEvaluationMemberships,
			create: c.CreateEvaluationMembership,
			update: c.UpdateEvaluationMembership,
			delete: c.DeleteEvaluationMembership,
		},
		users, groups,
		models.EvaluationMembership.Validate,
		func(m models.EvaluationMembership) string { return m.UserID },
		func(m models.EvaluationMembership) string { return m.GroupID },
		log,
	)}
}

// TeamMemberships manages the principal/role grants of one team at a time.
type TeamMemberships struct {
	*memberships[models.TeamMembership]
}

func NewTeamMemberships(c *api.Client, users *store.Store[models.User], groups *store.Store[models.Group], log logger.Logger) *TeamMemberships {
	return &TeamMemberships{newMemberships(
		membershipAPI[models.TeamMembership]{
			list:   c.GetTeamMemberships,
			create: c.CreateTeamMembership,
			update: c.UpdateTeamMembership,
			delete: c.DeleteTeamMembership,
		},
		users, groups,
		models.TeamMembership.Validate,
		func(m models.TeamMembership) string { return m.UserID },
		func(m models.TeamMembership) string { return m.GroupID },
		log,
	)}
}

// ScoringModelMemberships manages the principal/role grants of one scoring
// model at a time.
type ScoringModelMemberships struct {
	*memberships[models.ScoringModelMembership]
}

func NewScoringModelMemberships(c *api.Client, users *store.Store[models.User], groups *store.Store[models.Group], log logger.Logger) *ScoringModelMemberships {
	return &ScoringModelMemberships{newMemberships(
		membershipAPI[models.ScoringModelMembership]{
			list:   c.GetScoringModelMemberships,
			create: c.CreateScoringModelMembership,
			update: c.UpdateScoringModelMembership,
			delete: c.DeleteScoringModelMembership,
		},
		users, groups,
		models.ScoringModelMembership.Validate,
		func(m models.ScoringModelMembership) string { return m.UserID },
		func(m models.ScoringModelMembership) string { return m.GroupID },
		log,
	)}
}
