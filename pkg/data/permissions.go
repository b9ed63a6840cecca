package data

import (
	"context"
	"sync"

	"github.com/cmu-sei/cite.go/pkg/api"
	"github.com/cmu-sei/cite.go/pkg/models"
)

// Permissions caches the caller's grants and answers permission questions
// as plain booleans. Every predicate is two-tier: a system-wide grant, or a
// claim scoped to the specific resource id. A missing claim means no.
type Permissions struct {
	api *api.Client

	mu                 sync.RWMutex
	system             []models.SystemPermission
	evaluationClaims   []models.EvaluationPermissionClaim
	scoringModelClaims []models.ScoringModelPermissionClaim
	teamClaims         []models.TeamPermissionClaim
}

func NewPermissions(c *api.Client) *Permissions {
	return &Permissions{api: c}
}

func (p *Permissions) Load(ctx context.Context) error {
	perms, err := p.api.GetMySystemPermissions(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.system = perms
	p.mu.Unlock()
	return nil
}

func (p *Permissions) LoadEvaluationPermissions(ctx context.Context) error {
	claims, err := p.api.GetMyEvaluationPermissions(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.evaluationClaims = claims
	p.mu.Unlock()
	return nil
}

func (p *Permissions) LoadScoringModelPermissions(ctx context.Context) error {
	claims, err := p.api.GetMyScoringModelPermissions(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.scoringModelClaims = claims
	p.mu.Unlock()
	return nil
}

func (p *Permissions) LoadTeamPermissions(ctx context.Context) error {
	claims, err := p.api.GetMyTeamPermissions(ctx)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.teamClaims = claims
	p.mu.Unlock()
	return nil
}

// HasPermission reports a system-wide grant.
func (p *Permissions) HasPermission(perm models.SystemPermission) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, have := range p.system {
		if have == perm {
			return true
		}
	}
	return false
}

func (p *Permissions) hasEvaluationClaim(evaluationID string, perm models.EvaluationPermission) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, claim := range p.evaluationClaims {
		if claim.EvaluationID != evaluationID {
			continue
		}
		for _, have := range claim.Permissions {
			if have == perm {
				return true
			}
		}
	}
	return false
}

func (p *Permissions) hasScoringModelClaim(scoringModelID string, perm models.ScoringModelPermission) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, claim := range p.scoringModelClaims {
		if claim.ScoringModelID != scoringModelID {
			continue
		}
		for _, have := range claim.Permissions {
			if have == perm {
				return true
			}
		}
	}
	return false
}

// HasTeamPermission reports a claim scoped to one team.
func (p *Permissions) HasTeamPermission(teamID string, perm models.TeamPermission) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, claim := range p.teamClaims {
		if claim.TeamID != teamID {
			continue
		}
		for _, have := range claim.Permissions {
			if have == perm {
				return true
			}
		}
	}
	return false
}

func (p *Permissions) CanCreateEvaluations() bool {
	return p.HasPermission(models.SystemPermissionCreateEvaluations)
}

func (p *Permissions) CanEditEvaluation(evaluationID string) bool {
	return p.HasPermission(models.SystemPermissionEditEvaluations) ||
		p.hasEvaluationClaim(evaluationID, models.EvaluationPermissionEditEvaluation) ||
		p.CanManageEvaluation(evaluationID)
}

func (p *Permissions) CanManageEvaluation(evaluationID string) bool {
	return p.HasPermission(models.SystemPermissionManageEvaluations) ||
		p.hasEvaluationClaim(evaluationID, models.EvaluationPermissionManageEvaluation)
}

// CanAdvanceMove covers both managers and designated executors.
func (p *Permissions) CanAdvanceMove(evaluationID string) bool {
	return p.CanManageEvaluation(evaluationID) ||
		p.HasPermission(models.SystemPermissionExecuteEvaluations)
}

func (p *Permissions) CanCreateScoringModels() bool {
	return p.HasPermission(models.SystemPermissionCreateScoringModels)
}

func (p *Permissions) CanEditScoringModel(scoringModelID string) bool {
	return p.HasPermission(models.SystemPermissionEditScoringModels) ||
		p.hasScoringModelClaim(scoringModelID, models.ScoringModelPermissionEditScoringModel) ||
		p.CanManageScoringModel(scoringModelID)
}

func (p *Permissions) CanManageScoringModel(scoringModelID string) bool {
	return p.HasPermission(models.SystemPermissionManageScoringModels) ||
		p.hasScoringModelClaim(scoringModelID, models.ScoringModelPermissionManageScoringModel)
}

func (p *Permissions) CanEditTeam(teamID string) bool {
	return p.HasPermission(models.SystemPermissionEditTeams) ||
		p.HasTeamPermission(teamID, models.TeamPermissionEditTeam) ||
		p.CanManageTeam(teamID)
}

func (p *Permissions) CanManageTeam(teamID string) bool {
	return p.HasPermission(models.SystemPermissionManageTeams) ||
		p.HasTeamPermission(teamID, models.TeamPermissionManageTeam)
}

func (p *Permissions) CanManageUsers() bool {
	return p.HasPermission(models.SystemPermissionManageUsers)
}

func (p *Permissions) CanManageGroups() bool {
	return p.HasPermission(models.SystemPermissionManageGroups)
}

func (p *Permissions) CanManageRoles() bool {
	return p.HasPermission(models.SystemPermissionManageRoles)
}
