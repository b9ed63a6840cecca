package models

// SystemPermission is a system-wide grant, independent of any one resource.
type SystemPermission string

const (
	SystemPermissionCreateEvaluations   SystemPermission = "CreateEvaluations"
	SystemPermissionEditEvaluations     SystemPermission = "EditEvaluations"
	SystemPermissionExecuteEvaluations  SystemPermission = "ExecuteEvaluations"
	SystemPermissionManageEvaluations   SystemPermission = "ManageEvaluations"
	SystemPermissionViewEvaluations     SystemPermission = "ViewEvaluations"
	SystemPermissionCreateScoringModels SystemPermission = "CreateScoringModels"
	SystemPermissionEditScoringModels   SystemPermission = "EditScoringModels"
	SystemPermissionManageScoringModels SystemPermission = "ManageScoringModels"
	SystemPermissionViewScoringModels   SystemPermission = "ViewScoringModels"
	SystemPermissionCreateTeams         SystemPermission = "CreateTeams"
	SystemPermissionEditTeams           SystemPermission = "EditTeams"
	SystemPermissionManageTeams         SystemPermission = "ManageTeams"
	SystemPermissionViewTeams           SystemPermission = "ViewTeams"
	SystemPermissionManageGroups        SystemPermission = "ManageGroups"
	SystemPermissionManageRoles         SystemPermission = "ManageRoles"
	SystemPermissionManageUsers         SystemPermission = "ManageUsers"
	SystemPermissionViewUsers           SystemPermission = "ViewUsers"
)

// EvaluationPermission is a grant scoped to one evaluation.
type EvaluationPermission string

const (
	EvaluationPermissionEditEvaluation   EvaluationPermission = "EditEvaluation"
	EvaluationPermissionManageEvaluation EvaluationPermission = "ManageEvaluation"
	EvaluationPermissionViewEvaluation   EvaluationPermission = "ViewEvaluation"
)

// ScoringModelPermission is a grant scoped to one scoring model.
type ScoringModelPermission string

const (
	ScoringModelPermissionEditScoringModel   ScoringModelPermission = "EditScoringModel"
	ScoringModelPermissionManageScoringModel ScoringModelPermission = "ManageScoringModel"
	ScoringModelPermissionViewScoringModel   ScoringModelPermission = "ViewScoringModel"
)

// TeamPermission is a grant scoped to one team.
type TeamPermission string

const (
	TeamPermissionEditTeam   TeamPermission = "EditTeam"
	TeamPermissionManageTeam TeamPermission = "ManageTeam"
	TeamPermissionViewTeam   TeamPermission = "ViewTeam"
)

// EvaluationPermissionClaim is the caller's grant set on one evaluation.
type EvaluationPermissionClaim struct {
	EvaluationID string                 `json:"evaluationId,omitempty"`
	Permissions  []EvaluationPermission `json:"permissions,omitempty"`
}

type ScoringModelPermissionClaim struct {
	ScoringModelID string                   `json:"scoringModelId,omitempty"`
	Permissions    []ScoringModelPermission `json:"permissions,omitempty"`
}

type TeamPermissionClaim struct {
	TeamID      string           `json:"teamId,omitempty"`
	Permissions []TeamPermission `json:"permissions,omitempty"`
}
