package models

import (
	"github.com/go-playground/validator/v10"
)

// validate checks membership payloads before they go to the server. A
// membership binds exactly one principal: a user or a group, never both,
// never neither.
var validate = validator.New()

// EvaluationMembership grants a principal a role on one evaluation.
type EvaluationMembership struct {
	Base
	EvaluationID string      `json:"evaluationId,omitempty" validate:"required"`
	UserID       string      `json:"userId,omitempty" validate:"required_without=GroupID,excluded_with=GroupID"`
	GroupID      string      `json:"groupId,omitempty"`
	RoleID       string      `json:"roleId,omitempty"`
	User         *User       `json:"user,omitempty"`
	Group        *Group      `json:"group,omitempty"`
	Role         *SystemRole `json:"role,omitempty"`
}

func (m EvaluationMembership) Validate() error { return validate.Struct(m) }

// ScoringModelMembership grants a principal a role on one scoring model.
type ScoringModelMembership struct {
	Base
	ScoringModelID string      `json:"scoringModelId,omitempty" validate:"required"`
	UserID         string      `json:"userId,omitempty" validate:"required_without=GroupID,excluded_with=GroupID"`
	GroupID        string      `json:"groupId,omitempty"`
	RoleID         string      `json:"roleId,omitempty"`
	User           *User       `json:"user,omitempty"`
	Group          *Group      `json:"group,omitempty"`
	Role           *SystemRole `json:"role,omitempty"`
}

func (m ScoringModelMembership) Validate() error { return validate.Struct(m) }

// TeamMembership grants a principal a role on one team.
type TeamMembership struct {
	Base
	TeamID  string      `json:"teamId,omitempty" validate:"required"`
	UserID  string      `json:"userId,omitempty" validate:"required_without=GroupID,excluded_with=GroupID"`
	GroupID string      `json:"groupId,omitempty"`
	RoleID  string      `json:"roleId,omitempty"`
	User    *User       `json:"user,omitempty"`
	Role    *SystemRole `json:"role,omitempty"`
}

func (m TeamMembership) Validate() error { return validate.Struct(m) }

// GroupMembership puts a user into a group. Groups cannot nest, so the
// principal here is always a user.
type GroupMembership struct {
	Base
	GroupID string `json:"groupId,omitempty" validate:"required"`
	UserID  string `json:"userId,omitempty" validate:"required"`
	User    *User  `json:"user,omitempty"`
}

func (m GroupMembership) Validate() error { return validate.Struct(m) }
