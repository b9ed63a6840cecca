// Package models mirrors the CITE API resource schemas. The shapes are
// dictated by the server's OpenAPI contract; field names map 1:1 onto the
// JSON the REST endpoints and the hub broadcast.
package models

import (
	"time"
)

// ItemStatus is the lifecycle state shared by evaluations, moves,
// submissions and scoring models.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "Pending"
	ItemStatusActive    ItemStatus = "Active"
	ItemStatusCancelled ItemStatus = "Cancelled"
	ItemStatusComplete  ItemStatus = "Complete"
	ItemStatusArchived  ItemStatus = "Archived"
)

// RightSideDisplay selects what an evaluation shows beside the score sheet.
type RightSideDisplay string

const (
	RightSideDisplayScoreSummary RightSideDisplay = "ScoreSummary"
	RightSideDisplayHtmlBlock    RightSideDisplay = "HtmlBlock"
	RightSideDisplayEmbeddedUrl  RightSideDisplay = "EmbeddedUrl"
	RightSideDisplayNone         RightSideDisplay = "None"
)

// Base carries the audit fields every CITE resource has.
type Base struct {
	ID           string     `json:"id,omitempty"`
	DateCreated  *time.Time `json:"dateCreated,omitempty"`
	DateModified *time.Time `json:"dateModified,omitempty"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	ModifiedBy   string     `json:"modifiedBy,omitempty"`
}

// GetID satisfies store.Entity.
func (b Base) GetID() string { return b.ID }

type User struct {
	Base
	Name        string             `json:"name,omitempty"`
	Permissions []SystemPermission `json:"permissions,omitempty"`
}

type TeamType struct {
	Base
	Name                string `json:"name,omitempty"`
	ShowTeamTypeAverage bool   `json:"showTeamTypeAverage,omitempty"`
}

type Team struct {
	Base
	Name                   string    `json:"name,omitempty"`
	ShortName              string    `json:"shortName,omitempty"`
	EvaluationID           string    `json:"evaluationId,omitempty"`
	TeamTypeID             string    `json:"teamTypeId,omitempty"`
	TeamType               *TeamType `json:"teamType,omitempty"`
	HideScoresOnScoreSheet bool      `json:"hideScoresOnScoreSheet,omitempty"`
	Users                  []User    `json:"users,omitempty"`
}

// TeamUser links one user onto one team, with the per-team ability flags.
type TeamUser struct {
	Base
	TeamID           string `json:"teamId,omitempty"`
	UserID           string `json:"userId,omitempty"`
	User             *User  `json:"user,omitempty"`
	IsObserver       bool   `json:"isObserver,omitempty"`
	CanIncrementMove bool   `json:"canIncrementMove,omitempty"`
	CanModify        bool   `json:"canModify,omitempty"`
	CanSubmit        bool   `json:"canSubmit,omitempty"`
}

type Group struct {
	Base
	Name string `json:"name,omitempty"`
}

type Evaluation struct {
	Base
	Description                   string           `json:"description,omitempty"`
	Status                        ItemStatus       `json:"status,omitempty"`
	CurrentMoveNumber             int              `json:"currentMoveNumber,omitempty"`
	SituationTime                 *time.Time       `json:"situationTime,omitempty"`
	SituationDescription          string           `json:"situationDescription,omitempty"`
	ScoringModelID                string           `json:"scoringModelId,omitempty"`
	ScoringModel                  *ScoringModel    `json:"scoringModel,omitempty"`
	GalleryExhibitID              string           `json:"galleryExhibitId,omitempty"`
	HideScoresOnScoreSheet        bool             `json:"hideScoresOnScoreSheet,omitempty"`
	ShowPastSituationDescriptions bool             `json:"showPastSituationDescriptions,omitempty"`
	DisplayCommentTextBoxes       bool             `json:"displayCommentTextBoxes,omitempty"`
	RightSideDisplay              RightSideDisplay `json:"rightSideDisplay,omitempty"`
	Teams                         []Team           `json:"teams,omitempty"`
	Moves                         []Move           `json:"moves,omitempty"`
	Submissions                   []Submission     `json:"submissions,omitempty"`
}

type Move struct {
	Base
	EvaluationID         string     `json:"evaluationId,omitempty"`
	MoveNumber           int        `json:"moveNumber,omitempty"`
	Description          string     `json:"description,omitempty"`
	SituationTime        *time.Time `json:"situationTime,omitempty"`
	SituationDescription string     `json:"situationDescription,omitempty"`
}

type Action struct {
	Base
	EvaluationID string `json:"evaluationId,omitempty"`
	TeamID       string `json:"teamId,omitempty"`
	MoveNumber   int    `json:"moveNumber,omitempty"`
	InjectNumber int    `json:"injectNumber,omitempty"`
	Description  string `json:"description,omitempty"`
	IsChecked    bool   `json:"isChecked,omitempty"`
	ChangedBy    string `json:"changedBy,omitempty"`
}

type Role struct {
	Base
	EvaluationID string `json:"evaluationId,omitempty"`
	TeamID       string `json:"teamId,omitempty"`
	Name         string `json:"name,omitempty"`
	Users        []User `json:"users,omitempty"`
}

type ScoringModel struct {
	Base
	Description         string            `json:"description,omitempty"`
	CalculationEquation string            `json:"calculationEquation,omitempty"`
	Status              ItemStatus        `json:"status,omitempty"`
	ScoringCategories   []ScoringCategory `json:"scoringCategories,omitempty"`
}

type ScoringCategory struct {
	Base
	ScoringModelID       string          `json:"scoringModelId,omitempty"`
	DisplayOrder         int             `json:"displayOrder,omitempty"`
	Description          string          `json:"description,omitempty"`
	AllowMultipleChoices bool            `json:"allowMultipleChoices,omitempty"`
	CalculationWeight    float64         `json:"calculationWeight,omitempty"`
	ScoringOptions       []ScoringOption `json:"scoringOptions,omitempty"`
}

type ScoringOption struct {
	Base
	ScoringCategoryID string  `json:"scoringCategoryId,omitempty"`
	DisplayOrder      int     `json:"displayOrder,omitempty"`
	Description       string  `json:"description,omitempty"`
	Value             float64 `json:"value,omitempty"`
	IsModifier        bool    `json:"isModifier,omitempty"`
}

type Submission struct {
	Base
	Score            float64    `json:"score,omitempty"`
	Status           ItemStatus `json:"status,omitempty"`
	ScoringModelID   string     `json:"scoringModelId,omitempty"`
	UserID           string     `json:"userId,omitempty"`
	EvaluationID     string     `json:"evaluationId,omitempty"`
	TeamID           string     `json:"teamId,omitempty"`
	GroupID          string     `json:"groupId,omitempty"`
	MoveNumber       int        `json:"moveNumber,omitempty"`
	ScoreIsAnAverage bool       `json:"scoreIsAnAverage,omitempty"`
}

// SystemRole names a set of system permissions grantable as a unit.
type SystemRole struct {
	Base
	Name           string             `json:"name,omitempty"`
	AllPermissions bool               `json:"allPermissions,omitempty"`
	Immutable      bool               `json:"immutable,omitempty"`
	Permissions    []SystemPermission `json:"permissions,omitempty"`
}
