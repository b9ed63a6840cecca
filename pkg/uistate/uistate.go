// Package uistate persists per-user interface preferences as a single
// JSON blob under a single storage key. Every mutation rewrites the
// whole blob; a missing or unreadable blob yields zero-valued state.
package uistate

import (
	"encoding/json"
	"sync"

	"github.com/cmu-sei/cite.go/pkg/logger"
)

// Key is the storage key the whole blob lives under.
const Key = "cite-ui-state"

// blankEvaluation is the stored sentinel for "no evaluation selected".
const blankEvaluation = "blank"

// State is the persisted blob. All fields are optional.
type State struct {
	SelectedTheme      string   `json:"selectedTheme,omitempty"`
	SelectedEvaluation string   `json:"selectedEvaluation,omitempty"`
	ExpandedItems      []string `json:"expandedItems,omitempty"`

	EvaluationMoveNumber     map[string]int    `json:"evaluationMoveNumber,omitempty"`
	EvaluationSection        map[string]string `json:"evaluationSection,omitempty"`
	EvaluationSubmissionType map[string]string `json:"evaluationSubmissionType,omitempty"`
	EvaluationTeam           map[string]string `json:"evaluationTeam,omitempty"`
}

// Storage reads and writes opaque blobs by key.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Service owns the in-memory copy of the blob and keeps storage in step
// with it. Safe for concurrent use.
type Service struct {
	storage Storage
	log     logger.Logger

	mu    sync.Mutex
	state State
}

// NewService loads the blob from storage. Read or decode failures are
// logged and leave the service with zero-valued state.
func NewService(storage Storage, log logger.Logger) *Service {
	s := &Service{storage: storage, log: log}
	raw, err := storage.Read(Key)
	if err != nil {
		log.Debug("no persisted ui state", "error", err)
		return s
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		log.Warn("discarding unreadable ui state", "error", err)
		s.state = State{}
	}
	return s
}

// flush rewrites the whole blob. Callers hold s.mu.
func (s *Service) flush() error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.storage.Write(Key, raw)
}

func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SelectedTheme
}

func (s *Service) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedTheme = theme
	return s.flush()
}

// Evaluation returns the selected evaluation id, or "" when none is
// selected.
func (s *Service) Evaluation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.SelectedEvaluation == blankEvaluation {
		return ""
	}
	return s.state.SelectedEvaluation
}

func (s *Service) SetEvaluation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		id = blankEvaluation
	}
	s.state.SelectedEvaluation = id
	return s.flush()
}

func (s *Service) IsItemExpanded(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.ExpandedItems {
		if item == id {
			return true
		}
	}
	return false
}

func (s *Service) SetItemExpanded(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.state.ExpandedItems {
		if item == id {
			return nil
		}
	}
	s.state.ExpandedItems = append(s.state.ExpandedItems, id)
	return s.flush()
}

func (s *Service) SetItemCollapsed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.state.ExpandedItems {
		if item == id {
			s.state.ExpandedItems = append(s.state.ExpandedItems[:i], s.state.ExpandedItems[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

func (s *Service) MoveNumber(evaluationID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EvaluationMoveNumber[evaluationID]
}

func (s *Service) SetMoveNumber(evaluationID string, move int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EvaluationMoveNumber == nil {
		s.state.EvaluationMoveNumber = map[string]int{}
	}
	s.state.EvaluationMoveNumber[evaluationID] = move
	return s.flush()
}

func (s *Service) Section(evaluationID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EvaluationSection[evaluationID]
}

func (s *Service) SetSection(evaluationID, section string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EvaluationSection == nil {
		s.state.EvaluationSection = map[string]string{}
	}
	s.state.EvaluationSection[evaluationID] = section
	return s.flush()
}

func (s *Service) SubmissionType(evaluationID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EvaluationSubmissionType[evaluationID]
}

func (s *Service) SetSubmissionType(evaluationID, submissionType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EvaluationSubmissionType == nil {
		s.state.EvaluationSubmissionType = map[string]string{}
	}
	s.state.EvaluationSubmissionType[evaluationID] = submissionType
	return s.flush()
}

func (s *Service) Team(evaluationID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.EvaluationTeam[evaluationID]
}

func (s *Service) SetTeam(evaluationID, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.EvaluationTeam == nil {
		s.state.EvaluationTeam = map[string]string{}
	}
	s.state.EvaluationTeam[evaluationID] = teamID
	return s.flush()
}
