package sync

import (
	"encoding/json"

	"github.com/cmu-sei/cite.go/pkg/models"
	"github.com/cmu-sei/cite.go/pkg/store"
)

// dispatch routes one hub frame into the matching store. Created and
// Updated events carry the full record; Deleted events carry the record's
// id — except TeamUserDeleted, where the server broadcasts the whole
// record.
func (s *Service) dispatch(frame []byte) {
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		s.log.Error("undecodable hub frame", "error", err)
		return
	}
	if env.Event == "" {
		return
	}

	switch env.Event {
	case "ActionCreated", "ActionUpdated":
		if s.stores.Actions != nil {
			upsertPayload(s, env, s.stores.Actions.Store())
		}
	case "ActionDeleted":
		if s.stores.Actions != nil {
			removeByID(s, env, s.stores.Actions.Store())
		}

	case "EvaluationCreated", "EvaluationUpdated":
		if s.stores.Evaluations != nil {
			upsertPayload(s, env, s.stores.Evaluations.Store())
		}
	case "EvaluationDeleted":
		if s.stores.Evaluations != nil {
			removeByID(s, env, s.stores.Evaluations.Store())
		}

	case "MoveCreated", "MoveUpdated":
		if s.stores.Moves != nil {
			upsertPayload(s, env, s.stores.Moves.Store())
		}
	case "MoveDeleted":
		if s.stores.Moves != nil {
			removeByID(s, env, s.stores.Moves.Store())
		}

	case "RoleCreated", "RoleUpdated":
		if s.stores.Roles != nil {
			upsertPayload(s, env, s.stores.Roles.Store())
		}
	case "RoleDeleted":
		if s.stores.Roles != nil {
			removeByID(s, env, s.stores.Roles.Store())
		}

	case "ScoringModelCreated", "ScoringModelUpdated":
		if s.stores.ScoringModels != nil {
			upsertPayload(s, env, s.stores.ScoringModels.Store())
		}
	case "ScoringModelDeleted":
		if s.stores.ScoringModels != nil {
			removeByID(s, env, s.stores.ScoringModels.Store())
		}

	case "SubmissionCreated", "SubmissionUpdated":
		if s.stores.Submissions != nil {
			upsertPayload(s, env, s.stores.Submissions.Store())
		}
	case "SubmissionDeleted":
		if s.stores.Submissions != nil {
			removeByID(s, env, s.stores.Submissions.Store())
		}

	case "TeamCreated", "TeamUpdated":
		if s.stores.Teams != nil {
			upsertPayload(s, env, s.stores.Teams.Store())
		}
	case "TeamDeleted":
		if s.stores.Teams != nil {
			removeByID(s, env, s.stores.Teams.Store())
		}

	case "TeamUserCreated", "TeamUserUpdated":
		if s.stores.TeamUsers != nil {
			upsertPayload(s, env, s.stores.TeamUsers.Store())
		}
	case "TeamUserDeleted":
		// Whole record on the wire for this one.
		if s.stores.TeamUsers == nil {
			return
		}
		var tu models.TeamUser
		if err := json.Unmarshal(env.Payload, &tu); err != nil {
			s.log.Error("undecodable hub payload", "event", env.Event, "error", err)
			return
		}
		s.stores.TeamUsers.Store().Remove(tu.ID)

	case "UserCreated", "UserUpdated":
		if s.stores.Users != nil {
			upsertPayload(s, env, s.stores.Users.Store())
		}
	case "UserDeleted":
		if s.stores.Users != nil {
			removeByID(s, env, s.stores.Users.Store())
		}

	default:
		s.log.Debug("unhandled hub event", "event", env.Event)
	}
}

func upsertPayload[T store.Entity](s *Service, env envelope, st *store.Store[T]) {
	var record T
	if err := json.Unmarshal(env.Payload, &record); err != nil {
		s.log.Error("undecodable hub payload", "event", env.Event, "error", err)
		return
	}
	st.Upsert(record.GetID(), record)
}

func removeByID(s *Service, env envelope, remover interface{ Remove(string) }) {
	var id string
	if err := json.Unmarshal(env.Payload, &id); err != nil {
		s.log.Error("undecodable hub payload", "event", env.Event, "error", err)
		return
	}
	remover.Remove(id)
}
