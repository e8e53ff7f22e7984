package audit

import (
	"fmt"
	"strings"
	"time"
)

type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionUpdate ActionType = "update"
	ActionDelete ActionType = "delete"
)

var actionLabels = map[ActionType]string{
	ActionCreate: "إنشاء",
	ActionUpdate: "تعديل",
	ActionDelete: "حذف",
}

func (a ActionType) String() string {
	return string(a)
}

func (a ActionType) Label() string {
	return actionLabels[a]
}

func (a ActionType) IsValid() bool {
	_, ok := actionLabels[a]
	return ok
}

// ParseActionType accepts the code or the desk label.
func ParseActionType(s string) (ActionType, error) {
	s = strings.TrimSpace(s)
	if a := ActionType(strings.ToLower(s)); a.IsValid() {
		return a, nil
	}
	for a, label := range actionLabels {
		if label == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("invalid audit action type: %s", s)
}

// Log is one immutable audit entry. There are no mutators besides SetID.
type Log struct {
	id              uint
	caseID          uint
	action          ActionType
	description     string
	performedByID   uint
	performedByName string
	timestamp       time.Time
	oldValues       []byte
	newValues       []byte
}

// NewLog validates the snapshot shape for the action: create carries only
// new values, delete only old values, update both.
func NewLog(
	caseID uint,
	action ActionType,
	description string,
	performedByID uint,
	performedByName string,
	timestamp time.Time,
	oldValues, newValues []byte,
) (*Log, error) {
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action type: %q", action)
	}
	if performedByID == 0 {
		return nil, fmt.Errorf("performer ID is required")
	}

	hasOld, hasNew := len(oldValues) > 0, len(newValues) > 0
	switch action {
	case ActionCreate:
		if hasOld || !hasNew {
			return nil, fmt.Errorf("create entry requires new values only")
		}
	case ActionUpdate:
		if !hasOld || !hasNew {
			return nil, fmt.Errorf("update entry requires old and new values")
		}
	case ActionDelete:
		if !hasOld || hasNew {
			return nil, fmt.Errorf("delete entry requires old values only")
		}
	}

	return &Log{
		caseID:          caseID,
		action:          action,
		description:     description,
		performedByID:   performedByID,
		performedByName: performedByName,
		timestamp:       timestamp,
		oldValues:       cloneBytes(oldValues),
		newValues:       cloneBytes(newValues),
	}, nil
}

func ReconstructLog(
	id, caseID uint,
	action ActionType,
	description string,
	performedByID uint,
	performedByName string,
	timestamp time.Time,
	oldValues, newValues []byte,
) *Log {
	return &Log{
		id:              id,
		caseID:          caseID,
		action:          action,
		description:     description,
		performedByID:   performedByID,
		performedByName: performedByName,
		timestamp:       timestamp,
		oldValues:       oldValues,
		newValues:       newValues,
	}
}

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("audit log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("audit log ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Log) ID() uint                { return l.id }
func (l *Log) CaseID() uint            { return l.caseID }
func (l *Log) Action() ActionType      { return l.action }
func (l *Log) Description() string     { return l.description }
func (l *Log) PerformedByID() uint     { return l.performedByID }
func (l *Log) PerformedByName() string { return l.performedByName }
func (l *Log) Timestamp() time.Time    { return l.timestamp }
func (l *Log) OldValues() []byte       { return cloneBytes(l.oldValues) }
func (l *Log) NewValues() []byte       { return cloneBytes(l.newValues) }

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
