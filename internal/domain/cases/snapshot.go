package cases

import (
	"encoding/json"
	"fmt"
	"time"
)

// Snapshot is a flat value copy of a case used for audit old/new values.
// It carries no references to other aggregates.
type Snapshot struct {
	ID                 uint       `json:"id"`
	CustomerName       string     `json:"customer_name"`
	SubscriberNumber   string     `json:"subscriber_number,omitempty"`
	Phone              string     `json:"phone,omitempty"`
	Address            string     `json:"address,omitempty"`
	CategoryID         uint       `json:"category_id"`
	CategoryName       string     `json:"category_name,omitempty"`
	Status             string     `json:"status"`
	StatusLabel        string     `json:"status_label"`
	ProblemDescription string     `json:"problem_description,omitempty"`
	ActionsTaken       string     `json:"actions_taken,omitempty"`
	LastMeterReading   *float64   `json:"last_meter_reading,omitempty"`
	LastReadingDate    *time.Time `json:"last_reading_date,omitempty"`
	DebtAmount         *float64   `json:"debt_amount,omitempty"`
	ReceivedDate       *time.Time `json:"received_date,omitempty"`
	CreatedByID        uint       `json:"created_by_id"`
	CreatedByName      string     `json:"created_by_name,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	ModifiedByID       *uint      `json:"modified_by_id,omitempty"`
	ModifiedByName     string     `json:"modified_by_name,omitempty"`
	ModifiedAt         *time.Time `json:"modified_at,omitempty"`
	SolvedByID         *uint      `json:"solved_by_id,omitempty"`
	SolvedByName       string     `json:"solved_by_name,omitempty"`
	SolvedAt           *time.Time `json:"solved_at,omitempty"`
}

// NameLookup resolves display names captured into a snapshot. Missing
// entries leave the name empty.
type NameLookup struct {
	Categories map[uint]string
	Employees  map[uint]string
}

func (n NameLookup) employee(id *uint) string {
	if id == nil {
		return ""
	}
	return n.Employees[*id]
}

// Snapshot captures the current state of the case.
func (c *Case) Snapshot(names NameLookup) Snapshot {
	d := c.Details()
	m := c.Metadata()
	return Snapshot{
		ID:                 c.id,
		CustomerName:       d.CustomerName,
		SubscriberNumber:   d.SubscriberNumber,
		Phone:              d.Phone,
		Address:            d.Address,
		CategoryID:         d.CategoryID,
		CategoryName:       names.Categories[d.CategoryID],
		Status:             d.Status.String(),
		StatusLabel:        d.Status.Label(),
		ProblemDescription: d.ProblemDescription,
		ActionsTaken:       d.ActionsTaken,
		LastMeterReading:   d.LastMeterReading,
		LastReadingDate:    d.LastReadingDate,
		DebtAmount:         d.DebtAmount,
		ReceivedDate:       d.ReceivedDate,
		CreatedByID:        m.CreatedByID,
		CreatedByName:      names.Employees[m.CreatedByID],
		CreatedAt:          m.CreatedAt,
		ModifiedByID:       m.ModifiedByID,
		ModifiedByName:     names.employee(m.ModifiedByID),
		ModifiedAt:         m.ModifiedAt,
		SolvedByID:         m.SolvedByID,
		SolvedByName:       names.employee(m.SolvedByID),
		SolvedAt:           m.SolvedAt,
	}
}

// EncodeSnapshot serializes s for storage in the audit trail.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode case snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot is the inverse of EncodeSnapshot.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode case snapshot: %w", err)
	}
	return s, nil
}

// ChangedFields lists the JSON names of fields that differ between two
// snapshots, in declaration order.
func ChangedFields(before, after Snapshot) ([]string, error) {
	var a, b map[string]json.RawMessage
	beforeJSON, err := EncodeSnapshot(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := EncodeSnapshot(after)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(beforeJSON, &a); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(afterJSON, &b); err != nil {
		return nil, err
	}

	var changed []string
	for _, key := range snapshotFieldOrder {
		if string(a[key]) != string(b[key]) {
			changed = append(changed, key)
		}
	}
	return changed, nil
}

var snapshotFieldOrder = []string{
	"id", "customer_name", "subscriber_number", "phone", "address",
	"category_id", "category_name", "status", "status_label",
	"problem_description", "actions_taken", "last_meter_reading",
	"last_reading_date", "debt_amount", "received_date",
	"created_by_id", "created_by_name", "created_at",
	"modified_by_id", "modified_by_name", "modified_at",
	"solved_by_id", "solved_by_name", "solved_at",
}
