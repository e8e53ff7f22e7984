package cases

import (
	"fmt"
	"strings"
	"time"
)

type Correspondence struct {
	id                   uint
	caseID               uint
	caseSequenceNumber   int
	yearlySequenceNumber string
	sender               string
	messageContent       string
	sentAt               time.Time
	createdByID          uint
	createdAt            time.Time
}

func NewCorrespondence(caseID uint, sender, content string, sentAt time.Time, createdByID uint, now time.Time) (*Correspondence, error) {
	if caseID == 0 {
		return nil, fmt.Errorf("case ID is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("message content is required")
	}
	if createdByID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}
	if sentAt.IsZero() {
		sentAt = now
	}

	return &Correspondence{
		caseID:         caseID,
		sender:         strings.TrimSpace(sender),
		messageContent: content,
		sentAt:         sentAt,
		createdByID:    createdByID,
		createdAt:      now,
	}, nil
}

func ReconstructCorrespondence(
	id, caseID uint,
	caseSequenceNumber int,
	yearlySequenceNumber string,
	sender, content string,
	sentAt time.Time,
	createdByID uint,
	createdAt time.Time,
) *Correspondence {
	return &Correspondence{
		id:                   id,
		caseID:               caseID,
		caseSequenceNumber:   caseSequenceNumber,
		yearlySequenceNumber: yearlySequenceNumber,
		sender:               sender,
		messageContent:       content,
		sentAt:               sentAt,
		createdByID:          createdByID,
		createdAt:            createdAt,
	}
}

// AssignSequence fixes both sequence numbers. They cannot change afterwards.
func (c *Correspondence) AssignSequence(caseSequence int, yearlySequence string) error {
	if c.caseSequenceNumber != 0 || c.yearlySequenceNumber != "" {
		return fmt.Errorf("sequence numbers are already assigned")
	}
	if caseSequence < 1 {
		return fmt.Errorf("case sequence number must be positive")
	}
	if _, _, err := ParseYearlySequence(yearlySequence); err != nil {
		return err
	}
	c.caseSequenceNumber = caseSequence
	c.yearlySequenceNumber = yearlySequence
	return nil
}

func (c *Correspondence) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("correspondence ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("correspondence ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Correspondence) ID() uint                     { return c.id }
func (c *Correspondence) CaseID() uint                 { return c.caseID }
func (c *Correspondence) CaseSequenceNumber() int      { return c.caseSequenceNumber }
func (c *Correspondence) YearlySequenceNumber() string { return c.yearlySequenceNumber }
func (c *Correspondence) Sender() string               { return c.sender }
func (c *Correspondence) MessageContent() string       { return c.messageContent }
func (c *Correspondence) SentAt() time.Time            { return c.sentAt }
func (c *Correspondence) CreatedByID() uint            { return c.createdByID }
func (c *Correspondence) CreatedAt() time.Time         { return c.createdAt }
