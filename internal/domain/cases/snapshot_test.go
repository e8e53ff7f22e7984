package cases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/orris-inc/casedesk/internal/domain/cases/valueobjects"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	debt := 320.5
	reading := 15872.0
	readingDate := time.UnixMilli(1709900000000).UTC()
	modifiedBy := uint(2)
	modifiedAt := time.UnixMilli(1710100000000).UTC()

	c := ReconstructCase(7, Details{
		CustomerName:     "أحمد",
		SubscriberNumber: "SN-100",
		Address:          "حي النصر",
		CategoryID:       4,
		Status:           vo.StatusInProgress,
		DebtAmount:       &debt,
		LastMeterReading: &reading,
		LastReadingDate:  &readingDate,
	}, Metadata{
		CreatedByID:  1,
		CreatedAt:    time.UnixMilli(1709000000000).UTC(),
		ModifiedByID: &modifiedBy,
		ModifiedAt:   &modifiedAt,
	})

	snap := c.Snapshot(NameLookup{
		Categories: map[uint]string{4: "مشكلة فواتير"},
		Employees:  map[uint]string{1: "مدير النظام", 2: "Sara"},
	})

	data, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	assert.Contains(t, string(data), "أحمد")

	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, snap, decoded)
	assert.Equal(t, "Sara", decoded.ModifiedByName)
	assert.Equal(t, "قيد التنفيذ", decoded.StatusLabel)
}

func TestChangedFields(t *testing.T) {
	c, err := NewCase(Details{CustomerName: "Ahmed", CategoryID: 3, Status: vo.StatusNew}, 1, testNow)
	require.NoError(t, err)
	require.NoError(t, c.SetID(9))
	before := c.Snapshot(NameLookup{})

	d := c.Details()
	d.Status = vo.StatusSolved
	require.NoError(t, c.Update(d, 2, nil, testNow.Add(time.Hour)))
	after := c.Snapshot(NameLookup{})

	changed, err := ChangedFields(before, after)
	require.NoError(t, err)
	assert.Equal(t, []string{"status", "status_label", "modified_by_id", "modified_at", "solved_by_id", "solved_at"}, changed)
}

func TestDecodeSnapshot_InvalidJSON(t *testing.T) {
	_, err := DecodeSnapshot([]byte("{not json"))
	assert.Error(t, err)
}
