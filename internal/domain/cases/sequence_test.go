package cases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatYearlySequence(t *testing.T) {
	assert.Equal(t, "2024-0007", FormatYearlySequence(2024, 7))
	assert.Equal(t, "2024-12345", FormatYearlySequence(2024, 12345))
}

func TestParseYearlySequence(t *testing.T) {
	year, n, err := ParseYearlySequence("2025-0042")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 42, n)

	for _, bad := range []string{"", "2025", "25-0001", "2025-01", "2025-0000", "abcd-0001"} {
		_, _, err := ParseYearlySequence(bad)
		assert.Error(t, err, bad)
	}
}

func TestCorrespondence_AssignSequenceOnce(t *testing.T) {
	c, err := NewCorrespondence(3, "الإدارة", "طلب كشف حساب", time.Time{}, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow, c.SentAt())

	require.NoError(t, c.AssignSequence(1, "2024-0001"))
	assert.Error(t, c.AssignSequence(2, "2024-0002"))
	assert.Equal(t, 1, c.CaseSequenceNumber())
	assert.Equal(t, "2024-0001", c.YearlySequenceNumber())
}

func TestNewCorrespondence_RequiresContent(t *testing.T) {
	_, err := NewCorrespondence(3, "", "   ", testNow, 1, testNow)
	assert.Error(t, err)
}

func TestNewAttachment_Validation(t *testing.T) {
	size := int64(-1)
	_, err := NewAttachment(1, "bill.pdf", "/files/bill.pdf", "pdf", "", &size, 1, testNow)
	assert.Error(t, err)

	_, err = NewAttachment(1, "", "/files/bill.pdf", "pdf", "", nil, 1, testNow)
	assert.Error(t, err)

	a, err := NewAttachment(1, " bill.pdf ", "/files/bill.pdf", "pdf", "فاتورة", nil, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, "bill.pdf", a.FileName())
}

func TestParseDateField(t *testing.T) {
	cases := map[string]DateField{
		"":             DateFieldCreated,
		"CreatedDate":  DateFieldCreated,
		"received":     DateFieldReceived,
		"ModifiedDate": DateFieldModified,
		"solved_date":  DateFieldSolved,
	}
	for in, want := range cases {
		got, err := ParseDateField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDateField("upload")
	assert.Error(t, err)
}

func TestSearchCriteria_IsComprehensive(t *testing.T) {
	assert.True(t, SearchCriteria{Mode: ParseSearchMode("شامل"), Term: "فاتورة"}.IsComprehensive())
	assert.False(t, SearchCriteria{Mode: SearchModeComprehensive, Term: "  "}.IsComprehensive())
	assert.False(t, SearchCriteria{Mode: SearchModeFields, Term: "x"}.IsComprehensive())
}
