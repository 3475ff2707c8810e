package library

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoan(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		due     string
		wantErr bool
	}{
		{"two weeks", "2025-11-03", "2025-11-17", false},
		{"same day", "2025-11-03", "2025-11-03", false},
		{"due before start", "2025-11-17", "2025-11-03", true},
		{"across years", "2024-12-31", "2025-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLoan("ISBN-001", "M001", tt.start, tt.due)
			if tt.wantErr {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "Due date cannot be earlier than start date", verr.Msg)
				return
			}
			require.NoError(t, err)
			assert.False(t, l.IsReturned())
			assert.Equal(t, "ISBN-001", l.ISBN())
			assert.Equal(t, "M001", l.MemberID())
			assert.Equal(t, tt.start, l.StartDate())
			assert.Equal(t, tt.due, l.DueDate())
			assert.NotEqual(t, uuid.Nil, l.ID())
		})
	}
}

func TestLoanMarkReturnedTwice(t *testing.T) {
	l, err := NewLoan("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)

	l.MarkReturned()
	l.MarkReturned()

	assert.True(t, l.IsReturned())
}

func TestLoanIsOverdue(t *testing.T) {
	l, err := NewLoan("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)

	assert.True(t, l.IsOverdue("2025-11-18"))
	assert.False(t, l.IsOverdue("2025-11-17"))
	assert.False(t, l.IsOverdue("2025-11-16"))

	l.MarkReturned()
	for _, today := range []string{"2025-11-16", "2025-11-18", "2099-01-01"} {
		assert.False(t, l.IsOverdue(today), today)
	}
}

func TestLoanString(t *testing.T) {
	l, err := NewLoan("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)
	assert.Equal(t, "Loan: ISBN-001 to M001, from 2025-11-03 to 2025-11-17 (active)", l.String())

	l.MarkReturned()
	assert.Equal(t, "Loan: ISBN-001 to M001, from 2025-11-03 to 2025-11-17 (returned)", l.String())
}

func TestLoansHaveDistinctIDs(t *testing.T) {
	a, err := NewLoan("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)
	b, err := NewLoan("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}
