package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	m, err := NewMember("Petar Petrov", "M001", 2023)
	require.NoError(t, err)
	assert.Equal(t, "Petar Petrov", m.Name())
	assert.Equal(t, "M001", m.ID())
	assert.Equal(t, 2023, m.YearJoined())
	assert.Equal(t, "Petar Petrov (ID: M001, Joined: 2023)", m.String())
}

func TestNewMember_EmptyID(t *testing.T) {
	_, err := NewMember("Petar Petrov", "", 2023)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Member ID cannot be empty", verr.Error())
}

func TestNewMember_YearJoinedIsNotValidated(t *testing.T) {
	m, err := NewMember("Time Traveller", "T-1", -40)
	require.NoError(t, err)
	assert.Equal(t, -40, m.YearJoined())
}

func TestUnknownMember(t *testing.T) {
	m := UnknownMember()
	assert.Equal(t, "Unknown (ID: Unknown, Joined: 2000)", m.String())
	assert.NotEmpty(t, m.ID())
}
