package library

import "fmt"

// Member is a registered library patron.
type Member struct {
	name       string
	id         string
	yearJoined int
}

// NewMember requires a non-empty member ID. yearJoined is not range checked.
func NewMember(name, id string, yearJoined int) (Member, error) {
	if id == "" {
		return Member{}, invalid("Member ID cannot be empty")
	}
	return Member{name: name, id: id, yearJoined: yearJoined}, nil
}

// UnknownMember is the placeholder patron.
func UnknownMember() Member {
	return Member{name: "Unknown", id: "Unknown", yearJoined: 2000}
}

func (m Member) Name() string    { return m.name }
func (m Member) ID() string      { return m.id }
func (m Member) YearJoined() int { return m.yearJoined }

func (m Member) String() string {
	return fmt.Sprintf("%s (ID: %s, Joined: %d)", m.name, m.id, m.yearJoined)
}
