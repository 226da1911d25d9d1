package models

import "time"

// Team defines the team model based on the 'teams' table. The leader is
// fixed at creation and is not counted among the members. Interests are a
// snapshot of the leader's interests when the team was created.
type Team struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	LeaderID  string    `json:"leaderId" db:"leader_id"`
	Status    Status    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	LeaderName string       `json:"leaderName"`
	MemberIDs  []string     `json:"memberIds"`
	Members    []TeamMember `json:"members"`
	Interests  []string     `json:"interests"`
}

// TeamMember is the member projection embedded in team responses.
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
