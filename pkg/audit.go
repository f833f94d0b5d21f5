package pkg

import "time"

// ActorID is written to created_by / updated_by until there is a notion of users.
const ActorID = 1

type Audit struct {
	CreatedAt time.Time `json:"created_at"`
	CreatedBy int       `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy int       `json:"updated_by"`
}

func NewAudit(now time.Time) Audit {
	return Audit{
		CreatedAt: now,
		CreatedBy: ActorID,
		UpdatedAt: now,
		UpdatedBy: ActorID,
	}
}

func (a *Audit) Touch(now time.Time) {
	a.UpdatedAt = now
	a.UpdatedBy = ActorID
}
