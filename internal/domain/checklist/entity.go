package checklist

import "time"

// Checklist is a reusable question template maintained elsewhere in the
// platform. Patrol drafts may pre-fill their question list from one.
type Checklist struct {
	ID        int64
	Name      string
	CheckType string
	CreatedAt time.Time
	UpdatedAt time.Time

	Questions []Question
}

// Question is one row of a checklist template. QType uses the platform's
// vocabulary (multiple, yesno, rating, input, description, emoji).
type Question struct {
	ID        int64
	Descr     string
	QType     string
	Mandatory bool
	Options   []string
}

const CheckTypePatrolling = "patrolling"
