package ws

// ProgressEvent is pushed to every connected client when a case's running
// total changes (manual donation or autopay).
type ProgressEvent struct {
	Type        string `json:"type"` // "case_progress"
	CaseID      uint   `json:"case_id"`
	Title       string `json:"title"`
	RaisedCents int64  `json:"raised_cents"`
	GoalCents   int64  `json:"goal_cents"`
	Status      string `json:"status"`
	UpdatedAt   int64  `json:"updated_at"`
}

// ProgressHub streams live fundraising progress to dashboard clients.
type ProgressHub struct {
	*Hub
}

func NewProgressHub() *ProgressHub {
	return &ProgressHub{Hub: NewHub()}
}

func (h *ProgressHub) Publish(ev ProgressEvent) {
	ev.Type = "case_progress"
	h.BroadcastAll(ev)
}
