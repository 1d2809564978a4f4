package attendance

// placeholder is what the dashboard shows for missing taps and
// unclassifiable sessions.
const placeholder = "--"

// RecordResponse is one resolved row as the dashboard consumes it.
type RecordResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	UserName  string  `json:"user_name"`
	UserRole  string  `json:"user_role"`
	Date      string  `json:"date"`
	TimeIn    string  `json:"time_in"`
	TimeOut   string  `json:"time_out"`
	Session   string  `json:"session"`
	Status    Status  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	Penalty   *string `json:"penalty,omitempty"`
	Synthetic bool    `json:"synthetic"`
}

// ResolvedRecord pairs a raw record with the outcome of one resolution pass.
type ResolvedRecord struct {
	Record  Record
	Status  Status
	Session Session
}

// Response converts a resolved record into its wire form.
func (rr ResolvedRecord) Response() RecordResponse {
	resp := RecordResponse{
		ID:        rr.Record.ID.String(),
		UserID:    rr.Record.UserID,
		UserName:  rr.Record.UserName,
		UserRole:  rr.Record.UserRole,
		Date:      rr.Record.Date.Format("2006-01-02"),
		TimeIn:    placeholder,
		TimeOut:   placeholder,
		Session:   placeholder,
		Status:    rr.Status,
		Notes:     rr.Record.Notes,
		Penalty:   rr.Record.Penalty,
		Synthetic: rr.Record.ID.IsSynthetic(),
	}
	if rr.Record.TimeIn != nil {
		resp.TimeIn = *rr.Record.TimeIn
	}
	if rr.Record.TimeOut != nil {
		resp.TimeOut = *rr.Record.TimeOut
	}
	if rr.Session != "" {
		resp.Session = string(rr.Session)
	}
	return resp
}

// DashboardView is the full payload of one refresh.
type DashboardView struct {
	Date       string           `json:"date"`
	Records    []RecordResponse `json:"records"`
	Backfilled int              `json:"backfilled"`
}
