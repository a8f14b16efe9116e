package attendance

// ClockInRequest carries a clock-in action for the current day.
type ClockInRequest struct {
	UserID string `json:"user_id"`
	Device string `json:"device"`
}

// ClockOutRequest carries a clock-out action for the current day.
type ClockOutRequest struct {
	UserID string `json:"user_id"`
	Device string `json:"device"`
}

// UpdateRecordRequest is a supervisor correction of an existing record.
// Nil fields are left unchanged; clock values are "HH:MM".
type UpdateRecordRequest struct {
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	ClockIn  *string `json:"clock_in"`
	ClockOut *string `json:"clock_out"`
	Device   *string `json:"device"`
}

// RecordResponse is the wire shape of an attendance record. Clock values
// are rendered as "HH:MM".
type RecordResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	ClockIn     string  `json:"clock_in"`
	ClockOut    *string `json:"clock_out"`
	WorkMinutes *int    `json:"work_minutes"`
	Device      string  `json:"device"`
}
