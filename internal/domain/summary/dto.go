package summary

// DailySummary is the derived reconciliation view for one (user, date).
// It is never persisted; every read recomputes it from the current
// attendance, work segment and active break rule data.
type DailySummary struct {
	UserID            string             `json:"user_id"`
	Date              string             `json:"date"`
	AttendanceMinutes int                `json:"attendance_minutes"`
	WorkMinutes       int                `json:"work_minutes"`
	DifferenceMinutes int                `json:"difference_minutes"`
	Segments          []SegmentBreakdown `json:"segments"`
}

// SegmentBreakdown shows how one work segment's net minutes were derived.
type SegmentBreakdown struct {
	SegmentID   string         `json:"segment_id"`
	BaseMinutes int            `json:"base_minutes"`
	Breaks      []BreakOverlap `json:"breaks"`
	NetMinutes  int            `json:"net_minutes"`
}

// BreakOverlap is the portion of one break rule that overlapped a segment.
type BreakOverlap struct {
	RuleName       string `json:"rule_name"`
	OverlapMinutes int    `json:"overlap_minutes"`
}
