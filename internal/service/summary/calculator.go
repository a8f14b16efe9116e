package summary

import (
	"github.com/prodtrack/timecore-backend-go/internal/domain/breakrule"
	"github.com/prodtrack/timecore-backend-go/internal/domain/summary"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/timeutil"
)

// BreakdownWindow computes the break overlap of one minute-of-day window
// against the active rule set. baseMinutes is the wall-clock duration of
// the underlying span; the returned net is floored at zero so a break
// configuration can never produce negative work time.
//
// Overlapping rules are evaluated independently and their contributions
// summed without merging; administrators are expected to keep break
// windows disjoint.
func BreakdownWindow(startMin, endMin, baseMinutes int, rules []breakrule.Rule) (int, []summary.BreakOverlap) {
	var breaks []summary.BreakOverlap
	deducted := 0

	for _, rule := range rules {
		overlap := timeutil.OverlapMinutes(startMin, endMin, rule.Start, rule.End)
		if overlap == 0 {
			continue
		}
		breaks = append(breaks, summary.BreakOverlap{
			RuleName:       rule.Name,
			OverlapMinutes: overlap,
		})
		deducted += overlap
	}

	net := baseMinutes - deducted
	if net < 0 {
		net = 0
	}
	return net, breaks
}

// SpanNetMinutes computes the net minutes of an attendance span given as
// minute-of-day clock values. A clock-out earlier than clock-in is treated
// as wrapping past midnight rather than rejected.
func SpanNetMinutes(clockIn, clockOut int, rules []breakrule.Rule) int {
	base := timeutil.Duration(clockIn, clockOut)
	net, _ := BreakdownWindow(clockIn, clockOut, base, rules)
	return net
}
