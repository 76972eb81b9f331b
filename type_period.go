package ledger

// Period is a calendar period.
type Period int

// Periods supported by the reports.
const (
	Daily Period = iota
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Range returns the full period containing the date d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ToDate returns the range from the start of the period containing d up to d, included.
func (p Period) ToDate(d Date) Range {
	return Range{From: d.StartOf(p), To: d}
}

// Previous returns the full period just before the one containing d.
func (p Period) Previous(d Date) Range {
	return p.Range(d.StartOf(p).Add(-1))
}
