package date

import (
	"fmt"
	"strings"
)

// Period is a well known calendar period, used to filter transactions.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

var periodNames = [...]string{"daily", "weekly", "monthly", "quarterly", "yearly"}

// periodAliases maps the accepted spellings to their period.
var periodAliases = map[string]Period{
	"daily": Daily, "day": Daily,
	"weekly": Weekly, "week": Weekly,
	"monthly": Monthly, "month": Monthly,
	"quarterly": Quarterly, "quarter": Quarterly,
	"yearly": Yearly, "year": Yearly,
}

func (p Period) String() string {
	if p < Daily || p > Yearly {
		panic(fmt.Sprintf("unknown period %d", p))
	}
	return periodNames[p]
}

// ParsePeriod parses a period name, like "month" or "monthly". It is case-insensitive.
func ParsePeriod(s string) (Period, error) {
	p, ok := periodAliases[strings.ToLower(s)]
	if !ok {
		return Daily, fmt.Errorf("unknown period %q", s)
	}
	return p, nil
}
