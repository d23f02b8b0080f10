package personio

import (
	"strconv"
	"strings"
)

type AbsenceType struct {
	Object
	Name string
}

// String returns the name or the type name. Unlike BasicEmployee it does not fall back to the ID.
func (t AbsenceType) String() string {
	if t.Name != "" {
		return t.Name
	}
	return typeAbsenceType
}

// AbsencePeriod is one employee taking one kind of absence
type AbsencePeriod struct {
	Object
	Type     *AbsenceType
	Employee *BasicEmployee
}

func (p AbsencePeriod) String() string {
	return p.render(typeAbsencePeriod)
}

// AbsenceSummaryRecord is the balance of an absence type for one employee
type AbsenceSummaryRecord struct {
	BaseObject  any
	AbsenceType *AbsenceType
	Employee    *BasicEmployee
	Category    []string
	Balance     int
}

// String renders "<employee> - <absence type>: <balance>". Missing references are left out,
// the balance is always present.
func (r AbsenceSummaryRecord) String() string {
	var b strings.Builder
	if r.Employee != nil {
		b.WriteString(r.Employee.String())
	}
	if r.AbsenceType != nil {
		if s := r.AbsenceType.String(); s != "" {
			b.WriteString(" - ")
			b.WriteString(s)
		}
	}
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(r.Balance))
	return b.String()
}
