// Package personio holds the data objects returned by the Personio HR API.
package personio

import "strconv"

const (
	typeObject        = "Object"
	typeBasicEmployee = "BasicEmployee"
	typeAbsenceType   = "AbsenceType"
	typeAbsencePeriod = "AbsencePeriod"
	typeAccessToken   = "AccessToken"
)

// Object is the common part of every Personio entity.
type Object struct {
	ID int
	// BaseObject keeps the record as it was received from the API. It is never interpreted.
	BaseObject any
}

func (o Object) String() string {
	return o.render(typeObject)
}

func (o Object) idText() string {
	if o.ID == 0 {
		return ""
	}
	return strconv.Itoa(o.ID)
}

func (o Object) render(typeName string) string {
	if s := o.idText(); s != "" {
		return s
	}
	return typeName
}
