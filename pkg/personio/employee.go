package personio

// BasicEmployee is the minimal view of a person used by absence records
type BasicEmployee struct {
	Object
	Name string
}

func NewBasicEmployee() *BasicEmployee {
	return &BasicEmployee{}
}

func NewBasicEmployeeWithID(id int) *BasicEmployee {
	return &BasicEmployee{Object: Object{ID: id}}
}

func (e BasicEmployee) String() string {
	if e.Name != "" {
		return e.Name
	}
	return e.render(typeBasicEmployee)
}
