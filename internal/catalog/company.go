package catalog

import "notifier/internal/tracking"

// CompanyOpts holds the initial values of a Company.
type CompanyOpts struct {
	CrawlableOpts
	EmployeesMin int
	EmployeesMax int
}

// Company is a tracked company.
type Company struct {
	crawlable
	employeesMin int
	employeesMax int
}

// NewCompany constructs a Company. Construction does not notify.
func (c *Catalog) NewCompany(o CompanyOpts) *Company {
	e := &Company{employeesMin: o.EmployeesMin, employeesMax: o.EmployeesMax}
	e.init(o.CrawlableOpts)
	e.Bind(e, c.reg)
	return e
}

func (e *Company) TypeName() string  { return TypeCompany }
func (e *Company) EmployeesMin() int { return e.employeesMin }
func (e *Company) EmployeesMax() int { return e.employeesMax }

func (e *Company) SetEmployeesMin(v int) error {
	return tracking.Set(&e.Subject, FieldEmployeesMin, &e.employeesMin, v)
}

func (e *Company) SetEmployeesMax(v int) error {
	return tracking.Set(&e.Subject, FieldEmployeesMax, &e.employeesMax, v)
}

// SetField writes a field by name.
func (e *Company) SetField(name string, value any) error {
	switch name {
	case FieldEmployeesMin:
		return tracking.Assign(&e.Subject, name, &e.employeesMin, value)
	case FieldEmployeesMax:
		return tracking.Assign(&e.Subject, name, &e.employeesMax, value)
	}
	if ok, err := e.setField(name, value); ok {
		return err
	}
	return unknownField(TypeCompany, name)
}

func (e *Company) Relation(string) (tracking.Entity, bool) { return nil, false }

func (e *Company) Snapshot() tracking.Entity {
	cp := &Company{employeesMin: e.employeesMin, employeesMax: e.employeesMax}
	cp.copyFrom(&e.crawlable)
	return cp
}

func (e *Company) Fields() map[string]any {
	f := e.fields()
	f[FieldEmployeesMin] = e.employeesMin
	f[FieldEmployeesMax] = e.employeesMax
	return f
}

func (e *Company) String() string { return describe(TypeCompany, e.ID(), e.Fields()) }
