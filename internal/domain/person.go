package domain

// Person is a networking contact. No two people are expected to share the
// same (FirstName, LastName) pair; this is checked at validation time only.
type Person struct {
	Base
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

// FullName returns "FirstName LastName".
func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}
