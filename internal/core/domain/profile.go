package domain

// Profile is a named role referenced by developers. It is immutable once built.
type Profile struct {
	id   int
	name string
}

func NewProfile(id int, name string) Profile {
	return Profile{id: id, name: name}
}

func (p Profile) ID() int {
	return p.id
}

func (p Profile) Name() string {
	return p.name
}

// String returns the display form of the profile, which is its name alone.
func (p Profile) String() string {
	return p.name
}
