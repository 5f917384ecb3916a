package domain

type Developer struct {
	ID        int
	LastName  string `validate:"required,max=50"`
	FirstName string `validate:"required,max=50"`
	Phone     string `validate:"max=15"`
	Email     string `validate:"required,email,max=100"`
	// Password carries plaintext on its way to storage only. Reads never populate it.
	Password string `validate:"max=100"`
	Profile  Profile
}

func NewDeveloper(id int, lastName, firstName, phone, email string, profile Profile) *Developer {
	return &Developer{
		ID:        id,
		LastName:  lastName,
		FirstName: firstName,
		Phone:     phone,
		Email:     email,
		Profile:   profile,
	}
}

// Admin holds the credentials of one authentication attempt.
type Admin struct {
	LastName  string
	FirstName string
	Password  string
}

func NewAdmin(lastName, firstName, password string) Admin {
	return Admin{LastName: lastName, FirstName: firstName, Password: password}
}
