package users

// User es una cuenta del sitio. Password guarda un hash bcrypt; las cuentas
// antiguas pueden traer la contraseña en claro hasta su próximo login.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Public es lo que se devuelve por HTTP (sin password).
type Public struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (u User) Public() Public {
	return Public{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
