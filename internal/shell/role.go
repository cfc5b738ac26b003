package shell

// Role classifies the signed-in user. It is a closed set of variants with
// Other as the catch-all, so callers switch on the concrete type.
type Role interface {
	role()
	String() string
}

type Admin struct{}

type User struct{}

// Other is any role the shell does not recognise. Name keeps the raw value
// for logging.
type Other struct {
	Name string
}

func (Admin) role() {}
func (User) role()  {}
func (Other) role() {}

func (Admin) String() string   { return "admin" }
func (User) String() string    { return "user" }
func (o Other) String() string { return o.Name }

// ParseRole never fails: anything other than the exact literals "admin" and
// "user" degrades to Other.
func ParseRole(raw string) Role {
	switch raw {
	case "admin":
		return Admin{}
	case "user":
		return User{}
	default:
		return Other{Name: raw}
	}
}
