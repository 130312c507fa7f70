package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch lists the fields a PATCH may change; nil pointers are left untouched.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (p UserPatch) Changes() ([]string, []any) {
	cols := []string{}
	args := []any{}
	if p.Name != nil {
		cols = append(cols, "name")
		args = append(args, *p.Name)
	}
	if p.Email != nil {
		cols = append(cols, "email")
		args = append(args, *p.Email)
	}
	return cols, args
}
