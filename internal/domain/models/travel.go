package models

type Travel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// TravelWithMembers is the read shape returned by the membership endpoints.
type TravelWithMembers struct {
	Travel
	Users []User `json:"users"`
}

type TravelPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (p TravelPatch) Changes() ([]string, []any) {
	cols := []string{}
	args := []any{}
	if p.Name != nil {
		cols = append(cols, "name")
		args = append(args, *p.Name)
	}
	if p.Description != nil {
		cols = append(cols, "description")
		args = append(args, *p.Description)
	}
	if p.StartDate != nil {
		cols = append(cols, "start_date")
		args = append(args, *p.StartDate)
	}
	if p.EndDate != nil {
		cols = append(cols, "end_date")
		args = append(args, *p.EndDate)
	}
	return cols, args
}
