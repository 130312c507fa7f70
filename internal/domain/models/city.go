package models

type City struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type CityPatch struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
}

func (p CityPatch) Changes() ([]string, []any) {
	cols := []string{}
	args := []any{}
	if p.Name != nil {
		cols = append(cols, "name")
		args = append(args, *p.Name)
	}
	if p.Country != nil {
		cols = append(cols, "country")
		args = append(args, *p.Country)
	}
	return cols, args
}
