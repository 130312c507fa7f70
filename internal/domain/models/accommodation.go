package models

type Accommodation struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Price        int64  `json:"price"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Observations string `json:"observations"`
	CityID       int64  `json:"city_id"`
	TravelID     int64  `json:"travel_id"`
}

// AccommodationFull embeds the referenced City for single-item reads.
type AccommodationFull struct {
	Accommodation
	City City `json:"city"`
}

type AccommodationPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`
	Price        *int64  `json:"price"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Observations *string `json:"observations"`
	CityID       *int64  `json:"city_id"`
	TravelID     *int64  `json:"travel_id"`
}

func (p AccommodationPatch) Changes() ([]string, []any) {
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
	if p.Location != nil {
		cols = append(cols, "location")
		args = append(args, *p.Location)
	}
	if p.Price != nil {
		cols = append(cols, "price")
		args = append(args, *p.Price)
	}
	if p.StartDate != nil {
		cols = append(cols, "start_date")
		args = append(args, *p.StartDate)
	}
	if p.EndDate != nil {
		cols = append(cols, "end_date")
		args = append(args, *p.EndDate)
	}
	if p.Observations != nil {
		cols = append(cols, "observations")
		args = append(args, *p.Observations)
	}
	if p.CityID != nil {
		cols = append(cols, "city_id")
		args = append(args, *p.CityID)
	}
	if p.TravelID != nil {
		cols = append(cols, "travel_id")
		args = append(args, *p.TravelID)
	}
	return cols, args
}
