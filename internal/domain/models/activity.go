package models

type Activity struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	StartDatetime string `json:"start_datetime"`
	Price         int64  `json:"price"`
	Duration      int64  `json:"duration"`
	CityID        int64  `json:"city_id"`
	TravelID      int64  `json:"travel_id"`
}

// ActivityFull embeds the referenced City for single-item reads.
type ActivityFull struct {
	Activity
	City City `json:"city"`
}

type ActivityPatch struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Location      *string `json:"location"`
	StartDatetime *string `json:"start_datetime"`
	Price         *int64  `json:"price"`
	Duration      *int64  `json:"duration"`
	CityID        *int64  `json:"city_id"`
	TravelID      *int64  `json:"travel_id"`
}

func (p ActivityPatch) Changes() ([]string, []any) {
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
	if p.StartDatetime != nil {
		cols = append(cols, "start_datetime")
		args = append(args, *p.StartDatetime)
	}
	if p.Price != nil {
		cols = append(cols, "price")
		args = append(args, *p.Price)
	}
	if p.Duration != nil {
		cols = append(cols, "duration")
		args = append(args, *p.Duration)
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
