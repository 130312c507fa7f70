package models

type Transport struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	Company       string `json:"company"`
	Price         int64  `json:"price"`
	StartDate     string `json:"start_date"`
	StartLocation string `json:"start_location"`
	EndDate       string `json:"end_date"`
	EndLocation   string `json:"end_location"`
	StartCityID   int64  `json:"start_city_id"`
	EndCityID     int64  `json:"end_city_id"`
	TravelID      int64  `json:"travel_id"`
}

type TransportPatch struct {
	Type          *string `json:"type"`
	Company       *string `json:"company"`
	Price         *int64  `json:"price"`
	StartDate     *string `json:"start_date"`
	StartLocation *string `json:"start_location"`
	EndDate       *string `json:"end_date"`
	EndLocation   *string `json:"end_location"`
	StartCityID   *int64  `json:"start_city_id"`
	EndCityID     *int64  `json:"end_city_id"`
	TravelID      *int64  `json:"travel_id"`
}

func (p TransportPatch) Changes() ([]string, []any) {
	cols := []string{}
	args := []any{}
	if p.Type != nil {
		cols = append(cols, "type")
		args = append(args, *p.Type)
	}
	if p.Company != nil {
		cols = append(cols, "company")
		args = append(args, *p.Company)
	}
	if p.Price != nil {
		cols = append(cols, "price")
		args = append(args, *p.Price)
	}
	if p.StartDate != nil {
		cols = append(cols, "start_date")
		args = append(args, *p.StartDate)
	}
	if p.StartLocation != nil {
		cols = append(cols, "start_location")
		args = append(args, *p.StartLocation)
	}
	if p.EndDate != nil {
		cols = append(cols, "end_date")
		args = append(args, *p.EndDate)
	}
	if p.EndLocation != nil {
		cols = append(cols, "end_location")
		args = append(args, *p.EndLocation)
	}
	if p.StartCityID != nil {
		cols = append(cols, "start_city_id")
		args = append(args, *p.StartCityID)
	}
	if p.EndCityID != nil {
		cols = append(cols, "end_city_id")
		args = append(args, *p.EndCityID)
	}
	if p.TravelID != nil {
		cols = append(cols, "travel_id")
		args = append(args, *p.TravelID)
	}
	return cols, args
}
