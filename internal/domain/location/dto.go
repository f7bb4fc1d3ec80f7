package location

type LocationResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListLocationsResponse struct {
	Level     string             `json:"level"`
	ParentID  int64              `json:"parent_id"`
	Locations []LocationResponse `json:"locations"`
}
