package region

type CreateRegionRequest struct {
	RegionID   *int   `json:"region_id" binding:"omitempty,gt=0"`
	RegionName string `json:"region_name" binding:"required,max=25"`
}

type UpdateRegionRequest struct {
	RegionName *string `json:"region_name" binding:"omitempty,max=25"`
}

type RegionResponse struct {
	RegionID   int    `json:"region_id"`
	RegionName string `json:"region_name"`
}

// CountryOption is the child projection returned by /regions/:id/countries.
type CountryOption struct {
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
}
