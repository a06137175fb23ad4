package country

type CreateCountryRequest struct {
	CountryID   string `json:"country_id" binding:"required,len=2,alpha"`
	CountryName string `json:"country_name" binding:"required,max=40"`
	RegionID    int    `json:"region_id" binding:"required,gt=0"`
}

type UpdateCountryRequest struct {
	CountryName *string `json:"country_name" binding:"omitempty,max=40"`
	RegionID    *int    `json:"region_id" binding:"omitempty,gt=0"`
}

type CountryResponse struct {
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
	RegionID    int    `json:"region_id"`
	RegionName  string `json:"region_name,omitempty"`
}
