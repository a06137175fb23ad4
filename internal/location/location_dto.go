package location

type CreateLocationRequest struct {
	LocationID    *int   `json:"location_id" binding:"omitempty,gt=0"`
	StreetAddress string `json:"street_address" binding:"omitempty,max=40"`
	PostalCode    string `json:"postal_code" binding:"omitempty,max=12"`
	City          string `json:"city" binding:"required,max=30"`
	StateProvince string `json:"state_province" binding:"omitempty,max=25"`
	CountryID     string `json:"country_id" binding:"required,len=2,alpha"`
}

type UpdateLocationRequest struct {
	StreetAddress *string `json:"street_address" binding:"omitempty,max=40"`
	PostalCode    *string `json:"postal_code" binding:"omitempty,max=12"`
	City          *string `json:"city" binding:"omitempty,max=30"`
	StateProvince *string `json:"state_province" binding:"omitempty,max=25"`
	CountryID     *string `json:"country_id" binding:"omitempty,len=2,alpha"`
}

type LocationResponse struct {
	LocationID    int    `json:"location_id"`
	StreetAddress string `json:"street_address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
	StateProvince string `json:"state_province"`
	CountryID     string `json:"country_id"`
	CountryName   string `json:"country_name,omitempty"`
}
