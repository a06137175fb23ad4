package location

type Location struct {
	LocationID    int    `gorm:"column:location_id;primaryKey;autoIncrement"`
	StreetAddress string `gorm:"column:street_address;size:40"`
	PostalCode    string `gorm:"column:postal_code;size:12"`
	City          string `gorm:"column:city;size:30;not null"`
	StateProvince string `gorm:"column:state_province;size:25"`
	CountryID     string `gorm:"column:country_id;size:2;not null;index"`
}

func (Location) TableName() string {
	return "locations"
}

type LocationDetail struct {
	Location
	CountryName string `gorm:"column:country_name"`
}
