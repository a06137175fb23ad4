package country

type Country struct {
	CountryID   string `gorm:"column:country_id;primaryKey;size:2"`
	CountryName string `gorm:"column:country_name;size:40;not null"`
	RegionID    int    `gorm:"column:region_id;not null;index"`
}

func (Country) TableName() string {
	return "countries"
}

// CountryDetail is the read shape: the row plus its region name resolved at
// read time, never stored.
type CountryDetail struct {
	Country
	RegionName string `gorm:"column:region_name"`
}
