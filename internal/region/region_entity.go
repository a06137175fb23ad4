package region

type Region struct {
	RegionID   int    `gorm:"column:region_id;primaryKey;autoIncrement"`
	RegionName string `gorm:"column:region_name;size:25;not null"`
}

func (Region) TableName() string {
	return "regions"
}
