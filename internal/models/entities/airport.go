package entities

// Airport is a reference-store record keyed by its three-letter code.
type Airport struct {
	AirportCode string `gorm:"column:airport_code;primaryKey;type:char(3)" json:"airport_code"`
	AirportName string `gorm:"column:airport_name;type:varchar(100);not null" json:"airport_name"`
	City        string `gorm:"column:city;type:varchar(50);not null" json:"city"`
	Coordinates string `gorm:"column:coordinates;type:varchar(100);not null" json:"coordinates"`
	Timezone    string `gorm:"column:timezone;type:varchar(50);not null" json:"timezone"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
