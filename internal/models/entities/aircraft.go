package entities

// Aircraft is a reference-store record keyed by its three-letter code.
type Aircraft struct {
	AircraftCode string `gorm:"column:aircraft_code;primaryKey;type:char(3)" json:"aircraft_code"`
	Model        string `gorm:"column:model;type:varchar(50);not null" json:"model"`
	Range        int    `gorm:"column:range;not null" json:"range"`
	SeatsTotal   int    `gorm:"column:seats_total" json:"seats_total"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircrafts"
}
