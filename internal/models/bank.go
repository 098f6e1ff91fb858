package models

type Bank struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;size:100;not null" json:"name"`
	Location string `gorm:"column:location;size:100;not null" json:"location"`
}

func (Bank) TableName() string {
	return "banks"
}
