package models

// Store is a physical location with its check-in geofence.
type Store struct {
	StoreID   string   `gorm:"column:store_id;primaryKey"`
	StoreName string   `gorm:"column:store_name;not null"`
	Latitude  float64  `gorm:"column:latitude;not null"`
	Longitude float64  `gorm:"column:longitude;not null"`
	Radius    *float64 `gorm:"column:radius"`
}

func (Store) TableName() string { return "stores" }
