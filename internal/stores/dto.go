package stores

import "github.com/angelmondragon/hrm-backend/pkg/db/models"

// StoreDTO is the public store projection.
type StoreDTO struct {
	StoreID         string   `json:"storeId"`
	StoreName       string   `json:"storeName"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	Radius          *float64 `json:"radius"`
	EffectiveRadius float64  `json:"effectiveRadius"`
}

// EffectiveRadius returns the store radius, or fallback when unset or not positive.
func EffectiveRadius(store models.Store, fallback float64) float64 {
	if store.Radius == nil || *store.Radius <= 0 {
		return fallback
	}
	return *store.Radius
}

func FromModel(store models.Store, fallbackRadius float64) StoreDTO {
	return StoreDTO{
		StoreID:         store.StoreID,
		StoreName:       store.StoreName,
		Latitude:        store.Latitude,
		Longitude:       store.Longitude,
		Radius:          store.Radius,
		EffectiveRadius: EffectiveRadius(store, fallbackRadius),
	}
}
