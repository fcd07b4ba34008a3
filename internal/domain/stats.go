package domain

type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count"    json:"count"`
}

type AdminStats struct {
	Users        int64
	Services     int64
	Bookings     int64
	Revenue      float64
	ServiceStats []CategoryCount
}
