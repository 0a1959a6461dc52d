package chatbot

import (
	"venise/src/models"

	"gorm.io/gorm"
)

// GormData answers catalogue questions straight from the database.
type GormData struct {
	DB *gorm.DB
}

func (d *GormData) HotelsByCity(city string) ([]HotelSummary, error) {
	var hotels []models.Hotel
	err := d.DB.
		Model(&models.Hotel{}).
		Where("LOWER(city) = ?", city).
		Order("stars desc, name asc").
		Find(&hotels).
		Error
	if err != nil {
		return nil, err
	}
	out := make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, HotelSummary{
			Name:  h.Name,
			Stars: h.Stars,
			City:  h.City,
			Phone: h.Phone,
			Email: h.Email,
		})
	}
	return out, nil
}

func (d *GormData) CheapestRooms(city string, limit int) ([]UnitSummary, error) {
	q := d.DB.
		Model(&models.Room{}).
		Select("rooms.room_number, rooms.room_type, rooms.price_per_night, hotels.name AS hotel_name, hotels.city").
		Joins("JOIN hotels ON rooms.hotel_id = hotels.id").
		Where("rooms.is_available = ?", true)
	if city != "" {
		q = q.Where("LOWER(hotels.city) = ?", city)
	}
	var rows []struct {
		RoomNumber    string
		RoomType      string
		PricePerNight float64
		HotelName     string
		City          string
	}
	if err := q.Order("rooms.price_per_night asc").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]UnitSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, UnitSummary{
			Label:     r.RoomNumber,
			Detail:    r.RoomType,
			HotelName: r.HotelName,
			City:      r.City,
			Price:     r.PricePerNight,
		})
	}
	return out, nil
}

func (d *GormData) CheapestApartments(city string, limit int) ([]UnitSummary, error) {
	q := d.DB.
		Model(&models.Apartment{}).
		Select("apartments.name, apartments.apartment_type, apartments.price_per_night, hotels.name AS hotel_name, hotels.city").
		Joins("JOIN hotels ON apartments.hotel_id = hotels.id").
		Where("apartments.is_available = ?", true)
	if city != "" {
		q = q.Where("LOWER(hotels.city) = ?", city)
	}
	var rows []struct {
		Name          string
		ApartmentType string
		PricePerNight float64
		HotelName     string
		City          string
	}
	if err := q.Order("apartments.price_per_night asc").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]UnitSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, UnitSummary{
			Label:     r.Name,
			Detail:    r.ApartmentType,
			HotelName: r.HotelName,
			City:      r.City,
			Price:     r.PricePerNight,
		})
	}
	return out, nil
}

func (d *GormData) EventVenues(city string, limit int) ([]UnitSummary, error) {
	q := d.DB.
		Model(&models.EventRoom{}).
		Select("event_rooms.name, event_rooms.capacity, event_rooms.rental_price, hotels.name AS hotel_name, hotels.city").
		Joins("JOIN hotels ON event_rooms.hotel_id = hotels.id").
		Where("event_rooms.is_available = ?", true)
	if city != "" {
		q = q.Where("LOWER(hotels.city) = ?", city)
	}
	var rows []struct {
		Name        string
		Capacity    int
		RentalPrice float64
		HotelName   string
		City        string
	}
	if err := q.Order("event_rooms.rental_price asc").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]UnitSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, UnitSummary{
			Label:     r.Name,
			HotelName: r.HotelName,
			City:      r.City,
			Price:     r.RentalPrice,
			Capacity:  r.Capacity,
		})
	}
	return out, nil
}

func (d *GormData) Stats(city string) (*CityStats, error) {
	var row struct {
		Hotels       int
		Rooms        int
		Apartments   int
		EventRooms   int
		AvgRoomPrice float64
		MinRoomPrice float64
		MaxRoomPrice float64
	}
	err := d.DB.Raw(`
		SELECT
			COUNT(DISTINCT h.id) AS hotels,
			COUNT(DISTINCT r.id) AS rooms,
			COUNT(DISTINCT a.id) AS apartments,
			COUNT(DISTINCT e.id) AS event_rooms,
			COALESCE(AVG(r.price_per_night), 0) AS avg_room_price,
			COALESCE(MIN(r.price_per_night), 0) AS min_room_price,
			COALESCE(MAX(r.price_per_night), 0) AS max_room_price
		FROM hotels h
		LEFT JOIN rooms r ON h.id = r.hotel_id
		LEFT JOIN apartments a ON h.id = a.hotel_id
		LEFT JOIN event_rooms e ON h.id = e.hotel_id
		WHERE LOWER(h.city) = ?`, city).
		Scan(&row).
		Error
	if err != nil {
		return nil, err
	}
	return &CityStats{
		Hotels:       row.Hotels,
		Rooms:        row.Rooms,
		Apartments:   row.Apartments,
		EventRooms:   row.EventRooms,
		AvgRoomPrice: row.AvgRoomPrice,
		MinRoomPrice: row.MinRoomPrice,
		MaxRoomPrice: row.MaxRoomPrice,
	}, nil
}
