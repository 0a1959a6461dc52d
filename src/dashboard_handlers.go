package main

import (
	"math"
	"net/http"
	"time"
	"venise/src/config"
	"venise/src/db"
	"venise/src/models"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

// dashboardHandlers serve the admin overview numbers. Admins see their own
// hotels; superadmins see everything.
func dashboardHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.GET("/dashboard/stats", func(ctx *gin.Context) {
		db := db.GetDb()

		var hotelIDs []uint
		if ctx.GetString("role") == string(types.ROLE_ADMIN) {
			hotelIDs = adminHotelIDs(ctx.GetUint("id"))
			if len(hotelIDs) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "you do not manage any hotel"})
				return
			}
		}

		countHotels := func() int64 {
			q := db.Model(&models.Hotel{})
			if len(hotelIDs) > 0 {
				q = q.Where("id IN (?)", hotelIDs)
			}
			var n int64
			q.Count(&n)
			return n
		}

		countModel := func(model any) int64 {
			q := db.Model(model)
			if len(hotelIDs) > 0 {
				q = q.Where("hotel_id IN (?)", hotelIDs)
			}
			var n int64
			q.Count(&n)
			return n
		}

		reservationQuery := func(kind types.ReservationKind) *countAndRevenue {
			q := db.
				Model(&models.Reservation{}).
				Where("kind = ?", kind).
				Where("status <> ?", types.RESERVATION_CANCELLED)
			if len(hotelIDs) > 0 {
				table := "rooms"
				switch kind {
				case types.KIND_APARTMENT:
					table = "apartments"
				case types.KIND_EVENT_ROOM:
					table = "event_rooms"
				}
				q = q.Where("unit_id IN (SELECT id FROM "+table+" WHERE hotel_id IN (?))", hotelIDs)
			}
			var out countAndRevenue
			q.Select("COUNT(id) AS count, COALESCE(SUM(total_price), 0) AS revenue").Scan(&out)
			return &out
		}

		rooms := reservationQuery(types.KIND_ROOM)
		apartments := reservationQuery(types.KIND_APARTMENT)
		events := reservationQuery(types.KIND_EVENT_ROOM)

		now := time.Now().UTC()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		var arrivalsToday int64
		arrivals := db.
			Model(&models.Reservation{}).
			Where("status = ?", types.RESERVATION_CONFIRMED).
			Where("check_in_date = ?", startOfDay)
		if len(hotelIDs) > 0 {
			arrivals = arrivals.Where(
				"unit_id IN (SELECT id FROM rooms WHERE hotel_id IN (?)) OR unit_id IN (SELECT id FROM apartments WHERE hotel_id IN (?))",
				hotelIDs, hotelIDs)
		}
		arrivals.Count(&arrivalsToday)

		ctx.JSON(http.StatusOK, gin.H{
			"hotels":     countHotels(),
			"rooms":      countModel(&models.Room{}),
			"apartments": countModel(&models.Apartment{}),
			"event_rooms": countModel(&models.EventRoom{}),
			"personnel":  countModel(&models.Personnel{}),
			"reservations": gin.H{
				"rooms":      rooms,
				"apartments": apartments,
				"event_rooms": events,
			},
			"total_revenue":  rooms.Revenue + apartments.Revenue + events.Revenue,
			"arrivals_today": arrivalsToday,
		})
	})

	g.GET("/dashboard/occupancy", func(ctx *gin.Context) {
		db := db.GetDb()

		var hotelIDs []uint
		if ctx.GetString("role") == string(types.ROLE_ADMIN) {
			hotelIDs = adminHotelIDs(ctx.GetUint("id"))
			if len(hotelIDs) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "you do not manage any hotel"})
				return
			}
		}

		now := time.Now().UTC()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		if v := ctx.Query("start_date"); v != "" {
			parsed, err := time.Parse(config.DATE_PARSE_FORMAT, v)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
				return
			}
			start = parsed
		}
		if v := ctx.Query("end_date"); v != "" {
			parsed, err := time.Parse(config.DATE_PARSE_FORMAT, v)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
				return
			}
			end = parsed
		}
		if !end.After(start) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be after start_date"})
			return
		}

		countUnits := func(model any) int64 {
			q := db.Model(model)
			if len(hotelIDs) > 0 {
				q = q.Where("hotel_id IN (?)", hotelIDs)
			}
			var n int64
			q.Count(&n)
			return n
		}
		units := countUnits(&models.Room{}) + countUnits(&models.Apartment{})
		windowNights := int64(end.Sub(start).Hours() / 24)

		var stays []models.Reservation
		q := db.
			Where("kind IN (?)", []types.ReservationKind{types.KIND_ROOM, types.KIND_APARTMENT}).
			Where("status <> ?", types.RESERVATION_CANCELLED).
			Where("check_out_date > ? AND check_in_date < ?", start, end)
		if len(hotelIDs) > 0 {
			q = q.Where(
				"(kind = ? AND unit_id IN (SELECT id FROM rooms WHERE hotel_id IN (?))) OR (kind = ? AND unit_id IN (SELECT id FROM apartments WHERE hotel_id IN (?)))",
				types.KIND_ROOM, hotelIDs, types.KIND_APARTMENT, hotelIDs)
		}
		if err := q.Find(&stays).Error; err != nil {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		var occupied int64
		for _, r := range stays {
			if r.CheckInDate == nil || r.CheckOutDate == nil {
				continue
			}
			from := *r.CheckInDate
			if from.Before(start) {
				from = start
			}
			to := *r.CheckOutDate
			if to.After(end) {
				to = end
			}
			if to.After(from) {
				occupied += int64(to.Sub(from).Hours() / 24)
			}
		}

		rate := 0.0
		if units > 0 && windowNights > 0 {
			rate = math.Round(float64(occupied)/float64(units*windowNights)*10000) / 100
		}
		ctx.JSON(http.StatusOK, gin.H{
			"start_date":      start.Format(config.DATE_PARSE_FORMAT),
			"end_date":        end.Format(config.DATE_PARSE_FORMAT),
			"units":           units,
			"window_nights":   windowNights,
			"occupied_nights": occupied,
			"occupancy_rate":  rate,
		})
	})
	return g
}

type countAndRevenue struct {
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}
