package main

import (
	"errors"
	"log"
	"net/http"
	"venise/src/db"
	"venise/src/models"
	"venise/src/types"
	"venise/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// adminHotelIDs lists the hotels an admin manages, used to scope queries.
func adminHotelIDs(userID uint) []uint {
	db := db.GetDb()
	var ids []uint
	if err := db.
		Model(&models.Hotel{}).
		Where(&models.Hotel{AdminID: userID}).
		Pluck("id", &ids).
		Error; err != nil {
		log.Printf("Error listing hotels for admin [%d]: %s\n", userID, err.Error())
	}
	return ids
}

func ownsHotel(ctx *gin.Context, hotelID uint) bool {
	role := ctx.GetString("role")
	if role == string(types.ROLE_SUPERADMIN) {
		return true
	}
	for _, id := range adminHotelIDs(ctx.GetUint("id")) {
		if id == hotelID {
			return true
		}
	}
	return false
}

// publicHotelHandlers expose the browsable catalogue.
func publicHotelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		GET("/hotels", func(ctx *gin.Context) {
			var query struct {
				City  string `form:"city"`
				Stars int    `form:"stars"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			q := db.Model(&models.Hotel{})
			if query.City != "" {
				q = q.Where("LOWER(city) = LOWER(?)", query.City)
			}
			if query.Stars > 0 {
				q = q.Where("stars = ?", query.Stars)
			}
			var hotels []models.Hotel
			if err := q.Order("stars desc, name asc").Find(&hotels).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotels, "count": len(hotels)})
		}).
		GET("/hotels/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var hotel models.Hotel
			if err := db.
				Where(&models.Hotel{ID: params.ID}).
				Preload("Rooms").
				Preload("Apartments").
				Preload("EventRooms").
				First(&hotel).
				Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": hotel})
		}).
		GET("/hotels/:id/rooms", func(ctx *gin.Context) {
			listUnits(ctx, &[]models.Room{})
		}).
		GET("/hotels/:id/apartments", func(ctx *gin.Context) {
			listUnits(ctx, &[]models.Apartment{})
		}).
		GET("/hotels/:id/event-rooms", func(ctx *gin.Context) {
			listUnits(ctx, &[]models.EventRoom{})
		})
	return g
}

func listUnits(ctx *gin.Context, dest any) {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	db := db.GetDb()
	if err := db.
		Where("hotel_id = ?", params.ID).
		Find(dest).
		Error; err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": dest})
}

// hotelAdminHandlers register the catalogue management routes. The route
// group already requires the admin or superadmin role.
func hotelAdminHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/hotels", func(ctx *gin.Context) {
			var body types.CreateHotelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotel := models.Hotel{
				Name:    body.Name,
				Slug:    utils.MakeSlug(body.Name),
				Stars:   body.Stars,
				Email:   body.Email,
				Phone:   body.Phone,
				City:    body.City,
				Country: body.Country,
				AdminID: ctx.GetUint("id"),
			}
			if body.Description != "" {
				hotel.Description = &body.Description
			}
			if body.Website != "" {
				hotel.Website = &body.Website
			}
			db := db.GetDb()
			if err := db.Create(&hotel).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": hotel})
		}).
		POST("/hotels/:id/rooms", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !ownsHotel(ctx, params.ID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			var body types.CreateRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			room := models.Room{
				RoomNumber:    body.RoomNumber,
				RoomType:      body.RoomType,
				Capacity:      body.Capacity,
				PricePerNight: body.PricePerNight,
				IsAvailable:   true,
				HotelID:       params.ID,
			}
			if body.Description != "" {
				room.Description = &body.Description
			}
			db := db.GetDb()
			if err := db.Create(&room).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": room})
		}).
		POST("/hotels/:id/apartments", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !ownsHotel(ctx, params.ID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			var body types.CreateApartmentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			apt := models.Apartment{
				Name:          body.Name,
				ApartmentType: body.ApartmentType,
				Capacity:      body.Capacity,
				RoomCount:     body.RoomCount,
				HasWifi:       body.HasWifi,
				PricePerNight: body.PricePerNight,
				IsAvailable:   true,
				HotelID:       params.ID,
			}
			if body.Description != "" {
				apt.Description = &body.Description
			}
			db := db.GetDb()
			if err := db.Create(&apt).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": apt})
		}).
		POST("/hotels/:id/event-rooms", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !ownsHotel(ctx, params.ID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			var body types.CreateEventRoomRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			er := models.EventRoom{
				Name:        body.Name,
				Capacity:    body.Capacity,
				RentalPrice: body.RentalPrice,
				IsAvailable: true,
				HotelID:     params.ID,
			}
			if body.Description != "" {
				er.Description = &body.Description
			}
			db := db.GetDb()
			if err := db.Create(&er).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": er})
		}).
		PUT("/hotels/:id/units/:kind/:unitId/availability", func(ctx *gin.Context) {
			var params struct {
				ID     uint   `uri:"id" binding:"required"`
				Kind   string `uri:"kind" binding:"required,oneof=rooms apartments event-rooms"`
				UnitID uint   `uri:"unitId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if !ownsHotel(ctx, params.ID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			var body struct {
				IsAvailable *bool `json:"is_available" binding:"required"`
			}
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var model any
			switch params.Kind {
			case "apartments":
				model = &models.Apartment{}
			case "event-rooms":
				model = &models.EventRoom{}
			default:
				model = &models.Room{}
			}
			db := db.GetDb()
			result := db.
				Model(model).
				Where("id = ? AND hotel_id = ?", params.UnitID, params.ID).
				Update("is_available", *body.IsAvailable)
			if result.Error != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": result.Error.Error()})
				return
			}
			if result.RowsAffected == 0 {
				ctx.Status(http.StatusNotFound)
				return
			}
			ctx.Status(http.StatusOK)
		})
	return g
}
