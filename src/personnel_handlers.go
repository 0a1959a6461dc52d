package main

import (
	"errors"
	"log"
	"net/http"
	"time"
	"venise/src/config"
	"venise/src/db"
	"venise/src/models"
	"venise/src/personnel"
	"venise/src/types"
	"venise/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func personnelStatusCode(err error) int {
	switch {
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		return http.StatusNotFound
	case errors.Is(err, personnel.ErrDeviceMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, personnel.ErrAlreadyCheckedIn),
		errors.Is(err, personnel.ErrAlreadyCheckedOut),
		errors.Is(err, personnel.ErrNoCheckIn),
		errors.Is(err, personnel.ErrDuplicateEmployee),
		errors.Is(err, personnel.ErrPaymentsExist),
		errors.Is(err, personnel.ErrPaymentAlreadyPaid):
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

// attendanceHandlers are the badge-scan endpoints phones call. They carry no
// session; the QR id plus the device fingerprint authenticate the scan.
func attendanceHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/personnel/check-in", func(ctx *gin.Context) {
			var body types.AttendanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			att, err := personnelService.CheckIn(body.QRCodeID, body.DeviceID, time.Now().UTC())
			if err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"status": att.Status, "deduction": att.Deduction})
		}).
		POST("/personnel/check-out", func(ctx *gin.Context) {
			var body types.AttendanceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			att, err := personnelService.CheckOut(body.QRCodeID, body.DeviceID, time.Now().UTC())
			if err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"status": att.Status, "deduction": att.Deduction})
		})
	return g
}

// personnelHandlers register the staff management routes for admins.
func personnelHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/personnel", func(ctx *gin.Context) {
			var body types.CreatePersonnelRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			hotelIDs := adminHotelIDs(ctx.GetUint("id"))
			if len(hotelIDs) == 0 {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "you do not manage any hotel"})
				return
			}
			p, err := personnelService.Create(&body, hotelIDs[0])
			if err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": p})
		}).
		GET("/personnel", func(ctx *gin.Context) {
			db := db.GetDb()
			q := db.Model(&models.Personnel{})
			if ctx.GetString("role") == string(types.ROLE_ADMIN) {
				ids := adminHotelIDs(ctx.GetUint("id"))
				if len(ids) == 0 {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "you do not manage any hotel"})
					return
				}
				q = q.Where("hotel_id IN (?)", ids)
			}
			var staff []models.Personnel
			if err := q.Find(&staff).Error; err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": staff, "count": len(staff)})
		}).
		GET("/personnel/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var p models.Personnel
			if err := db.First(&p, params.ID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					ctx.Status(http.StatusNotFound)
					return
				}
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			if !ownsHotel(ctx, p.HotelID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": p})
		}).
		GET("/personnel/:id/badge", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var p models.Personnel
			if err := db.First(&p, params.ID).Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if !ownsHotel(ctx, p.HotelID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			filepath, err := utils.SaveQRCode(p.QRCodeID)
			if err != nil {
				ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
				return
			}
			ctx.FileAttachment(filepath, "badge.jpeg")
		}).
		GET("/personnel/device/:deviceId", func(ctx *gin.Context) {
			var params struct {
				DeviceID string `uri:"deviceId" binding:"required"`
			}
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			db := db.GetDb()
			var p models.Personnel
			if err := db.
				Where(&models.Personnel{PhoneDeviceID: params.DeviceID}).
				First(&p).
				Error; err != nil {
				ctx.JSON(http.StatusNotFound, gin.H{"error": "no personnel found for this device"})
				return
			}
			if !ownsHotel(ctx, p.HotelID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": p})
		}).
		POST("/personnel/justify", func(ctx *gin.Context) {
			var body types.JustifyAbsenceRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			day, err := time.Parse(config.DATE_PARSE_FORMAT, body.Date)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			db := db.GetDb()
			var p models.Personnel
			if err := db.First(&p, body.PersonnelID).Error; err != nil {
				ctx.Status(http.StatusNotFound)
				return
			}
			if !ownsHotel(ctx, p.HotelID) {
				ctx.Status(http.StatusForbidden)
				return
			}
			if err := personnelService.Justify(body.PersonnelID, day, body.Justification); err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusOK)
		}).
		POST("/personnel/generate-payments", func(ctx *gin.Context) {
			var body types.GeneratePaymentsRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var hotelIDs []uint
			if ctx.GetString("role") == string(types.ROLE_ADMIN) {
				hotelIDs = adminHotelIDs(ctx.GetUint("id"))
				if len(hotelIDs) == 0 {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": "you do not manage any hotel"})
					return
				}
			}
			count, err := personnelService.GeneratePayments(body.Month, body.Year, hotelIDs)
			if err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			log.Printf("Generated %d payroll rows for %d/%d\n", count, body.Month, body.Year)
			ctx.JSON(http.StatusOK, gin.H{"count": count})
		}).
		PUT("/personnel/payments/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			payment, err := personnelService.MarkPaymentPaid(params.ID)
			if err != nil {
				ctx.JSON(personnelStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": payment})
		})
	return g
}
