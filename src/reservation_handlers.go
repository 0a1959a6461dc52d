package main

import (
	"errors"
	"log"
	"net/http"
	"venise/src/middlewares"
	"venise/src/models"
	"venise/src/services"
	"venise/src/types"

	"github.com/gin-gonic/gin"
)

func reservationStatusCode(err error) int {
	switch {
	case errors.Is(err, services.ErrUnitNotFound),
		errors.Is(err, services.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnitUnavailable):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidInterval),
		errors.Is(err, services.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// requesterID returns the authenticated user id, nil for guest bookings.
func requesterID(ctx *gin.Context) *uint {
	id := ctx.GetUint("id")
	if id == 0 {
		return nil
	}
	return &id
}

// canTouchReservation allows staff, and owners on their own rows. Guest
// reservations (no user id) are staff-only.
func canTouchReservation(ctx *gin.Context, res *models.Reservation) bool {
	if middlewares.IsStaff(ctx) {
		return true
	}
	uid := ctx.GetUint("id")
	return res.UserID != nil && *res.UserID == uid
}

func kindRoutes(kind types.ReservationKind) string {
	switch kind {
	case types.KIND_APARTMENT:
		return "/reservations/apartments"
	case types.KIND_EVENT_ROOM:
		return "/reservations/event-rooms"
	default:
		return "/reservations/rooms"
	}
}

// stayReservationHandlers registers the room and apartment booking routes,
// which share the same request shape. Creation is open to guests; the
// lifecycle routes are registered separately on the authorized group.
func stayReservationHandlers(g *gin.RouterGroup, kind types.ReservationKind) *gin.RouterGroup {
	base := kindRoutes(kind)
	g.
		POST(base, func(ctx *gin.Context) {
			var body types.CreateStayReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := reservationService.CreateStay(kind, &body, requesterID(ctx))
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": res})
		}).
		POST(base+"/check-availability", func(ctx *gin.Context) {
			var body types.CheckAvailabilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ok, price, err := reservationService.CheckAndPrice(kind, &body)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"available": ok, "total_price": price})
		})
	return g
}

// eventReservationHandlers registers event room bookings, which carry a date
// and a time slot instead of a date range.
func eventReservationHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	kind := types.KIND_EVENT_ROOM
	base := kindRoutes(kind)
	g.
		POST(base, func(ctx *gin.Context) {
			var body types.CreateEventReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := reservationService.CreateEvent(&body, requesterID(ctx))
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": res})
		}).
		POST(base+"/check-availability", func(ctx *gin.Context) {
			var body types.CheckAvailabilityRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			ok, price, err := reservationService.CheckAndPrice(kind, &body)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"available": ok, "total_price": price})
		})
	return g
}

// reservationCommonHandlers registers the lifecycle routes shared by all
// three kinds: list, detail, update, confirm, cancel, delete.
func reservationCommonHandlers(g *gin.RouterGroup, kind types.ReservationKind, base string) *gin.RouterGroup {
	g.
		GET(base, func(ctx *gin.Context) {
			var filters types.ReservationQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var userID *uint
			var hotelIDs []uint
			role := ctx.GetString("role")
			switch role {
			case string(types.ROLE_SUPERADMIN):
			case string(types.ROLE_ADMIN):
				hotelIDs = adminHotelIDs(ctx.GetUint("id"))
			default:
				userID = requesterID(ctx)
			}
			out, err := reservationService.Search(kind, &filters, userID, hotelIDs)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": out, "count": len(out)})
		}).
		GET(base+"/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			res, err := reservationService.Get(kind, params.ID)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			if !canTouchReservation(ctx, res) {
				ctx.Status(http.StatusForbidden)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": res})
		}).
		PATCH(base+"/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			var body types.UpdateReservationRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := reservationService.Get(kind, params.ID)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			if !canTouchReservation(ctx, res) {
				ctx.Status(http.StatusForbidden)
				return
			}
			// Status changes go through the dedicated routes for guests.
			if body.Status != nil && !middlewares.IsStaff(ctx) {
				ctx.JSON(http.StatusForbidden, gin.H{"error": "status can only be changed by staff"})
				return
			}
			updated, err := reservationService.Update(kind, params.ID, &body)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": updated})
		}).
		PUT(base+"/:id/confirm", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !middlewares.IsStaff(ctx) {
				ctx.Status(http.StatusForbidden)
				return
			}
			res, err := reservationService.Confirm(kind, params.ID)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": res})
		}).
		PUT(base+"/:id/cancel", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			res, err := reservationService.Get(kind, params.ID)
			if err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			if !canTouchReservation(ctx, res) {
				ctx.Status(http.StatusForbidden)
				return
			}
			if err := reservationService.Cancel(kind, params.ID); err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			ctx.Status(http.StatusOK)
		}).
		DELETE(base+"/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.Status(http.StatusBadRequest)
				return
			}
			if !middlewares.IsStaff(ctx) {
				ctx.Status(http.StatusForbidden)
				return
			}
			if err := reservationService.Delete(kind, params.ID); err != nil {
				ctx.JSON(reservationStatusCode(err), gin.H{"error": err.Error()})
				return
			}
			log.Printf("Reservation [%d] deleted by user [%d]\n", params.ID, ctx.GetUint("id"))
			ctx.Status(http.StatusOK)
		})
	return g
}
