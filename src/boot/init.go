package boot

import (
	"log"
	"time"
	"venise/src/db"
	"venise/src/lib"
	"venise/src/lib/mailer"
	"venise/src/models"
	"venise/src/personnel"
	"venise/src/services"
	"venise/src/types"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Apartment{},
		&models.EventRoom{},
		&models.Reservation{},
		&models.Personnel{},
		&models.Attendance{},
		&models.Payment{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler starts the recurring jobs: arrival reminders each morning
// and the absence sweep after the night shift has started.
func InitScheduler(store services.ReservationStore, staff *personnel.Service) {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}

	if _, err := lib.CreateDailyJob(9, 0, func() {
		sendArrivalReminders(store)
	}); err != nil {
		log.Printf("Error scheduling reminder job: %s\n", err.Error())
	}

	if _, err := lib.CreateDailyJob(18, 0, func() {
		if _, err := staff.MarkAbsentees(time.Now().UTC()); err != nil {
			log.Printf("Error marking absentees: %s\n", err.Error())
		}
	}); err != nil {
		log.Printf("Error scheduling absence job: %s\n", err.Error())
	}

	jobsWaitingInQueue := len(sched.Jobs())
	log.Println("Jobs in queue:", jobsWaitingInQueue)
	sched.Start()
}

// sendArrivalReminders mails guests whose confirmed stay or event starts
// within the next two days.
func sendArrivalReminders(store services.ReservationStore) {
	m := mailer.New()
	until := time.Now().UTC().AddDate(0, 0, 2)
	sent := 0
	for _, kind := range []types.ReservationKind{types.KIND_ROOM, types.KIND_APARTMENT, types.KIND_EVENT_ROOM} {
		upcoming, err := services.UpcomingArrivals(store, kind, until)
		if err != nil {
			log.Printf("Error listing upcoming arrivals for %s: %s\n", kind, err.Error())
			continue
		}
		for i := range upcoming {
			m.SendArrivalReminder(&upcoming[i])
			sent++
		}
	}
	log.Printf("Sent %d arrival reminders\n", sent)
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	if err := sched.Shutdown(); err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
	}
}
