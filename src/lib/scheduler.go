package lib

import (
	"log"

	"github.com/go-co-op/gocron/v2"
)

var scheduler gocron.Scheduler

func GetScheduler() (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	scheduler = sched
	numJobs := len(sched.Jobs())
	log.Printf("Jobs in queue: %d\n", numJobs)
	return sched, nil
}

// CreateDailyJob runs handler every day at the given wall-clock time.
func CreateDailyJob(hour, minute uint, handler any, args ...any) (*string, error) {
	sched, err := GetScheduler()
	if err != nil {
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(handler, args...),
	)
	if err != nil {
		return nil, err
	}
	id := j.ID().String()
	return &id, nil
}

