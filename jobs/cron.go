package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// DigestBroadcaster pushes the previous day's spend digest to users.
type DigestBroadcaster interface {
	BroadcastDailyDigest(m *melody.Melody) error
}

var digestBroadcaster DigestBroadcaster

// SetDigestBroadcaster installs the DigestBroadcaster implementation.
func SetDigestBroadcaster(broadcaster DigestBroadcaster) {
	digestBroadcaster = broadcaster
}

// InitCronJobs schedules the nightly digest at midnight.
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		if digestBroadcaster == nil {
			log.Println("digest broadcaster is not set, skipping")
			return
		}
		if err := digestBroadcaster.BroadcastDailyDigest(m); err != nil {
			log.Printf("daily digest failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
