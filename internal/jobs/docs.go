// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to deliver pending order events from
// the outbox to Kafka and websocket clients
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, batchSize, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *". A run that is still
// delivering when the next tick fires makes that tick a no-op, so two relays
// never publish the same batch concurrently.
//
// # Error Handling
//
// A failed run is logged and the messages stay pending for the next tick.
package jobs
