package cron

import (
	"context"
	"log"
	"time"

	"beacon/config"
	"beacon/services/reminder"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderGenerate = "reminder:generate"

// InitReminderWorker runs the async worker and the hourly scheduler in
// the background.
func InitReminderWorker(gen reminder.Generator) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSchedulerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderGenerate, handleReminderTask(gen))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// The hourly tick. Scheduler enqueues, worker above runs the pass.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
		task := asynq.NewTask(TypeReminderGenerate, nil)
		if _, err := scheduler.Register("@every 1h", task); err != nil {
			log.Fatalf("[ReminderWorker] Failed to register schedule: %v", err)
		}
		if err := scheduler.Run(); err != nil {
			log.Fatalf("[ReminderWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleReminderTask(gen reminder.Generator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		log.Println("[ReminderHandler] Running scheduled reminder pass")

		// Never return the error: a failed pass must not be retried,
		// or partially-created notifications could double-send. The
		// next hourly tick picks up whatever is still unflagged.
		if err := gen.Run(ctx); err != nil {
			log.Printf("[ReminderHandler] Reminder pass failed: %v", err)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSchedulerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
