package cron

import (
	"context"
	"log"
	"time"

	"garagehub/config"
	invoiceRepo "garagehub/database/repository/invoice"

	"github.com/hibiken/asynq"
)

const TypeInvoiceOverdueSweep = "invoice:overdue_sweep"

// InitSweepWorker runs the background job worker and its schedule. The only
// periodic job today is the invoice overdue sweep.
func InitSweepWorker(invoices invoiceRepo.InvoiceRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInvoiceOverdueSweep, handleOverdueSweep(invoices))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeInvoiceOverdueSweep, nil)); err != nil {
		log.Printf("[InvoiceSweep] Failed to register schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[InvoiceSweep] Scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[InvoiceSweep] Starting background worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[InvoiceSweep] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[InvoiceSweep] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleOverdueSweep(invoices invoiceRepo.InvoiceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		flipped, err := invoices.MarkOverdue(ctx, time.Now())
		if err != nil {
			log.Printf("[InvoiceSweep] Sweep failed: %v", err)
			return err
		}
		if flipped > 0 {
			log.Printf("[InvoiceSweep] Marked %d invoices overdue", flipped)
		}
		return nil
	}
}
