package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"tripcraft/internal/mailer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed deliveries.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 5 * time.Second
	// NotifyUpdateTimeout is the timeout for bookkeeping updates during error handling.
	NotifyUpdateTimeout = 5 * time.Second
)

// InvitationNotifier defines the interface for recording delivery outcomes.
type InvitationNotifier interface {
	MarkNotified(ctx context.Context, id primitive.ObjectID) error
}

// Processor processes invitation email jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	mailer       mailer.Service
	notifier     InvitationNotifier
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new invitation email job processor.
func NewProcessor(queue *MemoryQueue, mailSvc mailer.Service, notifier InvitationNotifier, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		mailer:      mailSvc,
		notifier:    notifier,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Invitation mail processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Invitation mail processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

func (p *Processor) processJob(ctx context.Context, job InviteEmailJob) {
	log.Printf("Processing invitation mail for %s (attempt %d)", job.InvitationID.Hex(), job.RetryCount+1)

	err := p.mailer.SendInvitation(ctx, mailer.InvitationMail{
		Recipient:  job.Recipient,
		SenderName: job.SenderName,
		TripName:   job.TripName,
		Code:       job.Code,
		ShareLink:  job.ShareLink,
		ExpiresAt:  job.ExpiresAt,
	})
	if err != nil {
		log.Printf("Mail delivery failed for invitation %s: %v", job.InvitationID.Hex(), err)
		p.handleFailure(job)
		return
	}

	// Record delivery time on the invitation
	updateCtx, cancel := context.WithTimeout(context.Background(), NotifyUpdateTimeout)
	defer cancel()
	if err := p.notifier.MarkNotified(updateCtx, job.InvitationID); err != nil {
		log.Printf("Failed to mark invitation %s as notified: %v", job.InvitationID.Hex(), err)
	}

	log.Printf("Invitation mail delivered for %s", job.InvitationID.Hex())
}

func (p *Processor) handleFailure(job InviteEmailJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		// Max retries reached, give up. The invitation itself stays valid;
		// the recipient can still be reached through the share link.
		log.Printf("Max retries reached for invitation %s, dropping mail job", job.InvitationID.Hex())
		return
	}

	// Calculate exponential backoff delay
	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))
	log.Printf("Retrying invitation %s in %v (attempt %d/%d)", job.InvitationID.Hex(), delay, job.RetryCount+1, MaxRetries)

	// Schedule retry with delay. Uses shutdownCh instead of ctx to allow
	// in-flight retries to complete during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay for invitation %s, dropping mail job", job.InvitationID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue mail job for invitation %s: %v", job.InvitationID.Hex(), err)
			}
		}
	}()
}
