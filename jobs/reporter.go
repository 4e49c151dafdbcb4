package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Reporter delivers job reports to the caller-supplied callback address.
// Delivery is best effort, at-least-once: a report that cannot be delivered
// after all attempts is logged process-side and dropped, and never changes
// the job's own outcome.
type Reporter struct {
	Client   *http.Client
	Attempts int
	Backoff  time.Duration
}

func NewReporter() *Reporter {
	return &Reporter{
		Client:   &http.Client{Timeout: 30 * time.Second},
		Attempts: 3,
		Backoff:  2 * time.Second,
	}
}

// Report posts the payload to callbackURL. It never returns an error into
// the executor.
func (r *Reporter) Report(ctx context.Context, callbackURL string, report Report) {
	body, err := json.Marshal(report)
	if err != nil {
		log.Errorf("[Reporter] Cannot marshal report for job %s: %s", report.JobID, err)
		return
	}

	for attempt := 1; attempt <= r.Attempts; attempt++ {
		if err := r.post(ctx, callbackURL, body); err == nil {
			log.Infof("[Reporter] Callback sent for job %s: %s", report.JobID, report.Status)
			return
		} else {
			log.Warnf("[Reporter] Attempt %d/%d for job %s failed: %s", attempt, r.Attempts, report.JobID, err)
		}

		if attempt < r.Attempts {
			select {
			case <-time.After(time.Duration(attempt) * r.Backoff):
			case <-ctx.Done():
				log.Errorf("[Reporter] Giving up on callback for job %s: %s", report.JobID, ctx.Err())
				return
			}
		}
	}

	log.Errorf("[Reporter] Failed to deliver %s callback for job %s after %d attempts", report.Status, report.JobID, r.Attempts)
}

func (r *Reporter) post(ctx context.Context, callbackURL string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}
	return nil
}
