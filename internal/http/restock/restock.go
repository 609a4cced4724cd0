// Package restock collects low-stock events in redis during the day and
// mails the manager one restock summary each evening.
package restock

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marqedonuts/backoffice/internal/config"
	"github.com/marqedonuts/backoffice/internal/redissvc"
	"github.com/marqedonuts/backoffice/internal/report"
)

var (
	cfg config.Config

	rdb *redis.Client
	ctx = context.Background()
)

func SetConfig(c config.Config) {
	cfg = c
}

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	ctx = rs.Ctx()
}

// Event is one low-stock observation logged during the day.
type Event struct {
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Threshold   int       `json:"threshold"`
	Status      string    `json:"status"`
	Time        time.Time `json:"time"`
}

const DailyRestockLogKey = "restock:log:daily"

// LogAlert appends a low-stock observation to the daily log. A nil
// redis client (tests, redis disabled) makes this a no-op.
func LogAlert(a report.Alert) {
	if rdb == nil {
		return
	}
	entry := Event{
		ProductName: a.ProductName,
		Quantity:    a.CurrentQuantity,
		Threshold:   a.MinThreshold,
		Status:      string(a.Status),
		Time:        time.Now(),
	}
	data, _ := json.Marshal(entry)
	_ = rdb.RPush(ctx, DailyRestockLogKey, data).Err()
}

// StartDailySummary sleeps until end of day, mails the summary, and
// repeats every interval.
func StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 21, 0, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		SendDailySummary()
	}
}

// SendDailySummary drains the day's log and mails one aggregated report.
func SendDailySummary() {
	entries, err := rdb.LRange(ctx, DailyRestockLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = rdb.Del(ctx, DailyRestockLogKey).Err() // clear after reading

	var events []Event
	worst := map[string]Event{}
	for _, item := range entries {
		var e Event
		if err := json.Unmarshal([]byte(item), &e); err == nil {
			events = append(events, e)
			if prev, ok := worst[e.ProductName]; !ok || e.Quantity < prev.Quantity {
				worst[e.ProductName] = e
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Restock summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Low-stock events today: <strong>%d</strong></p>", len(events)))

	sb.WriteString("<h3>Needs ordering</h3><ul>")
	for name, e := range worst {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b>: down to %d (reorder at %d, %s)</li>",
			name, e.Quantity, e.Threshold, e.Status))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full log</h3><ul>")
	for _, e := range events {
		sb.WriteString(fmt.Sprintf("<li>%s: %d left at %s</li>",
			e.ProductName, e.Quantity, e.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")

	msg := strings.Join([]string{
		"From: " + cfg.AlertFrom,
		"To: " + cfg.AlertTo,
		"Subject: Daily restock report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		sb.String(),
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", cfg.SMTPServer, cfg.SMTPPort)
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPServer)
	if cfg.SMTPAuthDisabled {
		auth = nil
	}

	go func() {
		if err := smtp.SendMail(addr, auth, cfg.AlertFrom, []string{cfg.AlertTo}, []byte(msg)); err != nil {
			log.Printf("Failed to send restock summary: %v\n", err)
		} else {
			log.Println("📬 Daily restock summary sent via SMTP.")
		}
	}()
}
