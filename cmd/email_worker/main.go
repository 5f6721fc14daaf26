package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/morechaitanya606/ucia/config"
	"github.com/morechaitanya606/ucia/pkg/mailer"
)

// Consumes contact-form jobs from RabbitMQ and emails the site admin via
// Mailgun.
func main() {
	cfg := config.Load()
	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQContactQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}
	if cfg.AdminNotifyEmail == "" {
		log.Fatal("ADMIN_NOTIFY_EMAIL not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQContactQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQContactQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var job mailer.ContactJob
			if err := json.Unmarshal(msg.Body, &job); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			subject := fmt.Sprintf("New contact message from %s", job.Name)
			text := fmt.Sprintf(
				"From: %s <%s>\nReceived: %s\nProject: %s\n\n%s\n",
				job.Name, job.Email, job.ReceivedAt, job.ProjectRef, job.Message,
			)

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			if err := mg.Send(c, cfg.AdminNotifyEmail, subject, text, ""); err != nil {
				cancel()
				log.Printf("send failed for message %s: %v", job.MessageID, err)
				// requeue once; the broker drops it on a second failure
				_ = msg.Nack(false, !msg.Redelivered)
				continue
			}
			cancel()
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("email worker consuming %q", cfg.RabbitMQContactQueue)
	<-stop
	log.Println("shutting down email worker")
	_ = ch.Close()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
	}
}
