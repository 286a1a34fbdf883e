package main

import (
	"context"
	"scanrunner/internal/config"
	"scanrunner/internal/ingest"
	"scanrunner/internal/notify"
	"scanrunner/internal/orchestrator"
	"scanrunner/internal/process"
	"scanrunner/internal/profile"
	"scanrunner/internal/report"
	"scanrunner/pkg/logger"
	"scanrunner/pkg/storage"

	"cloud.google.com/go/pubsub"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// getNotifier builds the sender registry from the notification config. Only
// channels with connection settings get a sender; a preference pointing at
// an unconfigured channel fails the notification, not the scan.
func getNotifier(ctx context.Context, cfg *config.Config, strg storage.AllStorage) (*notify.Notifier, func()) {
	n := cfg.Notification
	senders := map[string]notify.Sender{}
	var closers []func()

	if n.Mail.Host != "" {
		senders[notify.ChannelMail] = notify.NewMailSender(notify.MailOptions{
			Host:     n.Mail.Host,
			Port:     n.Mail.Port,
			Username: n.Mail.Username,
			Password: n.Mail.Password,
			From:     n.Mail.From,
		})
	}

	if n.PubSub.ProjectID != "" && n.PubSub.Topic != "" {
		client, err := pubsub.NewClient(ctx, n.PubSub.ProjectID)
		if err != nil {
			logger.Fatal(ctx, "could not create pubsub client", zap.Error(err))
		}
		topic := client.Topic(n.PubSub.Topic)
		senders[notify.ChannelPubSub] = notify.NewPubSubSender(topic)
		closers = append(closers, func() {
			topic.Stop()
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close pubsub client", zap.Error(err))
			}
		})
	}

	if n.AMQP.URL != "" {
		ch, closeAMQP, err := notify.DialAMQP(n.AMQP.URL, n.AMQP.Queue)
		if err != nil {
			logger.Fatal(ctx, "could not connect to amqp", zap.Error(err))
		}
		senders[notify.ChannelAMQP] = notify.NewAMQPSender(ch, n.AMQP.Exchange, n.AMQP.Queue)
		closers = append(closers, func() {
			if err := closeAMQP(); err != nil {
				logger.Warn(ctx, "could not close amqp connection", zap.Error(err))
			}
		})
	}

	if n.RatePerSecond > 0 {
		for id, s := range senders {
			senders[id] = notify.Throttle(s, rate.NewLimiter(rate.Limit(n.RatePerSecond), 1))
		}
	}

	channels := make([]notify.ChannelConfig, 0, len(n.Channels))
	for _, ch := range n.Channels {
		channels = append(channels, notify.ChannelConfig{ID: ch.ID, Name: ch.Name})
	}

	return notify.New(strg, notify.NewRegistry(channels, senders)), func() {
		for _, c := range closers {
			c()
		}
	}
}

// getOrchestrator wires the scan orchestrator on top of strg.
func getOrchestrator(ctx context.Context, cfg *config.Config, strg storage.Storage) (*orchestrator.Orchestrator, func()) {
	notifier, closeNotifier := getNotifier(ctx, cfg, strg)

	orch, err := orchestrator.New(orchestrator.Deps{
		Storage:  strg,
		Locator:  report.NewLocator(cfg.Scanner.ReportsDir),
		Resolver: profile.NewResolver(strg, profile.FileMaterializer{}),
		Launcher: process.ExecLauncher{},
		Ingester: ingest.New(strg),
		Notifier: notifier,
	}, orchestrator.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create orchestrator", zap.Error(err))
	}

	return orch, closeNotifier
}
