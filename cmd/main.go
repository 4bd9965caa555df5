package main

import (
	"flag"

	"mail-retriever/internal/config"
	"mail-retriever/internal/logging"
	"mail-retriever/internal/models"
	"mail-retriever/internal/retriever"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML configuration file")
	what := flag.String("what", "first", "which messages to retrieve: first, last or all")
	count := flag.Int("count", 0, "how many messages to retrieve (0 uses the mode default)")
	order := flag.String("order", "", "result order hint: asc or desc")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	r := retriever.New(*cfg)
	logging.Log.Infof("Retrieving %s message(s) from %s on %s:%d", *what, cfg.Mailbox, cfg.Address, cfg.Port)

	emails, err := r.Find(retriever.FindOptions{
		What:  retriever.Mode(*what),
		Count: *count,
		Order: retriever.Order(*order),
		OnMessage: func(email *models.Email) {
			logging.Log.WithField("trace_id", email.TraceID).
				Infof("Message %d from %s: %s", email.ID, email.From, email.Subject)
		},
	})
	if err != nil {
		logging.Log.Fatalf("Retrieval failed: %v", err)
	}

	logging.Log.Infof("Retrieved %d message(s)", len(emails))
}
