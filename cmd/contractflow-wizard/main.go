package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/propdesk/go-contractflow/internal/config"
	"github.com/propdesk/go-contractflow/internal/wizard"
	"github.com/propdesk/go-contractflow/pkg/report"
	"github.com/propdesk/go-contractflow/pkg/submit"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (endpoint, timeout_seconds)")
	endpoint := flag.String("endpoint", "", "submission endpoint URL (overrides config)")
	verbose := flag.Bool("verbose", false, "log attempt transitions")
	flag.Parse()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	if *verbose {
		log.SetLevel(logrus.InfoLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("configuración inválida")
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}

	var transportOptions []submit.TransportOption
	if cfg.TimeoutSeconds > 0 {
		transportOptions = append(transportOptions, submit.WithTimeout(cfg.Timeout()))
	}
	transport := submit.NewHTTPTransport(cfg.Endpoint, transportOptions...)

	driver := wizard.NewSurveyDriver()
	pipeline, err := submit.New(
		transport,
		report.NewExcel(),
		wizard.NewConfirmer(driver),
		submit.WithNotifier(wizard.NewNotifier(driver)),
		submit.WithLogger(log),
	)
	if err != nil {
		log.WithError(err).Fatal("no se pudo armar el pipeline")
	}

	w, err := wizard.New(driver, pipeline, log)
	if err != nil {
		log.WithError(err).Fatal("no se pudo armar el asistente")
	}

	if err := w.Run(context.Background()); err != nil {
		if errors.Is(err, wizard.ErrInterrupted) {
			os.Exit(130)
		}
		log.WithError(err).Fatal("el asistente terminó con error")
	}
}
