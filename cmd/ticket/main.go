// Command ticket renders the receipt of a booking exported as JSON, the same
// document the API serves for download.
package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"rimbest/config"
	"rimbest/di"
	bookingModel "rimbest/internal/domains/booking/model"
	"rimbest/shared/logger"
	"rimbest/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	var (
		input    string
		output   string
		issuedAt string
		archive  bool
	)

	pflag.StringVarP(&input, "booking", "b", "", "path to the booking JSON returned by the booking server")
	pflag.StringVarP(&output, "out", "o", ".", "directory the PDF is written to")
	pflag.StringVar(&issuedAt, "issued-at", "", "issue date (YYYY-MM-DD), today when empty")
	pflag.BoolVar(&archive, "archive", false, "also upload the receipt and record it in the ledger")
	pflag.Parse()

	cfg := config.Get()

	logger.InitLogger(cfg)
	logger.SetLogLevel(cfg)

	if input == "" {
		log.Fatal().Msg("--booking is required")
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		log.Fatal().Err(err).Str("path", input).Msg("Failed to read booking")
	}

	var booking bookingModel.Booking
	if err := json.Unmarshal(raw, &booking); err != nil {
		log.Fatal().Err(err).Msg("Failed to decode booking")
	}

	issued := timezone.Now()

	if issuedAt != "" {
		if issued, err = timezone.Parse(time.DateOnly, issuedAt); err != nil {
			log.Fatal().Err(err).Msg("Invalid --issued-at")
		}
	}

	ctx := context.Background()
	ticket := di.InitializeTicket()

	artifact, err := ticket.Generate(ctx, booking, issued)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render ticket")
	}

	path := filepath.Join(output, artifact.FileName)
	if err := os.WriteFile(path, artifact.Content, 0o600); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write ticket")
	}

	log.Info().Str("path", path).Msg("Ticket written.")

	if !archive {
		return
	}

	receipt, err := ticket.Archive(ctx, artifact)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to archive ticket")
	}

	log.Info().Str("object_url", receipt.ObjectURL).Msg("Ticket archived.")
}
