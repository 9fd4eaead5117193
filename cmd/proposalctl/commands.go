package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/neighborswap/proposal-exchange/config"
	"github.com/neighborswap/proposal-exchange/internal/proposals/client"
	"github.com/neighborswap/proposal-exchange/internal/proposals/domain"
	proposalshttp "github.com/neighborswap/proposal-exchange/internal/proposals/http"
)

func RunSubmit(args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	location := fs.String("location", "", "pickup location")
	start := fs.String("start", "", "window start, RFC 3339")
	end := fs.String("end", "", "window end, RFC 3339")
	fee := fs.String("fee", "", "optional fee, e.g. 5 or 2.50")
	_ = fs.Parse(args)

	sub, err := buildSubmission(*location, *start, *end, *fee)
	if err != nil {
		log.Fatalf("submit: %v", err)
	}

	cfg, c := mustClient()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.Submit(ctx, sub, credentials(cfg)); err != nil {
		log.Fatalf("submit: %v", err)
	}
	fmt.Println("submitted")
}

func RunList(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	acquirer := fs.String("acquirer", "", "only proposals for this acquirer id")
	_ = fs.Parse(args)

	var filter domain.Filter
	if *acquirer != "" {
		filter.AcquirerID = acquirer
	}

	cfg, c := mustClient()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	proposals, err := c.List(ctx, filter, credentials(cfg))
	if err != nil {
		log.Fatalf("list: %v", err)
	}
	if err := writeProposals(os.Stdout, proposals); err != nil {
		log.Fatalf("list: %v", err)
	}
}

// buildSubmission checks presence and window order the way the app's form does
func buildSubmission(location, start, end, fee string) (domain.Submission, error) {
	if location == "" || start == "" || end == "" {
		return domain.Submission{}, fmt.Errorf("-location, -start and -end are required")
	}
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("parse -start: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.Submission{}, fmt.Errorf("parse -end: %w", err)
	}
	if !endTime.After(startTime) {
		return domain.Submission{}, fmt.Errorf("-end must be after -start")
	}

	sub := domain.Submission{Location: location, StartTime: startTime, EndTime: endTime}
	if fee != "" {
		f, err := domain.ParseFee(fee)
		if err != nil {
			return domain.Submission{}, fmt.Errorf("parse -fee: %w", err)
		}
		sub.Fee = &f
	}
	return sub, nil
}

func writeProposals(w io.Writer, proposals []domain.Proposal) error {
	out := make([]proposalshttp.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, proposalshttp.ToProposalResponse(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func mustClient() (*config.Config, *client.Client) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	c := client.New(cfg.Store.BaseURL,
		client.WithResourcePath(cfg.Store.ResourcePath),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Store.Timeout}),
		client.WithHook(client.LogHook()),
	)
	return cfg, c
}

func credentials(cfg *config.Config) domain.Credentials {
	return domain.Credentials{APIKey: cfg.Store.APIKey, Token: cfg.Store.BearerToken()}
}
