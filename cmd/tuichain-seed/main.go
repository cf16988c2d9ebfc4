// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/optakt/tuichain-seed/client"
	"github.com/optakt/tuichain-seed/journal"
	"github.com/optakt/tuichain-seed/metrics"
	"github.com/optakt/tuichain-seed/metrics/output"
	"github.com/optakt/tuichain-seed/metrics/rcrowley"
	"github.com/optakt/tuichain-seed/models/tuichain"
	"github.com/optakt/tuichain-seed/relay"
	"github.com/optakt/tuichain-seed/scenario"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagAdminPassword string
		flagAdminUser     string
		flagJournal       string
		flagLevel         string
		flagMetrics       string
		flagPoll          time.Duration
		flagProgress      time.Duration
		flagRetries       uint
	)

	pflag.StringVar(&flagAdminPassword, "admin-password", "admin", "password of the marketplace administrator")
	pflag.StringVar(&flagAdminUser, "admin-user", "admin", "username of the marketplace administrator")
	pflag.StringVarP(&flagJournal, "journal", "j", "", "directory of the journal used to resume aborted runs (in-memory if empty)")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics server if empty)")
	pflag.DurationVarP(&flagPoll, "poll", "p", relay.DefaultConfig.PollInterval, "interval between transaction receipt checks")
	pflag.DurationVar(&flagProgress, "progress", 0, "interval between step timing summaries (only at the end if zero)")
	pflag.UintVarP(&flagRetries, "retries", "r", 0, "number of retries for failed API requests")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <api-url> <node-url> <alice-key> <bob-key> <charlie-key> <dough-key> <eve-key>\n", os.Args[0])
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	if flagPoll <= 0 {
		log.Error().Dur("poll", flagPoll).Msg("receipt poll interval must be positive")
		return failure
	}

	// Positional arguments are the API URL, the node URL and one key per user.
	args := pflag.Args()
	if len(args) != 7 {
		log.Error().Int("have", len(args)).Int("want", 7).Msg("invalid number of arguments")
		pflag.Usage()
		return failure
	}
	apiURL := args[0]
	nodeURL := args[1]
	keys, err := scenario.ParseKeys(args[2:])
	if err != nil {
		log.Error().Err(err).Msg("could not parse user keys")
		return failure
	}

	// The context is canceled on the first interrupt, which aborts whatever
	// request or receipt poll is in progress. A second interrupt forces exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-sig
		log.Info().Msg("tuichain seed aborting")
		cancel()
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// Initialize the node client and the API transport, both instrumented.
	registry := prometheus.NewRegistry()
	eth, err := ethclient.DialContext(ctx, nodeURL)
	if err != nil {
		log.Error().Str("node", nodeURL).Err(err).Msg("could not dial node")
		return failure
	}
	defer eth.Close()
	node, err := metrics.NewNode(eth, registry)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize node metrics")
		return failure
	}
	transport, err := metrics.NewHTTP(client.NewHTTP(log, flagRetries), registry)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize API metrics")
		return failure
	}

	if flagMetrics != "" {
		server := metrics.NewServer(log, flagMetrics, registry)
		go func() {
			err := server.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Stop(ctx)
		}()
	}

	// Open the journal of completed steps.
	jour, err := journal.Open(flagJournal)
	if err != nil {
		log.Error().Str("journal", flagJournal).Err(err).Msg("could not open journal")
		return failure
	}
	defer func() {
		err := jour.Close()
		if err != nil {
			log.Error().Err(err).Msg("could not close journal")
		}
	}()

	// Time each executed step and summarize the timings on exit.
	timer := rcrowley.NewTime("steps")
	out := output.New(log, flagProgress)
	out.Register(timer)
	out.Run()
	defer out.Stop()

	// Play the scenario.
	relayer := relay.New(log, node, relay.WithPollInterval(flagPoll))
	api := client.New(log, transport, apiURL, relayer)
	cfg := scenario.Config{
		Admin: tuichain.Credentials{
			Username: flagAdminUser,
			Password: flagAdminPassword,
		},
		Keys:  keys,
		Timer: timer,
	}
	seed := scenario.New(log, api, jour, cfg)

	log.Info().Str("api", apiURL).Str("node", nodeURL).Msg("tuichain seed starting")
	start := time.Now()
	_, err = seed.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("tuichain seed failed")
		return failure
	}
	log.Info().Dur("duration", time.Since(start)).Msg("tuichain seed done")

	return success
}
