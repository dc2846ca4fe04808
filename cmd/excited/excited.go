// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/synd"
)

var (
	trace      bool
	maxClients int
	path       string
	verify     bool
	workers    int
	grace      time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "excited <addr>",
	Short:         "Run an excitation synthesis server",
	Long:          usage,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          serve,
}

func init() {
	fs := rootCmd.Flags()
	fs.BoolVar(&trace, "trace", false, "log every request")
	fs.IntVar(&maxClients, "max-clients", 0, "requests synthesized at once, number of cpus if 0")
	fs.StringVar(&path, "path", "canonical", "default expressions to synthesize (canonical, minimized, both)")
	fs.BoolVar(&verify, "verify", false, "check every result with the SAT solver by default")
	fs.IntVar(&workers, "workers", 0, "equations synthesized at once per request")
	fs.DurationVar(&grace, "grace", 10*time.Second, "time given to running requests on shutdown")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "excited: %s\n", err)
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if trace {
		log.SetLevel(logrus.DebugLevel)
	}
	p, err := design.ParsePath(path)
	if err != nil {
		return err
	}
	s := synd.New(
		synd.WithLogger(log),
		synd.WithMaxClients(maxClients),
		synd.WithOptions(design.Options{Path: p, Verify: verify, Workers: workers}))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	go func() {
		defer close(done)
		sig, ok := <-sigs
		if !ok {
			return
		}
		log.WithField("signal", sig.String()).Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.WithError(err).Error("shutdown")
		}
	}()

	addr := synd.ParseAddr(args[0])
	log.WithField("addr", addr.String()).Info("serving")
	if err := s.ListenAndServe(args[0]); err != nil {
		return err
	}
	<-done
	return nil
}
