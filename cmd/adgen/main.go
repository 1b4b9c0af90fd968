// Copyright 2025 go-hessian Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command adgen writes the generated operator files of package ad.
//
// Each subcommand is one pipeline and writes one file at a fixed path
// relative to the working directory:
//
//	adgen operators      # operators.gen.go
//	adgen scalar-matrix  # scalar_matrix.gen.go
//	adgen all            # both, concurrently
//
// It is normally run through go generate in the ad directory.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adgen",
	Short: "Generate the operator implementations of package ad",
	Long: `adgen emits every by-value/by-reference variant of the arithmetic
operators of ad.Ad, and of scalar-by-matrix multiplication, from one
derivative rule per operator.

Generated files are overwritten wholesale; a failed run leaves the
previous file in place.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every pipeline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newGenerator().RunAll(cmd.Context())
	},
}

func pipelineCmd(p Pipeline) *cobra.Command {
	return &cobra.Command{
		Use:   p.Name,
		Short: p.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newGenerator().Run(p)
		},
	}
}

func newGenerator() *Generator {
	return &Generator{
		OutputDir: ".",
		Package:   "ad",
		Now:       time.Now,
		Logger:    logger,
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	for _, p := range Pipelines() {
		rootCmd.AddCommand(pipelineCmd(p))
	}
	rootCmd.AddCommand(allCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if logger != nil {
			logger.Error("Generation failed", zap.Error(err))
			_ = logger.Sync()
		}
		os.Exit(1)
	}
}
