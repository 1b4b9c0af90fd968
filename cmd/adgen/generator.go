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

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// timestampLayout formats the generation time in the file preamble.
const timestampLayout = "15:04:05 @ 2006.01.02"

// Pipeline is one independent generation unit that writes a single file.
type Pipeline struct {
	Name     string        // subcommand name, also recorded in the preamble
	Short    string        // one-line description for the CLI
	Filename string        // output file, relative to the output directory
	Imports  []string      // import paths the units need
	Units    func() []Unit // enumerates the units in emission order
}

// OperatorsPipeline emits the arithmetic operators of Ad.
var OperatorsPipeline = Pipeline{
	Name:     "operators",
	Short:    "Generate the arithmetic operators of Ad",
	Filename: "operators.gen.go",
	Imports:  []string{"math", "gonum.org/v1/gonum/mat"},
	Units:    operatorUnits,
}

// ScalarMatrixPipeline emits Ad * Matrix.
var ScalarMatrixPipeline = Pipeline{
	Name:     "scalar-matrix",
	Short:    "Generate scalar-by-matrix multiplication",
	Filename: "scalar_matrix.gen.go",
	Units:    scalarMatrixUnits,
}

// Pipelines returns every pipeline in a fixed order.
func Pipelines() []Pipeline {
	return []Pipeline{OperatorsPipeline, ScalarMatrixPipeline}
}

// Generator renders pipelines and writes their files.
type Generator struct {
	OutputDir string           // directory the files are written to
	Package   string           // package clause of the generated files
	Now       func() time.Time // clock for the preamble timestamp; time.Now if nil
	Logger    *zap.Logger      // nil disables logging
}

func (g *Generator) log() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// Render returns the formatted source of p. Apart from the timestamp line
// the result depends only on the descriptor tables.
func Render(p Pipeline, pkg string, now time.Time) ([]byte, error) {
	var buf bytes.Buffer

	// File header
	fmt.Fprintf(&buf, "// Code generated by adgen %s. DO NOT EDIT.\n", p.Name)
	fmt.Fprintf(&buf, "// Generated at %s.\n\n", now.Format(timestampLayout))
	fmt.Fprintf(&buf, "package %s\n", pkg)
	if len(p.Imports) > 0 {
		fmt.Fprintf(&buf, "\nimport (\n")
		for _, path := range p.Imports {
			fmt.Fprintf(&buf, "\t%q\n", path)
		}
		fmt.Fprintf(&buf, ")\n")
	}

	for _, u := range p.Units() {
		buf.WriteString(u.Source)
	}

	src, err := imports.Process(p.Filename, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", p.Filename, err)
	}
	return src, nil
}

// Run renders p and replaces its output file.
func (g *Generator) Run(p Pipeline) error {
	src, err := Render(p, g.Package, g.now())
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	g.log().Debug("Rendered pipeline",
		zap.String("pipeline", p.Name),
		zap.Int("bytes", len(src)))

	filename := filepath.Join(g.OutputDir, p.Filename)
	if err := writeFileAtomic(filename, src); err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	g.log().Info("Generated", zap.String("pipeline", p.Name), zap.String("path", filename))
	return nil
}

// RunAll runs every pipeline concurrently. Pipelines own disjoint files, so
// they need no coordination. A pipeline that has not started when ctx is
// canceled or another pipeline fails is skipped.
func (g *Generator) RunAll(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, p := range Pipelines() {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", p.Name, err)
			}
			return g.Run(p)
		})
	}
	return eg.Wait()
}

// writeFileAtomic writes data to a temporary file next to filename and
// renames it into place, so filename is either the old file or the complete
// new one.
func writeFileAtomic(filename string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
