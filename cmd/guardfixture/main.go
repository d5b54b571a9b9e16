// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0


// Command guardfixture runs the literal fixture scenarios and prints a pass/fail line for each.
//
// The exit code is always 0, failures are only reported in the output.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"

	"fillmore-labs.com/guardchain/fixture"
)

const name = "guardfixture"

func main() {
	run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)

	verbose := flags.Bool("v", false, "log scenario arguments")
	filter := flags.String("run", "", "run only scenarios matching `regexp`")

	if err := flags.Parse(args); err != nil {
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fmt.Fprintf(stdout, "%s: start\n", name)
	defer fmt.Fprintf(stdout, "%s: exit\n", name)

	var match *regexp.Regexp
	if *filter != "" {
		var err error
		if match, err = regexp.Compile(*filter); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "Invalid scenario filter", slog.String("run", *filter), slog.Any("error", err))

			return
		}
	}

	var passed, failed int

	for _, s := range fixture.Scenarios() {
		if match != nil && !match.MatchString(s.Name) {
			continue
		}

		logger.LogAttrs(ctx, slog.LevelDebug, "Running scenario", slog.String("name", s.Name), slog.Any("args", s))

		v := s.Check()
		if v.Passed {
			passed++

			fmt.Fprintf(stdout, "PASS %s: %s\n", v.Name, v.Message)

			continue
		}

		failed++

		fmt.Fprintf(stdout, "FAIL %s: got %s, want %s\n", v.Name, v.Got, v.Want)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Scenarios done", slog.Int("passed", passed), slog.Int("failed", failed))
}
