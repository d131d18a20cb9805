// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// batchflow-demo runs a short augmentation chain over a synthetic image
// batch and logs each action, as a smoke test for the library.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lostluck.dev/batchflow-go"
	"lostluck.dev/batchflow-go/synthetic"
)

// Config handles configuring the demo run.
type Config struct {
	Records int
	Height  int
	Width   int
	Workers int
}

func initFlags() *Config {
	var cfg Config
	flag.IntVar(&cfg.Records, "records", 32, "number of records in the synthetic batch")
	flag.IntVar(&cfg.Height, "height", 64, "synthetic image height")
	flag.IntVar(&cfg.Width, "width", 64, "synthetic image width")
	flag.IntVar(&cfg.Workers, "workers", 0, "worker pool size, 0 for one per CPU")
	return &cfg
}

func main() {
	cfg := initFlags()
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := synthetic.Source{
		Records:  cfg.Records,
		Height:   cfg.Height,
		Width:    cfg.Width,
		Channels: 3,
	}
	b, err := src.Batch(
		batchflow.Name("demo"),
		batchflow.Workers(cfg.Workers),
		batchflow.Logger(logger),
	)
	if err == nil {
		_, err = b.Crop(batchflow.Center, []int{cfg.Height / 2, cfg.Width / 2})
	}
	if err == nil {
		_, err = b.RandomFlip(batchflow.FlipAll, 0.5, 0.5)
	}
	if err == nil {
		_, err = b.Resize([]int{cfg.Height, cfg.Width})
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	images, err := b.Images()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	h, w, c := images[0].Shape()
	fmt.Printf("batch %v: %d records of %dx%dx%d\n", b.ID(), len(images), h, w, c)
}
