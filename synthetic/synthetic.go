// Package synthetic produces image batches and load.
// Typically used for load testing, benchmarks and demos.
package synthetic

import (
	"math/rand/v2"

	"lostluck.dev/batchflow-go"
	"lostluck.dev/batchflow-go/components"
	"lostluck.dev/batchflow-go/kernel"
)

// Source describes a synthetic image batch.
type Source struct {
	Records                 int
	Height, Width, Channels int

	// LabelBase is the label assigned to record 0; record i gets
	// LabelBase + i.
	LabelBase int
}

// Schema returns the component schema synthetic batches use.
func Schema() *components.Schema {
	s, err := components.NewSchema("images", "labels")
	if err != nil {
		panic(err) // unreachable: fixed names are valid
	}
	return s
}

// Batch builds a positionally keyed batch of random images and running
// labels.
func (s Source) Batch(opts ...batchflow.Options) (*batchflow.Batch, error) {
	records := s.Records
	if records <= 0 {
		records = 1
	}
	images := make([]any, records)
	labels := make([]any, records)
	for i := range records {
		im := kernel.New(max(s.Height, 1), max(s.Width, 1), max(s.Channels, 1))
		for y := 0; y < im.Height(); y++ {
			for x := 0; x < im.Width(); x++ {
				for c := 0; c < im.Channels(); c++ {
					im.Set(y, x, c, rand.Float64())
				}
			}
		}
		images[i] = im
		labels[i] = s.LabelBase + i
	}
	view, err := components.FromArrays(Schema(), images, labels)
	if err != nil {
		return nil, err
	}
	return batchflow.New(view, opts...), nil
}
