package synthetic

import (
	"testing"

	"lostluck.dev/batchflow-go"
	"lostluck.dev/batchflow-go/components"
)

func TestSourceBatch(t *testing.T) {
	src := Source{
		Records:   8,
		Height:    4,
		Width:     6,
		Channels:  2,
		LabelBase: 100,
	}
	b, err := src.Batch(batchflow.Name("synthetic"))
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if got := b.Len(); got != 8 {
		t.Fatalf("Len: got %d, want 8", got)
	}
	images, err := b.Images()
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	for i, im := range images {
		if h, w, c := im.Shape(); h != 4 || w != 6 || c != 2 {
			t.Errorf("record %d shape: got %dx%dx%d, want 4x6x2", i, h, w, c)
		}
	}
	labels, err := components.Numbers[int](b.View(), "labels")
	if err != nil {
		t.Fatalf("labels: %v", err)
	}
	for i, l := range labels {
		if l != 100+i {
			t.Errorf("label %d: got %d, want %d", i, l, 100+i)
		}
	}
}

func TestSourceDefaults(t *testing.T) {
	b, err := Source{}.Batch()
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if got := b.Len(); got != 1 {
		t.Errorf("Len: got %d, want 1", got)
	}
	images, err := b.Images()
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if h, w, c := images[0].Shape(); h != 1 || w != 1 || c != 1 {
		t.Errorf("shape: got %dx%dx%d, want 1x1x1", h, w, c)
	}
}

func TestSourceBatchesAreIndependent(t *testing.T) {
	a, err := Source{Records: 2}.Batch()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Source{Records: 2}.Batch()
	if err != nil {
		t.Fatal(err)
	}
	if a.ID() == b.ID() {
		t.Errorf("two batches share id %v", a.ID())
	}
}
