package fasta

import (
	"context"
	"errors"
	"testing"
)

func TestStreamRecordsPathCtx_CanceledYieldsNoRecords(t *testing.T) {
	fn := writeFile(t, "x.fa", []byte(">s\nACGT\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := StreamRecordsPathCtx(ctx, fn, func(Record) error {
		n++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestStreamRecords_EmitErrorStops(t *testing.T) {
	fn := writeFile(t, "x.fa", []byte(">a\nAC\n>b\nGT\n>c\nTT\n"))
	stop := context.Canceled
	n := 0
	err := StreamRecordsPathCtx(context.Background(), fn, func(Record) error {
		n++
		if n == 2 {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Fatalf("want emit error back, got %v", err)
	}
	if n != 2 {
		t.Fatalf("emit called %d times, want 2", n)
	}
}
