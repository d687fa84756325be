package index

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/tunedex/tunedex/model"
)

type contourResult struct {
	settingID string
	contour   string
	ok        bool
}

// contourAll fans the per-setting conversion out over a pool of NumCPU
// workers. Each task touches only its own setting; results are collected on
// a buffered channel and merged single-threaded after the pool drains.
func contourAll(tunes []model.SettingRecord) []contourResult {
	jobs := make(chan model.SettingRecord)
	out := make(chan contourResult, len(tunes))

	progress := newProgress(len(tunes))
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range jobs {
				out <- settingContour(t)
				progress.tick()
			}
		}()
	}

	for _, t := range tunes {
		jobs <- t
	}
	close(jobs)
	wg.Wait()
	close(out)
	progress.flush()

	results := make([]contourResult, 0, len(tunes))
	for r := range out {
		results = append(results, r)
	}
	return results
}

// progress prints a debounced completion count so a corpus of tens of
// thousands of settings doesn't hammer the terminal once per setting.
type progress struct {
	total int
	count int64
	emit  func(func())
}

func newProgress(total int) *progress {
	return &progress{total: total, emit: debounce.New(250 * time.Millisecond)}
}

func (p *progress) tick() {
	n := atomic.AddInt64(&p.count, 1)
	p.emit(func() {
		fmt.Printf("Processed %v of %v settings\n", n, p.total)
	})
}

func (p *progress) flush() {
	fmt.Printf("Processed %v of %v settings\n", atomic.LoadInt64(&p.count), p.total)
}
