package generate

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// ProgressBar tracks how many values of a batch have been generated
type ProgressBar interface {
	Incr(n int64)
}

type NullProgressBar struct{}

func (NullProgressBar) Incr(int64) {}

var _ ProgressBar = NullProgressBar{}

type progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a progress bar for max values written to w
func NewProgress(w io.Writer, max int64) ProgressBar {
	bar := progressbar.NewOptions64(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetDescription("generating"),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSpinnerType(14),
	)
	return &progress{bar: bar}
}

func (p *progress) Incr(n int64) {
	p.bar.Add64(n)
}
