//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package report measures hash computations and renders the results
// as a table.
package report

import (
	"crypto/sha512"
	"fmt"
	"io"
	"time"

	"github.com/markkurossi/tabulate"

	sha "github.com/markkurossi/sha512ref/sha512"
)

// FileSize implements human readable byte counts.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Timing records hash samples and renders a profiling report.
type Timing struct {
	Start   time.Time
	Samples []*Sample
}

// NewTiming creates a new Timing instance.
func NewTiming() *Timing {
	return &Timing{
		Start: time.Now(),
	}
}

// Hash computes the SHA-512 digest of data and records the duration
// of each pipeline stage as a sub-sample. If compare is true, the
// digest is also checked against the standard library.
func (t *Timing) Hash(label string, data []byte, compare bool) *Sample {
	start := time.Now()
	sample := &Sample{
		Label: label,
		Start: start,
		Size:  FileSize(len(data)),
	}

	padded := sha.Pad(data)
	sample.SubSample("Pad", time.Now())
	sample.Blocks = sha.Blocks(padded)

	state := sha.InitialState()
	var expand, compress time.Duration
	for len(padded) > 0 {
		s := time.Now()
		w := sha.Expand(padded[:sha.BlockSize])
		m := time.Now()
		state = sha.Compress(state, &w)
		expand += m.Sub(s)
		compress += time.Since(m)
		padded = padded[sha.BlockSize:]
	}
	sample.AbsSubSample("Expand", expand)
	sample.AbsSubSample("Compress", compress)

	sample.Digest = sha.Serialize(state)
	sample.End = time.Now()
	sample.SubSample("Serialize", sample.End)

	if compare {
		sample.Checked = true
		sample.Match = sample.Digest == sha512.Sum512(data)
	}
	t.Samples = append(t.Samples, sample)

	return sample
}

// Mismatches returns the number of samples whose digest did not match
// the reference implementation.
func (t *Timing) Mismatches() int {
	var count int
	for _, sample := range t.Samples {
		if sample.Checked && !sample.Match {
			count++
		}
	}
	return count
}

// Print prints profiling report to the writer.
func (t *Timing) Print(w io.Writer) {
	if len(t.Samples) == 0 {
		return
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Input").SetAlign(tabulate.ML)
	tab.Header("Size").SetAlign(tabulate.MR)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("Time").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)
	tab.Header("Ref").SetAlign(tabulate.MR)

	var total time.Duration
	var size FileSize
	var blocks int
	for _, sample := range t.Samples {
		total += sample.End.Sub(sample.Start)
		size += sample.Size
		blocks += sample.Blocks
	}

	for _, sample := range t.Samples {
		row := tab.Row()
		row.Column(sample.Label)
		row.Column(sample.Size.String())
		row.Column(fmt.Sprintf("%d", sample.Blocks))

		duration := sample.End.Sub(sample.Start)
		row.Column(duration.String())
		row.Column(percent(duration, total))
		row.Column(fmt.Sprintf("%x…", sample.Digest[:8]))
		row.Column(sample.result())

		for idx, sub := range sample.Samples {
			row := tab.Row()

			var prefix string
			if idx+1 >= len(sample.Samples) {
				prefix = "╰╴"
			} else {
				prefix = "├╴"
			}

			row.Column(prefix + sub.Label).SetFormat(tabulate.FmtItalic)
			row.Column("")
			row.Column("")

			d := sub.Abs
			if !sub.End.IsZero() {
				d = sub.End.Sub(sub.Start)
			}
			row.Column(d.String()).SetFormat(tabulate.FmtItalic)
			row.Column(percent(d, duration)).SetFormat(tabulate.FmtItalic)
		}
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(size.String()).SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", blocks)).SetFormat(tabulate.FmtBold)
	row.Column(total.String()).SetFormat(tabulate.FmtBold)
	row.Column("")
	row.Column("")
	row.Column(fmt.Sprintf("%d✗", t.Mismatches())).
		SetFormat(tabulate.FmtBold)

	tab.Print(w)
}

func percent(d, total time.Duration) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", float64(d)/float64(total)*100)
}

// Sample contains information about one hash computation.
type Sample struct {
	Label   string
	Start   time.Time
	End     time.Time
	Abs     time.Duration
	Size    FileSize
	Blocks  int
	Digest  [sha.Size]byte
	Checked bool
	Match   bool
	Samples []*Sample
}

func (s *Sample) result() string {
	if !s.Checked {
		return "-"
	}
	if s.Match {
		return "✓"
	}
	return "✗"
}

// SubSample adds a sub-sample for a timing sample.
func (s *Sample) SubSample(label string, end time.Time) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: s.next(),
		End:   end,
	})
}

// AbsSubSample adds an absolute sub-sample for a timing sample.
func (s *Sample) AbsSubSample(label string, duration time.Duration) {
	s.Samples = append(s.Samples, &Sample{
		Label: label,
		Start: s.next(),
		Abs:   duration,
	})
}

// next returns the start time of the next sub-sample.
func (s *Sample) next() time.Time {
	if len(s.Samples) == 0 {
		return s.Start
	}
	last := s.Samples[len(s.Samples)-1]
	if last.End.IsZero() {
		return last.Start.Add(last.Abs)
	}
	return last.End
}
