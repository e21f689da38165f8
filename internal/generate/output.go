package generate

import (
	"io"
	"strconv"

	humanize "github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasttemplate"
)

// Write writes the results to w in opts.Output format. If opts.Template is set, each value is rendered
// through the template first
func Write(w io.Writer, res []Result, opts *Options) error {
	var (
		tmpl *fasttemplate.Template
		err  error
	)
	if opts.Template != "" {
		tmpl, err = fasttemplate.NewTemplate(opts.Template, "{", "}")
		if err != nil {
			return errors.Wrap(err, "failed to compile template")
		}
	}

	value := func(r Result) string {
		if tmpl != nil {
			return r.Render(tmpl)
		}
		return r.Text()
	}

	switch opts.Output {
	case Plain:
		msg := bytebufferpool.Get()
		defer bytebufferpool.Put(msg)
		for _, r := range res {
			msg.Reset()
			msg.B = append(msg.B, value(r)...)
			msg.B = append(msg.B, '\n')
			if _, err := w.Write(msg.B); err != nil {
				return errors.Wrap(err, "failed to write result")
			}
		}
	case JSON:
		logger := zerolog.New(w)
		for _, r := range res {
			e := logger.Log().
				Str("id", r.ID.String()).
				Str("kind", string(r.Kind)).
				Int("index", r.Index)
			if r.Values != nil && tmpl == nil {
				e = e.Strs("values", r.Values)
			} else {
				e = e.Str("value", value(r))
			}
			e.Float64("entropy", r.Entropy).Msg("")
		}
	case Pretty:
		fallthrough
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"#", "value", "entropy"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetAutoWrapText(false)
		for _, r := range res {
			table.Append([]string{strconv.Itoa(r.Index + 1), value(r), formatEntropy(r.Entropy)})
		}
		table.Render()
	}
	return nil
}

func formatEntropy(bits float64) string {
	if bits <= 0 {
		return "-"
	}
	return humanize.FormatFloat("#,###.#", bits) + " bits"
}
