// Package cleaner runs the two user actions, Analyze and DeletePermanently,
// against a trash Bin and renders their outcome as console lines.
package cleaner

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/message"

	"trash-manager/internal/locale"
	"trash-manager/internal/trash"
)

// DateLayout is how deletion times are shown to the user.
const DateLayout = "02.01.2006 15:04"

// Report is the outcome of one action.
type Report struct {
	Lines     []string
	Selected  int // Entries past the threshold
	Succeeded int // Entries purged
	Failed    int // Entries whose purge failed
	Invalid   int // Entries skipped for an unreadable deletion time
}

// Text joins the report lines for Log.AddText.
func (r Report) Text() string {
	return strings.Join(r.Lines, "\n")
}

func (r *Report) add(lines ...string) {
	r.Lines = append(r.Lines, lines...)
}

// addBlock appends multi-line text such as a rendered table.
func (r *Report) addBlock(text string) {
	r.Lines = append(r.Lines, strings.Split(text, "\n")...)
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cleaner) { c.now = now }
}

// Cleaner selects expired trash entries and reports on them.
type Cleaner struct {
	bin    trash.Bin
	p      *message.Printer
	logger *logrus.Entry
	now    func() time.Time
}

// New creates a Cleaner working on bin and printing through p.
func New(bin trash.Bin, p *message.Printer, logger *logrus.Logger, opts ...Option) *Cleaner {
	c := &Cleaner{
		bin:    bin,
		p:      p,
		logger: logger.WithField("component", "cleaner"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// selection lists the trash and keeps the entries older than preserveDays.
// ok is false when the trash could not be listed; r then holds the diagnostic.
func (c *Cleaner) selection(preserveDays int, r *Report) (expired []trash.Entry, loc *time.Location, ok bool) {
	entries, err := c.bin.List()
	if err != nil {
		c.logger.WithError(err).Error("Failed to list trash")
		r.add(c.p.Sprintf(locale.ListFailed, err))
		return nil, nil, false
	}

	now := c.now()
	sel := trash.SelectExpired(now, preserveDays, entries)
	for _, e := range sel.Invalid {
		c.logger.WithFields(logrus.Fields{"id": e.ID, "time_deleted": e.TimeDeleted}).Warn("Skipping entry with invalid deletion time")
		r.add(c.p.Sprintf(locale.TimestampFailed, e.Name))
	}

	r.Selected = len(sel.Expired)
	r.Invalid = len(sel.Invalid)
	c.logger.WithFields(logrus.Fields{
		"listed":        len(entries),
		"expired":       r.Selected,
		"invalid":       r.Invalid,
		"preserve_days": preserveDays,
	}).Debug("Selected expired trash entries")
	return sel.Expired, now.Location(), true
}

// Analyze lists the entries that DeletePermanently would remove.
func (c *Cleaner) Analyze(preserveDays int) Report {
	var r Report
	expired, loc, ok := c.selection(preserveDays, &r)
	if !ok {
		return r
	}

	r.add("", "", c.p.Sprintf(locale.HeaderAnalysis), "")
	if len(expired) == 0 {
		r.add(c.p.Sprintf(locale.NothingToDelete))
		return r
	}

	t := newTable(c.p.Sprintf(locale.ColumnName), c.p.Sprintf(locale.ColumnDeletedOn), c.p.Sprintf(locale.ColumnSize))
	var total uint64
	for _, e := range expired {
		t.AppendRow(row(e.Name, formatDeleted(e, loc), humanize.Bytes(uint64(max(e.Size, 0)))))
		total += uint64(max(e.Size, 0))
	}
	r.addBlock(t.Render())
	r.add("", c.p.Sprintf(locale.TotalToProcess, len(expired), humanize.Bytes(total)))

	c.logger.WithFields(logrus.Fields{"expired": len(expired), "bytes": total}).Info("Analysis complete")
	return r
}

// DeletePermanently purges every expired entry with its own Purge call, so
// one failure never hides the outcome of another. Nothing is retried.
func (c *Cleaner) DeletePermanently(preserveDays int) Report {
	var r Report
	expired, loc, ok := c.selection(preserveDays, &r)
	if !ok {
		return r
	}

	r.add("", "", c.p.Sprintf(locale.HeaderDeletion), "")
	if len(expired) == 0 {
		r.add(c.p.Sprintf(locale.NothingToDelete))
		return r
	}

	t := newTable(c.p.Sprintf(locale.ColumnStatus), c.p.Sprintf(locale.ColumnFileName), c.p.Sprintf(locale.ColumnTrashedOn))
	for _, e := range expired {
		status := c.p.Sprintf(locale.StatusOK)
		if err := c.bin.Purge([]trash.Entry{e}); err != nil {
			r.Failed++
			status = c.p.Sprintf(locale.StatusFailed)
			c.logger.WithFields(logrus.Fields{"id": e.ID, "name": e.Name, "error": err}).Warn("Failed to purge trash entry")
		} else {
			r.Succeeded++
		}
		t.AppendRow(row(status, e.Name, formatDeleted(e, loc)))
	}
	r.addBlock(t.Render())

	stats := newTable(c.p.Sprintf(locale.ColumnStatus), c.p.Sprintf(locale.ColumnCount))
	stats.AppendRow(row(c.p.Sprintf(locale.StatSuccess), c.p.Sprint(r.Succeeded)))
	stats.AppendRow(row(c.p.Sprintf(locale.StatFailure), c.p.Sprint(r.Failed)))
	r.add("", c.p.Sprintf(locale.DeletionStats))
	r.addBlock(stats.Render())

	c.logger.WithFields(logrus.Fields{"succeeded": r.Succeeded, "failed": r.Failed}).Info("Permanent deletion complete")
	return r
}

func formatDeleted(e trash.Entry, loc *time.Location) string {
	deleted, err := e.DeletedAt(loc)
	if err != nil {
		return "?"
	}
	return deleted.Format(DateLayout)
}
