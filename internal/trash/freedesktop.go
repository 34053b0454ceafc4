package trash

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	infoSuffix       = ".trashinfo"
	infoHeader       = "[Trash Info]"
	deletionDateForm = "2006-01-02T15:04:05"
)

// Freedesktop is a Bin backed by a trash directory laid out per the
// freedesktop.org Trash specification: info/<id>.trashinfo describes
// files/<id>.
type Freedesktop struct {
	root   string
	loc    *time.Location
	logger *logrus.Entry
}

// NewFreedesktop opens the trash rooted at root (usually ~/.local/share/Trash).
// The directory does not need to exist yet.
func NewFreedesktop(root string, logger *logrus.Logger) *Freedesktop {
	return &Freedesktop{
		root:   root,
		loc:    time.Local,
		logger: logger.WithField("component", "trash"),
	}
}

// WithLocation sets the zone DeletionDate values are written in.
func (f *Freedesktop) WithLocation(loc *time.Location) *Freedesktop {
	f.loc = loc
	return f
}

// InfoDir returns the directory holding the .trashinfo files.
func (f *Freedesktop) InfoDir() string { return filepath.Join(f.root, "info") }

// FilesDir returns the directory holding the trashed payloads.
func (f *Freedesktop) FilesDir() string { return filepath.Join(f.root, "files") }

// EnsureLayout creates the info and files directories if they are missing,
// as any trash implementation does before its first deletion.
func (f *Freedesktop) EnsureLayout() error {
	for _, dir := range []string{f.InfoDir(), f.FilesDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create trash directory: %w", err)
		}
	}
	return nil
}

// List reads every .trashinfo file. Unreadable info files are skipped and
// logged; an unparsable DeletionDate yields an entry with InvalidTime.
func (f *Freedesktop) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(f.InfoDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to read trash info directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), infoSuffix) {
			continue
		}
		id := strings.TrimSuffix(de.Name(), infoSuffix)

		entry, err := f.readEntry(id)
		if err != nil {
			f.logger.WithFields(logrus.Fields{"id": id, "error": err}).Warn("Skipping unreadable trash info")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (f *Freedesktop) readEntry(id string) (Entry, error) {
	file, err := os.Open(filepath.Join(f.InfoDir(), id+infoSuffix))
	if err != nil {
		return Entry{}, err
	}
	defer file.Close()

	info, err := parseTrashInfo(file)
	if err != nil {
		return Entry{}, err
	}

	entry := Entry{
		ID:             id,
		Name:           filepath.Base(info.path),
		OriginalParent: filepath.Dir(info.path),
		TimeDeleted:    InvalidTime,
		Size:           f.payloadSize(id),
	}
	deleted, err := time.ParseInLocation(deletionDateForm, info.deletionDate, f.loc)
	if err != nil {
		f.logger.WithFields(logrus.Fields{"id": id, "value": info.deletionDate}).Warn("Unparsable DeletionDate")
	} else {
		entry.TimeDeleted = deleted.Unix()
	}
	return entry, nil
}

// payloadSize sums regular file sizes under files/<id>. Missing payloads count as zero.
func (f *Freedesktop) payloadSize(id string) int64 {
	var total int64
	filepath.WalkDir(filepath.Join(f.FilesDir(), id), func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if fi, err := d.Info(); err == nil {
				total += fi.Size()
			}
		}
		return nil
	})
	return total
}

// Purge removes the payload and the info file of every entry. Each entry is
// attempted; failures are joined into the returned error.
func (f *Freedesktop) Purge(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if err := f.purgeOne(e); err != nil {
			errs = append(errs, fmt.Errorf("purge %q: %w", e.Name, err))
			continue
		}
		f.logger.WithFields(logrus.Fields{"id": e.ID, "name": e.Name}).Debug("Purged trash entry")
	}
	return errors.Join(errs...)
}

func (f *Freedesktop) purgeOne(e Entry) error {
	if e.ID == "" || e.ID == "." || e.ID == ".." || strings.ContainsAny(e.ID, `/\`) {
		return fmt.Errorf("invalid trash id %q", e.ID)
	}

	infoPath := filepath.Join(f.InfoDir(), e.ID+infoSuffix)
	if _, err := os.Stat(infoPath); err != nil {
		return fmt.Errorf("failed to stat trash info: %w", err)
	}
	if err := os.RemoveAll(filepath.Join(f.FilesDir(), e.ID)); err != nil {
		return fmt.Errorf("failed to remove payload: %w", err)
	}
	if err := os.Remove(infoPath); err != nil {
		return fmt.Errorf("failed to remove trash info: %w", err)
	}
	return nil
}

type trashInfo struct {
	path         string
	deletionDate string
}

// parseTrashInfo reads the [Trash Info] group of a .trashinfo file.
func parseTrashInfo(r io.Reader) (trashInfo, error) {
	var (
		info    trashInfo
		inGroup bool
		seen    bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inGroup = line == infoHeader
			seen = seen || inGroup
			continue
		}
		if !inGroup {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "Path":
			p, err := url.PathUnescape(strings.TrimSpace(value))
			if err != nil {
				return trashInfo{}, fmt.Errorf("invalid Path: %w", err)
			}
			info.path = p
		case "DeletionDate":
			info.deletionDate = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return trashInfo{}, err
	}

	if !seen {
		return trashInfo{}, fmt.Errorf("missing %s group", infoHeader)
	}
	if info.path == "" {
		return trashInfo{}, errors.New("missing Path key")
	}
	return info, nil
}
