package log

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/EduardoJoaoTurkiewicz/datefix/pkg/status"
)

// 📊 Summary renders the per-file table and the closing lines.
// Only files that had call sites are listed in the table; missing files are
// counted in a warning.
func (l *Logger) Summary(dryRun bool) error {
	ops := l.Operations()

	data := pterm.TableData{{"File", "Replacements", "Import", "Written"}}
	modified, replacements, written, missing := 0, 0, 0, 0
	for _, op := range ops {
		if op.Status == status.StatusMissing {
			missing++
		}
		if op.Status != status.StatusModified && op.Status != status.StatusPending {
			continue
		}
		modified++
		replacements += op.Replacements
		written += op.Bytes

		imp := op.Import
		if imp == "" {
			imp = "-"
		}
		data = append(data, []string{
			op.Path,
			strconv.Itoa(op.Replacements),
			imp,
			humanize.Bytes(uint64(op.Bytes)),
		})
	}

	if modified > 0 {
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		l.mu.Lock()
		fmt.Fprintf(l.console, "\n%s\n\n", table)
		l.mu.Unlock()
	}

	l.zlog.Info().
		Int("files", len(ops)).
		Int("modified", modified).
		Int("replacements", replacements).
		Int("bytes", written).
		Bool("dry_run", dryRun).
		Msg("run complete")

	if missing > 0 {
		l.Warningf("%d file(s) not found", missing)
	}

	if dryRun {
		l.Infof("Dry run: %d file(s) would be fixed (%d date display(s))", modified, replacements)
		return nil
	}
	l.Successf("Complete! Fixed %d files", modified)
	return nil
}
