package scanner

import (
	"fmt"
	"io"

	"github.com/louisbranch/rollcall/internal/platform/branding"
	"github.com/louisbranch/rollcall/internal/scan"
)

// consolePresenter renders each loop outcome as plain console lines and
// rings the terminal bell on a recorded scan. It keeps no state of its
// own; the session owns the status and the history.
type consolePresenter struct {
	out io.Writer
}

func (p *consolePresenter) Present(status scan.Status, history []scan.Event) {
	if p == nil || p.out == nil {
		return
	}
	switch status.Kind {
	case scan.StatusReady:
		fmt.Fprintf(p.out, "%s ready. Scan a tracking id.\n", branding.AppName)
	case scan.StatusRecorded:
		fmt.Fprintf(p.out, "\aRecorded %s %s (id %d) at %s on %s\n",
			status.FirstName, status.LastName, status.TrackingID, status.TimeHHMM, status.DateMMDDYYYY)
		fmt.Fprintf(p.out, "Saved to %s\n", status.CSVPath)
	case scan.StatusInvalidScan:
		fmt.Fprintf(p.out, "Invalid scan: %q\n", status.Raw)
	case scan.StatusIDNotFound:
		fmt.Fprintf(p.out, "ID %d not found in roster.\n", status.TrackingID)
	case scan.StatusError:
		fmt.Fprintf(p.out, "Error: %s\n", status.Detail)
	}
	if len(history) > 0 {
		fmt.Fprintln(p.out, "Recent scans:")
		for _, evt := range history {
			fmt.Fprintf(p.out, "  %s  %s %s (id %d)\n", evt.TimeHHMM, evt.FirstName, evt.LastName, evt.TrackingID)
		}
	}
}
