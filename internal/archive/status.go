package archive

import (
	"fmt"
	"io"

	"github.com/huangsam/standings/schema"
)

// PrintArchiveStatus prints archive status information.
func PrintArchiveStatus(w io.Writer, status schema.ArchiveStatus) {
	_, _ = fmt.Fprintf(w, "Archive Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Rows: %d\n", status.TotalRows)
	if status.TotalRows == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Last Push: %s\n", status.LastPush)
	_, _ = fmt.Fprintln(w, "Snapshots:")
	for _, s := range status.Snapshots {
		_, _ = fmt.Fprintf(w, "  %d %s\n", s.Year, s.League.DisplayName())
	}
}
