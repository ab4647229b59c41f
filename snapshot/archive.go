package snapshot

import (
	"io"
	"time"

	"github.com/blakesmith/ar"
)

// Bundle writes a Unix ar archive to w containing three members —
// "stats.txt", "roots.txt", "heap.hex" — holding the PrintStats output, the
// roots dump, and a HexDump respectively. at is the archive's modification
// timestamp; the caller supplies it (rather than this package calling
// time.Now() itself) so bundling stays deterministic and testable.
func Bundle(w io.Writer, at time.Time, stats, roots, hex []byte) error {
	aw := ar.NewWriter(w)
	if err := aw.WriteGlobalHeader(); err != nil {
		return err
	}

	members := []struct {
		name string
		data []byte
	}{
		{"stats.txt", stats},
		{"roots.txt", roots},
		{"heap.hex", hex},
	}

	for _, m := range members {
		hdr := &ar.Header{
			Name:    m.name,
			ModTime: at,
			Mode:    0644,
			Size:    int64(len(m.data)),
		}
		if err := aw.WriteHeader(hdr); err != nil {
			return err
		}
		if _, err := aw.Write(m.data); err != nil {
			return err
		}
	}

	return nil
}
