package ninja

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ninjify/internal/core/domain"
)

// Fingerprint returns a stable 64-bit digest of the graph's structure:
// outputs, edges, recipes and the root set. It is written into the build
// description's header so a wrapping build system can tell whether the
// description still matches the graph it was generated from.
func Fingerprint(g *domain.Graph) uint64 {
	h := xxhash.New()
	var buf [4]byte

	writeID := func(id domain.NodeID) {
		binary.LittleEndian.PutUint32(buf[:], uint32(id))
		_, _ = h.Write(buf[:])
	}
	writeString := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}

	for id := domain.NodeID(0); int(id) < g.Len(); id++ {
		n := g.Node(id)
		writeString(n.Output.String())
		if n.IsPhony {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
		for _, line := range n.Recipe {
			writeString(line)
		}
		for _, d := range n.Deps {
			writeID(d)
		}
		_, _ = h.Write([]byte{0xff})
		for _, d := range n.OrderOnlys {
			writeID(d)
		}
	}
	for _, r := range g.Roots {
		writeID(r)
	}

	return h.Sum64()
}
