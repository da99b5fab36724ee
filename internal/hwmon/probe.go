package hwmon

import (
	"context"

	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/qdm12/reprint"
)

// Probe owns the set of sensors discovered at construction time.
// Sensors appearing later are only visible to a new Probe.
type Probe struct {
	bases  BaseSet
	reader *Reader
}

func NewProbe(patterns []string, reader *Reader) *Probe {
	bases := Discover(patterns)
	ui.Debug("Discovered %d temperature sensors", bases.Len())
	for _, base := range bases.Sorted() {
		ui.Debug("  %s", base)
	}

	return &Probe{
		bases:  bases,
		reader: reader,
	}
}

// Bases returns a copy of the discovered sensor bases.
func (p *Probe) Bases() BaseSet {
	// reprint hands back the underlying map type, not the named set
	return BaseSet(reprint.This(map[Base]struct{}(p.bases)).(map[Base]struct{}))
}

func (p *Probe) Read(ctx context.Context, base Base) (*Reading, error) {
	return p.reader.Read(ctx, base)
}

// ReadAll reads every discovered sensor, see Reader.ReadAll.
func (p *Probe) ReadAll(ctx context.Context) []Result {
	return p.reader.ReadAll(ctx, p.bases)
}

// Source provides readings of a set of sensors on demand.
type Source interface {
	ReadAll(ctx context.Context) []Result
}
