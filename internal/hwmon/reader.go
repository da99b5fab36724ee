package hwmon

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/markusressel/hwtemp/internal/ui"
	"github.com/markusressel/hwtemp/internal/util"
	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/sync/errgroup"
)

// the kernel reports temperatures in millidegree Celsius
const milliDegreesPerDegree = 1000.0

type Reader struct {
	// ReadTimeout bounds every single file read, <= 0 disables the timeout
	ReadTimeout time.Duration
	// Concurrency limits the number of sensors read in parallel, <= 0 means no limit
	Concurrency int
}

func NewReader(readTimeout time.Duration, concurrency int) *Reader {
	return &Reader{
		ReadTimeout: readTimeout,
		Concurrency: concurrency,
	}
}

// Read reads all attribute files of the given sensor.
// The chip name and the input value are required, all other attributes are optional.
func (r *Reader) Read(ctx context.Context, base Base) (*Reading, error) {
	namePath := filepath.Join(filepath.Dir(string(base)), chipNameFile)
	name, err := r.readLine(ctx, namePath)
	if err != nil {
		return nil, &IOError{Context: "reading name from " + namePath, Err: err}
	}

	value, err := r.readTemperature(ctx, "reading value from", base.Attribute(AttributeInput))
	if err != nil {
		return nil, err
	}

	return &Reading{
		Name:     name,
		Value:    value,
		High:     r.readOptionalTemperature(ctx, "reading high threshold from", base.Attribute(AttributeMax)),
		Critical: r.readOptionalTemperature(ctx, "reading critical threshold from", base.Attribute(AttributeCritical)),
		Label:    r.readOptionalLine(ctx, "reading label from", base.Attribute(AttributeLabel)),
	}, nil
}

// ReadAll reads all given sensors concurrently and returns exactly one result per base, sorted by base.
// The failure of one sensor never affects the others.
func (r *Reader) ReadAll(ctx context.Context, bases BaseSet) []Result {
	results := cmap.New[Result]()

	var g errgroup.Group
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}
	for base := range bases {
		base := base
		g.Go(func() error {
			reading, err := r.Read(ctx, base)
			if err != nil {
				ui.Debug("Failed to read sensor %s: %v", base, err)
			}
			results.Set(base.String(), Result{Base: base, Reading: reading, Err: err})
			return nil
		})
	}
	// failures are reported per sensor in Result.Err, the group itself never fails
	_ = g.Wait()

	items := results.Items()
	list := make([]Result, 0, len(items))
	for _, key := range util.SortedKeys(items) {
		list = append(list, items[key])
	}
	return list
}

func (r *Reader) readLine(ctx context.Context, path string) (string, error) {
	if r.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.ReadTimeout)
		defer cancel()
	}
	return util.ReadLineFromFile(ctx, path)
}

func (r *Reader) readTemperature(ctx context.Context, operation string, path string) (float64, error) {
	text, err := r.readLine(ctx, path)
	if err != nil {
		return 0, &IOError{Context: operation + " " + path, Err: err}
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, &ParseError{Path: path, Content: text, Err: err}
	}
	return milli / milliDegreesPerDegree, nil
}

func (r *Reader) readOptionalTemperature(ctx context.Context, operation string, path string) *float64 {
	value, err := r.readTemperature(ctx, operation, path)
	if err != nil {
		logOptionalFailure(err)
		return nil
	}
	return &value
}

func (r *Reader) readOptionalLine(ctx context.Context, operation string, path string) *string {
	text, err := r.readLine(ctx, path)
	if err != nil {
		logOptionalFailure(&IOError{Context: operation + " " + path, Err: err})
		return nil
	}
	return &text
}

// a missing optional attribute is expected, anything else is worth a warning
func logOptionalFailure(err error) {
	if IsNotFound(err) {
		return
	}
	ui.Warning("Ignoring optional sensor attribute: %v", err)
}
