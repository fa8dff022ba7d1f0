package builtin

import (
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/propconv/pkg/types"
)

// DefaultTimeLayouts are tried in order by the time handler.
var DefaultTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TimeHandler parses time.Time using a list of layouts. Layouts without a
// zone are interpreted as UTC. The zero value uses DefaultTimeLayouts.
type TimeHandler struct {
	layouts []string
}

// NewTimeHandler returns a time handler that tries layouts before the
// defaults.
func NewTimeHandler(layouts ...string) *TimeHandler {
	all := make([]string, 0, len(layouts)+len(DefaultTimeLayouts))
	all = append(all, layouts...)
	all = append(all, DefaultTimeLayouts...)
	return &TimeHandler{layouts: all}
}

func (h *TimeHandler) TypeSupported() reflect.Type { return types.TypeOf[time.Time]() }

func (h *TimeHandler) Convert(raw any) any {
	if v, ok := raw.(time.Time); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok || s == "" {
		return time.Time{}
	}
	layouts := h.layouts
	if len(layouts) == 0 {
		layouts = DefaultTimeLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Millisecond counts outside these bounds do not fit a time.Duration.
const (
	maxDurationMillis = math.MaxInt64 / int64(time.Millisecond)
	minDurationMillis = math.MinInt64 / int64(time.Millisecond)
)

// DurationHandler parses Go duration strings ("1h30m"); bare integers are
// read as milliseconds. Millisecond counts that overflow yield 0.
type DurationHandler struct{}

func (DurationHandler) TypeSupported() reflect.Type { return types.TypeOf[time.Duration]() }

func (DurationHandler) Convert(raw any) any {
	if v, ok := raw.(time.Duration); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok {
		return time.Duration(0)
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ms > maxDurationMillis || ms < minDurationMillis {
		return time.Duration(0)
	}
	return time.Duration(ms) * time.Millisecond
}

// UUIDHandler parses the textual UUID forms accepted by uuid.Parse.
// Failure yields uuid.Nil.
type UUIDHandler struct{}

func (UUIDHandler) TypeSupported() reflect.Type { return types.TypeOf[uuid.UUID]() }

func (UUIDHandler) Convert(raw any) any {
	if v, ok := raw.(uuid.UUID); ok {
		return v
	}
	s, ok := types.Text(raw)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}
