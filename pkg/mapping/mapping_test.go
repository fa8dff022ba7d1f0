package mapping

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/propconv/pkg/convert"
	"github.com/arthur-debert/propconv/pkg/errors"
	"github.com/arthur-debert/propconv/pkg/handlers/builtin"
	"github.com/arthur-debert/propconv/pkg/handlers/structured"
	"github.com/arthur-debert/propconv/pkg/testutil"
	"github.com/arthur-debert/propconv/pkg/types"
)

type layout string

type settings struct {
	Retries int
	Region  string
}

type page struct {
	Title       string
	PageID      uuid.UUID `prop:"id"`
	SortOrder   byte
	Visible     bool
	Published   time.Time
	CacheFor    time.Duration
	Tags        []string
	Layout      layout
	Settings    settings
	Ratio       float32
	Ignored     string `prop:"-"`
	URLPath     string
	unexported  string
	Untouchable string
}

func newMapper(t *testing.T) *Mapper {
	t.Helper()
	reg := convert.New(
		convert.WithLogger(zerolog.Nop()),
		convert.WithSources(structured.Source()),
	)
	require.True(t, reg.RegisterTypeHandler(types.FactoryFor(builtin.NewEnumHandler[layout]("wide", "narrow"))))
	return New(reg)
}

func TestMapUsesRegisteredHandlers(t *testing.T) {
	m := newMapper(t)

	var p page
	p.Untouchable = "kept"
	err := m.Map(map[string]any{
		"title":     "Home",
		"id":        "0c6b2a4e-52a3-4f6e-9b8b-2d1f7f1d9a10",
		"sortOrder": "7",
		"visible":   "1",
		"published": "2024-03-09",
		"cacheFor":  "90s",
		"tags":      "news, featured",
		"layout":    "WIDE",
		"ratio":     "0.5",
		"ignored":   "should not be set",
		"urlPath":   "/home",
		"settings":  map[string]any{"retries": "3", "region": "eu"},
	}, &p)
	require.NoError(t, err)

	assert.Equal(t, "Home", p.Title)
	assert.Equal(t, uuid.MustParse("0c6b2a4e-52a3-4f6e-9b8b-2d1f7f1d9a10"), p.PageID)
	assert.Equal(t, byte(7), p.SortOrder)
	assert.True(t, p.Visible)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), p.Published)
	assert.Equal(t, 90*time.Second, p.CacheFor)
	assert.Equal(t, []string{"news", "featured"}, p.Tags)
	assert.Equal(t, layout("wide"), p.Layout)
	assert.Equal(t, float32(0.5), p.Ratio)
	assert.Empty(t, p.Ignored)
	assert.Equal(t, "/home", p.URLPath)
	assert.Equal(t, "kept", p.Untouchable)
	assert.Equal(t, settings{Retries: 3, Region: "eu"}, p.Settings, "no handler for settings, mapstructure fallback applies")
}

func TestMapBadValuesYieldZero(t *testing.T) {
	m := newMapper(t)

	p := page{SortOrder: 9}
	require.NoError(t, m.Map(map[string]any{
		"sortOrder": "abc",
		"visible":   "perhaps",
		"layout":    "tall",
		"settings":  "not a map",
	}, &p))

	assert.Equal(t, byte(0), p.SortOrder)
	assert.False(t, p.Visible)
	assert.Equal(t, layout(""), p.Layout)
	assert.Equal(t, settings{}, p.Settings)
}

func TestMapCaseInsensitiveAlias(t *testing.T) {
	m := newMapper(t)

	var p page
	require.NoError(t, m.Map(map[string]any{"TITLE": "Upper"}, &p))
	assert.Equal(t, "Upper", p.Title)
}

func TestMapAmbiguousAliasPicksSortedFirst(t *testing.T) {
	capture, logger := testutil.NewLogCapture()
	m := newMapper(t)
	m.logger = logger

	props := map[string]any{"Title": "mixed", "TITLE": "upper", "tItLe": "odd"}
	for i := 0; i < 20; i++ {
		var p page
		require.NoError(t, m.Map(props, &p))
		assert.Equal(t, "upper", p.Title)
	}

	entries := capture.AtLevel("debug")
	require.NotEmpty(t, entries)
	assert.Equal(t, "title", entries[0].Str("property"))
	assert.Equal(t, []any{"TITLE", "Title", "tItLe"}, entries[0]["candidates"])
}

func TestMapExactAliasBeatsCaseInsensitive(t *testing.T) {
	m := newMapper(t)

	var p page
	require.NoError(t, m.Map(map[string]any{"TITLE": "upper", "title": "exact"}, &p))
	assert.Equal(t, "exact", p.Title)
}

func TestMapWholeFloatIntoIntegerField(t *testing.T) {
	m := newMapper(t)

	var s settings
	require.NoError(t, m.Map(map[string]any{"retries": float64(3)}, &s))
	assert.Equal(t, 3, s.Retries)
}

func TestMapRejectsInvalidDestination(t *testing.T) {
	m := newMapper(t)

	var nilPage *page
	for name, dst := range map[string]any{
		"non-pointer":    page{},
		"nil pointer":    nilPage,
		"pointer to int": new(int),
		"nil":            nil,
	} {
		t.Run(name, func(t *testing.T) {
			err := m.Map(map[string]any{}, dst)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		})
	}
}

type celsius float64

func TestSetValueConvertsCompatibleTypes(t *testing.T) {
	var c celsius
	dst := reflect.ValueOf(&c).Elem()

	assert.True(t, setValue(dst, 21.5))
	assert.Equal(t, celsius(21.5), c)

	assert.False(t, setValue(dst, "hot"))

	assert.True(t, setValue(dst, nil))
	assert.Equal(t, celsius(0), c)
}

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"Title":   "title",
		"PageID":  "pageID",
		"URLPath": "urlPath",
		"ID":      "id",
		"x":       "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, lowerCamel(in), in)
	}
}

func TestNewDefaultsRegistry(t *testing.T) {
	m := New(nil)
	assert.Same(t, convert.Default(), m.registry)
}
