package types

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/propconv/pkg/errors"
)

type answerHandler struct{}

func (answerHandler) TypeSupported() reflect.Type { return reflect.TypeOf(0) }
func (answerHandler) Convert(raw any) any         { return 42 }

type manualHandler struct {
	Manual
	n int
}

func (manualHandler) TypeSupported() reflect.Type { return reflect.TypeOf("") }
func (h manualHandler) Convert(raw any) any       { return "" }

func TestFactoryOf(t *testing.T) {
	f := FactoryOf[answerHandler]()

	h := f()
	require.NotNil(t, h)
	assert.Equal(t, reflect.TypeOf(0), h.TypeSupported())
	assert.Equal(t, 42, h.Convert("x"))
	assert.Equal(t, "*types.answerHandler", HandlerName(h))
}

func TestIsManual(t *testing.T) {
	assert.False(t, IsManual(answerHandler{}))
	assert.True(t, IsManual(manualHandler{n: 1}))
	assert.True(t, IsManual(FactoryOf[manualHandler]()()))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, reflect.TypeOf(time.Time{}), TypeOf[time.Time]())
	assert.Equal(t, reflect.Interface, TypeOf[error]().Kind())
}

func TestHandlerNameNil(t *testing.T) {
	assert.Equal(t, "<nil>", HandlerName(nil))
}

func TestSourceValidate(t *testing.T) {
	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{"valid static source", StaticSource("builtin", FactoryOf[answerHandler]()), false},
		{"empty name", StaticSource(""), true},
		{"missing enumerate", Source{Name: "broken"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.source.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrSourceInvalid), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStaticSourceEnumerate(t *testing.T) {
	src := StaticSource("static", FactoryOf[answerHandler](), FactoryFor(answerHandler{}))

	factories, err := src.Enumerate()
	require.NoError(t, err)
	assert.Len(t, factories, 2)
}

func TestText(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{"string trimmed", "  7 ", "7", true},
		{"bytes", []byte("abc"), "abc", true},
		{"int", 12, "12", true},
		{"float", 1.5, "1.5", true},
		{"bool", true, "true", true},
		{"stringer", time.Second, "1s", true},
		{"nil", nil, "", false},
		{"map", map[string]any{"a": 1}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Text(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
