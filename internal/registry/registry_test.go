package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avrkit/partscope/internal/config"
	"github.com/avrkit/partscope/internal/ctxlog"
)

func sampleModel() *config.Model {
	return &config.Model{
		Parts: []*config.Part{
			{
				Name:       "m168",
				Desc:       "ATmega168",
				ID:         "m168",
				FamilyID:   "megaAVR",
				ConfigFile: "/tmp/avrdude.conf",
				LineNo:     1,
				Mem: []*config.Memory{
					{Desc: "flash", Size: 16384, Paged: true, PageSize: 128, NumPages: 128},
					{Desc: "eeprom", Size: 512},
				},
			},
			{
				Name:       "m328p",
				Desc:       "ATmega328P",
				ID:         "m328p",
				FamilyID:   "megaAVR",
				ConfigFile: "/tmp/avrdude.conf",
				LineNo:     20,
				Mem: []*config.Memory{
					{Desc: "flash", Size: 32768, Paged: true, PageSize: 128, NumPages: 256},
				},
			},
		},
	}
}

func populated() *Registry {
	r := New()
	r.PopulateFromModel(sampleModel())
	return r
}

func TestLocate(t *testing.T) {
	r := populated()

	t.Run("known name", func(t *testing.T) {
		p := r.Locate("m328p")
		require.NotNil(t, p)
		assert.Equal(t, "ATmega328P", p.Desc)
	})

	t.Run("case folding", func(t *testing.T) {
		require.NotNil(t, r.Locate("M328P"))
	})

	t.Run("matches desc as well", func(t *testing.T) {
		p := r.Locate("ATmega168")
		require.NotNil(t, p)
		assert.Equal(t, "m168", p.Name)
	})

	t.Run("unknown name is nil, not an error", func(t *testing.T) {
		assert.Nil(t, r.Locate("m2560"))
	})
}

func TestMatch(t *testing.T) {
	r := populated()

	assert.Len(t, r.Match("mega"), 2)
	assert.Len(t, r.Match("328"), 1)
	assert.Len(t, r.Match(""), 2)
	assert.Empty(t, r.Match("xmega"))
}

func TestPopulateFromModel(t *testing.T) {
	r := populated()
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "/tmp/avrdude.conf", r.ConfigFile())
	assert.Equal(t, "m168", r.All()[0].Name)
}

func TestRegionsIterator(t *testing.T) {
	r := populated()
	p := r.Locate("m168")
	require.NotNil(t, p)

	var names []string
	for m := range p.Regions() {
		names = append(names, m.Desc)
	}
	assert.Equal(t, []string{"flash", "eeprom"}, names)

	// restartable
	count := 0
	for range p.Regions() {
		count++
	}
	assert.Equal(t, 2, count)

	// early break must not panic or over-consume
	for range p.Regions() {
		break
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid registry passes", func(t *testing.T) {
		assert.NoError(t, populated().Validate(context.Background()))
	})

	t.Run("negative geometry fails", func(t *testing.T) {
		r := New()
		r.PopulateFromModel(&config.Model{Parts: []*config.Part{
			{Name: "bad", Mem: []*config.Memory{{Desc: "flash", Size: -1}}},
		}})
		assert.ErrorContains(t, r.Validate(context.Background()), "negative geometry")
	})

	t.Run("empty part name fails", func(t *testing.T) {
		r := New()
		r.PopulateFromModel(&config.Model{Parts: []*config.Part{{Name: ""}}})
		assert.ErrorContains(t, r.Validate(context.Background()), "empty name")
	})

	t.Run("paged geometry mismatch warns but passes", func(t *testing.T) {
		r := New()
		r.PopulateFromModel(&config.Model{Parts: []*config.Part{
			{Name: "odd", Mem: []*config.Memory{
				{Desc: "flash", Size: 32768, Paged: true, PageSize: 128, NumPages: 100},
			}},
		}})

		var logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, nil))
		ctx := ctxlog.WithLogger(context.Background(), logger)

		assert.NoError(t, r.Validate(ctx))
		assert.Contains(t, logBuf.String(), "Memory page geometry does not cover its size.")
		assert.Contains(t, logBuf.String(), "part=odd")
	})

	t.Run("unpaged geometry is not checked", func(t *testing.T) {
		r := New()
		r.PopulateFromModel(&config.Model{Parts: []*config.Part{
			{Name: "flat", Mem: []*config.Memory{
				{Desc: "eeprom", Size: 512, Paged: false, PageSize: 4, NumPages: 5},
			}},
		}})

		var logBuf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logBuf, nil))
		ctx := ctxlog.WithLogger(context.Background(), logger)

		assert.NoError(t, r.Validate(ctx))
		assert.NotContains(t, logBuf.String(), "page geometry")
	})
}
