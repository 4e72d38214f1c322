package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avrkit/partscope/internal/config"
)

func samplePart() *config.Part {
	return &config.Part{
		Name:       "m328p",
		Desc:       "ATmega328P",
		ID:         "m328p",
		FamilyID:   "megaAVR",
		ConfigFile: "/etc/avrdude.conf",
		LineNo:     42,
		Mem: []*config.Memory{
			{Desc: "flash", Size: 32768, Paged: true, PageSize: 128, NumPages: 256},
			{Desc: "eeprom", Size: 1024},
		},
	}
}

func TestPartMap(t *testing.T) {
	t.Run("exactly the six named keys, types preserved", func(t *testing.T) {
		m, err := PartMap(samplePart())
		require.NoError(t, err)

		require.Len(t, m, 6)
		assert.Equal(t, "ATmega328P", m["desc"])
		assert.Equal(t, "m328p", m["id"])
		assert.Equal(t, "megaAVR", m["family_id"])
		assert.Equal(t, "/etc/avrdude.conf", m["config_file"])
		assert.Equal(t, 42, m["lineno"])

		mem, ok := m["mem"].([]map[string]any)
		require.True(t, ok)
		require.Len(t, mem, 2)
		assert.Equal(t, "flash", mem[0]["desc"])
		assert.Equal(t, "eeprom", mem[1]["desc"])
	})

	t.Run("wrong kind fails closed", func(t *testing.T) {
		m, err := PartMap(7)
		assert.Nil(t, m)
		assert.ErrorContains(t, err, "expecting *config.Part")

		m, err = PartMap(&config.Memory{})
		assert.Nil(t, m)
		assert.ErrorContains(t, err, "expecting *config.Part")
	})
}

func TestMemoryMap(t *testing.T) {
	t.Run("fields preserved", func(t *testing.T) {
		m, err := MemoryMap(samplePart().Mem[0])
		require.NoError(t, err)

		require.Len(t, m, 5)
		assert.Equal(t, "flash", m["desc"])
		assert.Equal(t, 32768, m["size"])
		assert.Equal(t, true, m["paged"])
		assert.Equal(t, 128, m["page_size"])
		assert.Equal(t, 256, m["num_pages"])

		assert.GreaterOrEqual(t, m["size"].(int), 0)
		assert.GreaterOrEqual(t, m["page_size"].(int), 0)
		assert.GreaterOrEqual(t, m["num_pages"].(int), 0)
	})

	t.Run("wrong kind fails closed", func(t *testing.T) {
		m, err := MemoryMap("flash")
		assert.Nil(t, m)
		assert.ErrorContains(t, err, "expecting *config.Memory")
	})
}
