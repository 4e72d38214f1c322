package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "avrdude.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testConf = `part "m64" {
  desc      = "ATmega64"
  id        = "m64"
  family_id = "megaAVR"

  memory "flash" {
    size      = 64 * 1024
    paged     = true
    page_size = 256
    num_pages = 256
  }
  memory "eeprom" {
    size = 2048
  }
}

part "m644" {
  parent = "m64"
  desc   = "ATmega644"
  id     = "m644"

  memory "eeprom" {
    size = 2048
  }
}
`

func TestLoad(t *testing.T) {
	path := writeConf(t, testConf)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, model.Parts, 2)

	t.Run("fields and expression evaluation", func(t *testing.T) {
		p := model.Parts[0]
		assert.Equal(t, "m64", p.Name)
		assert.Equal(t, "ATmega64", p.Desc)
		assert.Equal(t, "m64", p.ID)
		assert.Equal(t, "megaAVR", p.FamilyID)
		assert.Equal(t, path, p.ConfigFile)
		assert.Equal(t, 1, p.LineNo)

		require.Len(t, p.Mem, 2)
		flash := p.Mem[0]
		assert.Equal(t, "flash", flash.Desc)
		assert.Equal(t, 65536, flash.Size)
		assert.True(t, flash.Paged)
		assert.Equal(t, 256, flash.PageSize)
		assert.Equal(t, 256, flash.NumPages)

		eeprom := p.Mem[1]
		assert.Equal(t, "eeprom", eeprom.Desc)
		assert.Equal(t, 2048, eeprom.Size)
		assert.False(t, eeprom.Paged)
	})

	t.Run("parent inheritance", func(t *testing.T) {
		child := model.Parts[1]
		assert.Equal(t, "m644", child.Name)
		assert.Equal(t, "ATmega644", child.Desc)
		assert.Equal(t, "m644", child.ID)
		assert.Equal(t, "megaAVR", child.FamilyID) // inherited
		assert.Equal(t, 17, child.LineNo)

		// regions copied from the parent, declaration order preserved
		require.Len(t, child.Mem, 2)
		assert.Equal(t, "flash", child.Mem[0].Desc)
		assert.Equal(t, 65536, child.Mem[0].Size)

		// region override replaces the inherited copy, not the parent
		child.Mem[1].Size = 1
		assert.Equal(t, 2048, model.Parts[0].Mem[1].Size)
	})
}

func TestLoadErrors(t *testing.T) {
	load := func(t *testing.T, content string) error {
		t.Helper()
		_, err := NewLoader().Load(context.Background(), writeConf(t, content))
		return err
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.conf"))
		assert.Error(t, err)
	})

	t.Run("syntax error", func(t *testing.T) {
		assert.Error(t, load(t, `part "x" {`))
	})

	t.Run("unknown attribute rejected", func(t *testing.T) {
		assert.ErrorContains(t, load(t, "part \"x\" {\n  bogus = 1\n}\n"), "invalid part")
	})

	t.Run("wrong attribute type", func(t *testing.T) {
		err := load(t, "part \"x\" {\n  desc = 42\n}\n")
		assert.ErrorContains(t, err, "expected string")
	})

	t.Run("forward parent reference", func(t *testing.T) {
		err := load(t, "part \"a\" {\n  parent = \"b\"\n}\npart \"b\" {\n}\n")
		assert.ErrorContains(t, err, "not defined earlier")
	})
}

func TestLoadDuplicateNameSupersedes(t *testing.T) {
	conf := "part \"x\" {\n  desc = \"old\"\n}\npart \"x\" {\n  desc = \"new\"\n}\n"
	model, err := NewLoader().Load(context.Background(), writeConf(t, conf))
	require.NoError(t, err)
	require.Len(t, model.Parts, 1)
	assert.Equal(t, "new", model.Parts[0].Desc)
}
