package presenter

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestError(t *testing.T) {
	t.Run("with context", func(t *testing.T) {
		p, out, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "Failed to load manifest")

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "[ERROR] Failed to load manifest: boom")
	})

	t.Run("without context", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(errors.New("boom"), "")

		assert.Contains(t, errOut.String(), "[ERROR] boom")
	})

	t.Run("nil error is a no-op", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.Error(nil, "context")

		assert.Empty(t, errOut.String())
	})

	t.Run("ignores quiet mode", func(t *testing.T) {
		p, _, errOut := newTestPresenter()
		p.SetQuiet(true)
		p.Error(errors.New("boom"), "")

		assert.Contains(t, errOut.String(), "boom")
	})
}

func TestMessages(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("index written")
	p.Warning("descriptor unresolved")
	p.Info("2 skills, 1 agent")

	assert.Contains(t, out.String(), "✓ index written")
	assert.Contains(t, out.String(), "⚠ descriptor unresolved")
	assert.Contains(t, out.String(), "2 skills, 1 agent")
}

func TestQuietMode(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.SetQuiet(true)
	assert.True(t, p.IsQuiet())

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")

	assert.Empty(t, out.String())

	p.SetQuiet(false)
	assert.False(t, p.IsQuiet())
	p.Info("visible")
	assert.Contains(t, out.String(), "visible")
}
