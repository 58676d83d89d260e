package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"texas/core"
	"texas/protocol"
)

func TestStreamKind(t *testing.T) {
	tests := []struct {
		mode   string
		kind   protocol.Kind
		layout core.Port
		logic  bool
	}{
		{"auto", protocol.KindAuto, 0, false},
		{" AUTO ", protocol.KindAuto, 0, false},
		{"scope:PD3", protocol.KindScope, 0, false},
		{"scope", protocol.KindScope, 0, false},
		{"logic:B", protocol.KindLogic, core.PortB, true},
		{"logic:pf", protocol.KindLogic, core.PortF, true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			kind, layout, err := streamKind(tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			if tt.logic {
				require.NotNil(t, layout)
				assert.Equal(t, tt.layout, layout.Port)
			} else {
				assert.Nil(t, layout)
			}
		})
	}
}

func TestStreamKindInvalid(t *testing.T) {
	_, _, err := streamKind("logic:D")
	assert.ErrorIs(t, err, core.ErrUnknownMode)
}

func TestOpenOutput(t *testing.T) {
	f, closeFn, err := openOutput("-")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "out.csv")
	f, closeFn, err = openOutput(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Name())
	assert.NoError(t, closeFn())
	assert.FileExists(t, path)
}
