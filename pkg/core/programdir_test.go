package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramDirFrom(t *testing.T) {
	tmp := filepath.FromSlash("/tmp")
	wd := filepath.FromSlash("/home/user/project")

	tests := []struct {
		name string
		exe  string
		want string
	}{
		{"installed binary", "/opt/memsaver/memsaver", "/opt/memsaver"},
		{"go run build", "/tmp/go-build1234/b001/exe/memsaver", "/home/user/project"},
		{"other temp binary", "/tmp/unpacked/memsaver", "/tmp/unpacked"},
		{"go-build outside temp", "/srv/go-build/memsaver", "/srv/go-build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := programDirFrom(filepath.FromSlash(tt.exe), tmp, wd)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestProgramDir(t *testing.T) {
	dir, err := ProgramDir()
	assert.NoError(t, err)
	assert.NotEmpty(t, dir)
}
