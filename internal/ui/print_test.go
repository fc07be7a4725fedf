package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/ryanccn/nyoom/internal/config"
)

func plain(s string) string {
	return ansi.Strip(s)
}

func TestPrintUserchrome(t *testing.T) {
	uc := &config.Userchrome{
		Name:   "shyfox",
		Source: "github:Naezr/ShyFox",
		Prefs: []config.Pref{
			{Key: "a", Value: "1", Raw: true},
			{Key: "b", Value: "x"},
			{Key: "c", Value: "2", Raw: true},
			{Key: "d", Value: "y"},
			{Key: "e", Value: "z"},
		},
	}

	tests := []struct {
		name  string
		short bool
		ctx   Context
		want  string
	}{
		{
			name: "full",
			ctx:  Normal,
			want: "· shyfox github:Naezr/ShyFox\n" +
				"    a: 1 (raw)\n    b: x\n    c: 2 (raw)\n    d: y\n    e: z\n",
		},
		{
			name:  "short added",
			short: true,
			ctx:   Added,
			want: "+ shyfox github:Naezr/ShyFox\n" +
				"    a: 1 (raw)\n    b: x\n    c: 2 (raw)\n    and 2 more\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintUserchrome(&buf, uc, tt.short, tt.ctx)
			assert.Equal(t, tt.want, plain(buf.String()))
		})
	}
}

func TestPrintUserchromeRemovedNoPrefs(t *testing.T) {
	var buf bytes.Buffer
	PrintUserchrome(&buf, &config.Userchrome{Name: "x", Source: "path:/tmp/x"}, true, Removed)
	assert.Equal(t, "- x path:/tmp/x\n", plain(buf.String()))
}

func TestSteps(t *testing.T) {
	var buf bytes.Buffer
	s := NewSteps(&buf)
	s.Next("retrieving source")
	s.Next("installing userchrome")
	s.Detail("/profile")
	s.Done()

	lines := strings.Split(strings.TrimSuffix(plain(buf.String()), "\n"), "\n")
	assert.Equal(t, []string{
		"1 retrieving source",
		"2 installing userchrome",
		"╰ /profile",
		"done!",
	}, lines)
	assert.Equal(t, 2, s.Count())
}
