package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "короткая строка", in: "abc", max: 5, want: "abc"},
		{name: "обрезка с многоточием", in: "abcdefgh", max: 6, want: "abc..."},
		{name: "кириллица по рунам", in: "Прогулка по парку", max: 8, want: "Прогу..."},
		{name: "маленький предел", in: "abcdef", max: 2, want: "ab"},
		{name: "нулевой предел", in: "abc", max: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "кот  ", padRight("кот", 5))
	assert.Equal(t, "длинное", padRight("длинное", 3))
}

func TestValueOrDash(t *testing.T) {
	empty := ""
	v := "Центр"

	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(&empty))
	assert.Equal(t, "Центр", valueOrDash(&v))
}
