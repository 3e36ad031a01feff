package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skyfeed/internal/compose"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		area    compose.Rect
		dir     Direction
		spacing int
		cs      []Constraint
		want    []compose.Rect
	}{
		{
			name: "fill weights",
			area: compose.NewRect(0, 0, 70, 10),
			dir:  Horizontal,
			cs:   []Constraint{Fill(1), Fill(5), Fill(1)},
			want: []compose.Rect{
				compose.NewRect(0, 0, 10, 10),
				compose.NewRect(10, 0, 50, 10),
				compose.NewRect(60, 0, 10, 10),
			},
		},
		{
			name: "remainder goes to the last fill",
			area: compose.NewRect(0, 0, 11, 4),
			dir:  Horizontal,
			cs:   []Constraint{Fill(1), Fill(4)},
			want: []compose.Rect{
				compose.NewRect(0, 0, 2, 4),
				compose.NewRect(2, 0, 9, 4),
			},
		},
		{
			name:    "login rows",
			area:    compose.NewRect(0, 0, 20, 30),
			dir:     Vertical,
			spacing: 1,
			cs:      []Constraint{Percentage(30), Length(3), Length(3), Length(3), Fill(1)},
			want: []compose.Rect{
				compose.NewRect(0, 0, 20, 7),
				compose.NewRect(0, 8, 20, 3),
				compose.NewRect(0, 12, 20, 3),
				compose.NewRect(0, 16, 20, 3),
				compose.NewRect(0, 20, 20, 10),
			},
		},
		{
			name: "fixed segments shrink when space runs out",
			area: compose.NewRect(0, 2, 5, 4),
			dir:  Vertical,
			cs:   []Constraint{Length(3), Length(3), Fill(1)},
			want: []compose.Rect{
				compose.NewRect(0, 2, 5, 3),
				compose.NewRect(0, 5, 5, 1),
				compose.NewRect(0, 6, 5, 0),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.area, tt.dir, tt.spacing, tt.cs...))
		})
	}
}

func TestMargin(t *testing.T) {
	assert.Equal(t, compose.NewRect(1, 1, 8, 3), Margin(compose.NewRect(0, 0, 10, 5), 1))
	assert.True(t, Margin(compose.NewRect(0, 0, 1, 1), 1).Empty())
}

func TestPanelRender(t *testing.T) {
	buf := compose.NewBuffer(compose.NewRect(0, 0, 6, 2))
	p := Panel{
		ID:       "greeting",
		Renderer: compose.Raw("hi"),
		Bounds:   func(screen compose.Rect) compose.Rect { return screen.WithY(1).WithHeight(1).WithX(2) },
	}
	p.Render(buf.Area(), buf)
	assert.Equal(t, []string{"      ", "  hi  "}, buf.Rows())
}
