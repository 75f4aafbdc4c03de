// Package ebiten hosts the debug overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend. Call BeginFrame before
// running the scheduler, EndFrame after it, and Draw once the game is drawn.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini is not written.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: b}
}

// Overlay draws the Dear ImGui frame on top of screen unless hidden.
func (b *ImguiBackend) Overlay(screen *ebiten.Image, hidden bool) {
	if hidden {
		return
	}
	b.Draw(screen)
}
