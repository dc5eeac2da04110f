package panel

import (
	"encoding/json"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atriumhq/atrium/internal/tui"
)

// inspector renders a panel's last fetched payload as pretty-printed JSON, a
// convenience for developers using the portal's mock backend.
type inspector struct {
	vp tui.Viewport
	on bool
}

func newInspector(width, height int) inspector {
	return inspector{
		vp: tui.NewViewport(tui.ViewportOptions{
			Width:  width,
			Height: height,
			JSON:   true,
		}),
	}
}

func (i *inspector) toggle() {
	i.on = !i.on
}

// set replaces the inspected payload.
func (i *inspector) set(payload any) error {
	marshaled, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return i.vp.SetContent(marshaled)
}

func (i *inspector) resize(width, height int) {
	i.vp.SetDimensions(width, height)
}

func (i *inspector) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.vp, cmd = i.vp.Update(msg)
	return cmd
}
